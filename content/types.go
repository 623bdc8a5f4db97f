// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2023  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package content

import (
	"io"

	"pdfdoc.dev/pdf"
)

// Operator is a bare operator token found in a content stream, e.g. "Tj"
// or "q". It satisfies pdf.Object so the scanner can hand it back on the
// same channel as operands.
type Operator pdf.Name

// PDF implements the [pdf.Object] interface.
func (x Operator) PDF(w io.Writer) error {
	_, err := w.Write([]byte(x))
	return err
}

func (x Operator) String() string { return string(x) }
