// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2021  Jochen Voss <voss@seehuhn.de>
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

package pdf

import (
	"errors"
	"fmt"
)

var (
	// ErrUnhashable is returned by Hash when the object graph contains a
	// value that cannot participate in structural-equality comparison —
	// currently only a Real carrying NaN, since NaN != NaN.
	ErrUnhashable = errors.New("pdf: value has no well-defined hash")

	// ErrGraphicsStateUnderflow is returned when Q is executed with no
	// matching q on the graphics-state stack.
	ErrGraphicsStateUnderflow = errors.New("pdf: Q with no matching q")

	// ErrMarkedContentUnderflow is returned when EMC is executed with no
	// matching BMC/BDC on the marked-content stack.
	ErrMarkedContentUnderflow = errors.New("pdf: EMC with no matching BMC/BDC")

	// ErrNestedTextObject is returned when BT is executed while already
	// inside a text object, outside a BX/EX compatibility section.
	ErrNestedTextObject = errors.New("pdf: nested BT without matching ET")

	// ErrTextObjectUnderflow is returned when ET is executed outside a
	// text object.
	ErrTextObjectUnderflow = errors.New("pdf: ET with no matching BT")

	// ErrMissingReference is returned when a Reference cannot be resolved
	// against the Getter it was looked up on, and by the write pipeline
	// when an object is started before a Reference has been assigned to it.
	ErrMissingReference = errors.New("pdf: reference does not resolve to an object")
)

// MalformedFileError indicates that a PDF document could not be parsed.
type MalformedFileError struct {
	Err error
	Pos int64
}

func (err *MalformedFileError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Pos > 0 {
		tail = fmt.Sprintf(" (at byte %d)", err.Pos)
	}
	return "not a valid PDF document" + middle + tail
}

func (err *MalformedFileError) Unwrap() error { return err.Err }

// ReferenceConflictError is returned when a Registry is asked to assign a
// second Reference to an object that already has one.
type ReferenceConflictError struct {
	Existing Reference
}

func (err *ReferenceConflictError) Error() string {
	return fmt.Sprintf("pdf: object already has reference %s", err.Existing)
}

// OperandUnderflowError is returned by the content-stream operator table
// when an operator's declared arity exceeds the number of operands
// available on the stack.
type OperandUnderflowError struct {
	Operator string
	Want     int
	Got      int
}

func (err *OperandUnderflowError) Error() string {
	return fmt.Sprintf("pdf: operator %q wants %d operands, got %d",
		err.Operator, err.Want, err.Got)
}
