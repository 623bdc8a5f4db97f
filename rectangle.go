package pdf

import (
	"fmt"
	"io"
)

// Rectangle is a PDF rectangle object: a 4-element array of numbers
// giving opposite corners, not necessarily in lower-left/upper-right
// order in the file.
type Rectangle struct {
	LLx, LLy, URx, URy float64
}

// Dx returns the width of the rectangle.
func (r *Rectangle) Dx() float64 {
	return r.URx - r.LLx
}

// Dy returns the height of the rectangle.
func (r *Rectangle) Dy() float64 {
	return r.URy - r.LLy
}

// Extend grows r, if necessary, to also cover other.
func (r *Rectangle) Extend(other *Rectangle) {
	if other.LLx < r.LLx {
		r.LLx = other.LLx
	}
	if other.LLy < r.LLy {
		r.LLy = other.LLy
	}
	if other.URx > r.URx {
		r.URx = other.URx
	}
	if other.URy > r.URy {
		r.URy = other.URy
	}
}

// PDF writes the rectangle as a 4-element array.
func (r *Rectangle) PDF(w io.Writer) error {
	_, err := fmt.Fprintf(w, "[%s %s %s %s]",
		formatNumber(r.LLx), formatNumber(r.LLy),
		formatNumber(r.URx), formatNumber(r.URy))
	return err
}

func formatNumber(x float64) string {
	return Real(x).mustFormat()
}

func (x Real) mustFormat() string {
	var buf []byte
	w := &byteSink{&buf}
	_ = x.PDF(w)
	return string(buf)
}

type byteSink struct{ buf *[]byte }

func (s *byteSink) Write(p []byte) (int, error) {
	*s.buf = append(*s.buf, p...)
	return len(p), nil
}
