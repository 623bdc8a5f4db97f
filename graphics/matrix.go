// Package graphics implements the C4 stack-machine driver and the C5
// graphics state it operates on: the affine transform matrix, the text
// and graphics state records, the Canvas that executes a content-stream
// operator table against them, and the text-render events a Canvas emits
// for a listener to collect.
package graphics

// Matrix is a PDF transformation matrix, stored as the six coefficients
// of the homogeneous row-major form PDF itself uses:
//
//	[ a b 0 ]
//	[ c d 0 ]
//	[ e f 1 ]
type Matrix [6]float64

// Identity is the identity transform.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// Mul returns the matrix product m * other, i.e. the transform that
// applies m first and then other — matching the PDF "cm" operator's
// convention of premultiplying the CTM.
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[1]*other[2],
		m[0]*other[1] + m[1]*other[3],
		m[2]*other[0] + m[3]*other[2],
		m[2]*other[1] + m[3]*other[3],
		m[4]*other[0] + m[5]*other[2] + other[4],
		m[4]*other[1] + m[5]*other[3] + other[5],
	}
}

// Apply transforms the point (x, y) by m.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// ApplyDirection transforms the vector (dx, dy) by m, ignoring
// translation — used for advances and offsets rather than points.
func (m Matrix) ApplyDirection(dx, dy float64) (float64, float64) {
	return m[0]*dx + m[2]*dy, m[1]*dx + m[3]*dy
}
