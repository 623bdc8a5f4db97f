package graphics

// Color is a parsed color value from a content stream. Unlike the
// teacher's color.Color (which knows how to re-serialize itself for a
// writer), this interpreter only ever consumes colors set by g/G, rg/RG,
// k/K, so Color here is a plain value type, not a serializer.
type Color interface {
	isColor()
}

// Gray is a /DeviceGray color, set by the g/G operators.
type Gray float64

func (Gray) isColor() {}

// RGB is a /DeviceRGB color, set by the rg/RG operators.
type RGB struct{ R, G, B float64 }

func (RGB) isColor() {}

// CMYK is a /DeviceCMYK color, set by the k/K operators.
type CMYK struct{ C, M, Y, K float64 }

func (CMYK) isColor() {}

// DefaultColor is black in /DeviceGray, the initial stroke and fill color
// of a fresh graphics state.
var DefaultColor Color = Gray(0)
