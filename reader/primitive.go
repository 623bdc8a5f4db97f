package reader

import (
	"pdfdoc.dev/pdf"
	"pdfdoc.dev/pdf/graphics"
)

// primitiveHandler is the catch-all fallback: Name, Integer, Real,
// Boolean, String and nil pass through unchanged, since they carry no
// children and need no domain-specific handling. It is registered last so
// every more specific handler gets first refusal.
type primitiveHandler struct{}

func (primitiveHandler) CanTransform(obj pdf.Object) bool { return true }

func (primitiveHandler) Transform(obj pdf.Object, parent pdf.Object, ctx *Context, listeners []graphics.EventListener) (pdf.Object, error) {
	return obj, nil
}
