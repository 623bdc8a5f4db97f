package reader

import (
	"pdfdoc.dev/pdf"
	"pdfdoc.dev/pdf/graphics"
)

// Transformer is one node of the read pipeline. CanTransform decides
// whether this handler claims obj; Transform produces the domain object,
// recursing back into the owning Root for any child values so that
// per-type customization composes with plain top-down recursive descent.
type Transformer interface {
	CanTransform(obj pdf.Object) bool
	Transform(obj pdf.Object, parent pdf.Object, ctx *Context, listeners []graphics.EventListener) (pdf.Object, error)
}
