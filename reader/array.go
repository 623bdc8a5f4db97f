package reader

import (
	"pdfdoc.dev/pdf"
	"pdfdoc.dev/pdf/graphics"
)

// arrayHandler recurses into each element via the owning Root, the
// composition rule that gives every handler top-down recursive descent
// for free.
type arrayHandler struct {
	root *Root
}

func (arrayHandler) CanTransform(obj pdf.Object) bool {
	_, ok := obj.(pdf.Array)
	return ok
}

func (h *arrayHandler) Transform(obj pdf.Object, parent pdf.Object, ctx *Context, listeners []graphics.EventListener) (pdf.Object, error) {
	arr := obj.(pdf.Array)
	out := make(pdf.Array, len(arr))
	for i, elem := range arr {
		v, err := h.root.Transform(elem, obj, ctx, listeners)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
