package reader

import (
	"pdfdoc.dev/pdf"
	"pdfdoc.dev/pdf/graphics"
)

// dictionaryHandler is the generic fallback for any Dict whose /Type the
// more specific handlers (catalogHandler, type1FontHandler) don't
// recognise: it transforms every value into a new Dict (Dict is a Go map,
// so no key order is kept).
type dictionaryHandler struct {
	root *Root
}

func (dictionaryHandler) CanTransform(obj pdf.Object) bool {
	_, ok := obj.(pdf.Dict)
	return ok
}

func (h *dictionaryHandler) Transform(obj pdf.Object, parent pdf.Object, ctx *Context, listeners []graphics.EventListener) (pdf.Object, error) {
	return h.transformBody(obj.(pdf.Dict), obj, ctx, listeners)
}

// transformBody is shared with catalogHandler, which delegates body
// transformation here before rebuilding the page list, per the spec's
// "Catalog handler delegates body transformation to the generic Dictionary
// handler" contract.
func (h *dictionaryHandler) transformBody(d pdf.Dict, self pdf.Object, ctx *Context, listeners []graphics.EventListener) (pdf.Dict, error) {
	out := make(pdf.Dict, len(d))
	for k, v := range d {
		tv, err := h.root.Transform(v, self, ctx, listeners)
		if err != nil {
			return nil, err
		}
		out[k] = tv
	}
	return out, nil
}
