package reader

import (
	"pdfdoc.dev/pdf"
	"pdfdoc.dev/pdf/graphics"
)

// type1FontHandler recognises a font dictionary with Subtype=Type1. It
// passes the dictionary through unchanged — the actual metrics resolution
// (encoding, widths, ToUnicode) happens lazily, the first time Context.Lookup
// is asked for this dictionary's reference by the content-stream
// interpreter — but claiming the node here keeps it out of the generic
// dictionaryHandler, which has no reason to know about fonts.
type type1FontHandler struct{}

func (type1FontHandler) CanTransform(obj pdf.Object) bool {
	d, ok := obj.(pdf.Dict)
	return ok && d["Subtype"] == pdf.Name("Type1")
}

func (type1FontHandler) Transform(obj pdf.Object, parent pdf.Object, ctx *Context, listeners []graphics.EventListener) (pdf.Object, error) {
	return obj, nil
}
