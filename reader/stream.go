package reader

import (
	"pdfdoc.dev/pdf"
	"pdfdoc.dev/pdf/graphics"
)

// streamHandler copies a *Stream's dictionary into a new Stream, leaving
// the payload reader untouched (this pipeline does not decode stream
// filters — §1's stated scope is structural preservation of the object
// graph, not filter codecs). The copy is shallow: the dictionary's values
// are not passed back through Root.
type streamHandler struct{}

func (streamHandler) CanTransform(obj pdf.Object) bool {
	_, ok := obj.(*pdf.Stream)
	return ok
}

func (streamHandler) Transform(obj pdf.Object, parent pdf.Object, ctx *Context, listeners []graphics.EventListener) (pdf.Object, error) {
	stm := obj.(*pdf.Stream)
	out := &pdf.Stream{R: stm.R}
	if stm.Dict != nil {
		clone := make(pdf.Dict, len(stm.Dict))
		for k, v := range stm.Dict {
			clone[k] = v
		}
		out.Dict = clone
	}
	return out, nil
}
