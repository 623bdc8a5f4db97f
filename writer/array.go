package writer

import "pdfdoc.dev/pdf"

// arrayHandler replaces every Dict/*Stream element with its Reference
// (queuing the original for separate emission) and recurses into nested
// Array elements.
type arrayHandler struct {
	root *Root
}

func (arrayHandler) CanTransform(obj pdf.Object) bool {
	_, ok := obj.(pdf.Array)
	return ok
}

func (h *arrayHandler) Transform(obj pdf.Object, ctx *Context) (pdf.Object, error) {
	arr := obj.(pdf.Array)
	out := make(pdf.Array, len(arr))
	for i, v := range arr {
		tv, err := transformValue(h.root, v, ctx)
		if err != nil {
			return nil, err
		}
		out[i] = tv
	}
	return out, nil
}
