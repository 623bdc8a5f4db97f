package writer

import "pdfdoc.dev/pdf"

// dictionaryHandler replaces every Dict/*Stream value with its Reference
// (queuing the original for separate emission) and recurses into Array
// values; Name/Integer/Real/Boolean/String/Reference values pass through.
type dictionaryHandler struct {
	root *Root
}

func (dictionaryHandler) CanTransform(obj pdf.Object) bool {
	_, ok := obj.(pdf.Dict)
	return ok
}

func (h *dictionaryHandler) Transform(obj pdf.Object, ctx *Context) (pdf.Object, error) {
	d := obj.(pdf.Dict)
	out := make(pdf.Dict, len(d))
	for k, v := range d {
		tv, err := transformValue(h.root, v, ctx)
		if err != nil {
			return nil, err
		}
		out[k] = tv
	}
	return out, nil
}

// transformValue is the shared per-element rule both dictionaryHandler
// and arrayHandler apply: a Dict/*Stream value becomes its Reference
// (with the original queued for emission), an Array recurses, and
// anything else is already directly writable.
func transformValue(root *Root, v pdf.Object, ctx *Context) (pdf.Object, error) {
	switch v.(type) {
	case pdf.Dict, *pdf.Stream:
		return root.indirect(v, ctx)
	case pdf.Array:
		return root.Transform(v, ctx)
	default:
		return v, nil
	}
}
