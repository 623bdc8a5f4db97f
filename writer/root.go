package writer

import "pdfdoc.dev/pdf"

// Root is the write pipeline's composite Transformer: dictionaries and
// arrays recurse into their elements, replacing any Dict/*Stream
// descendant with the Reference it will be written under and queuing the
// original for its own indirect-object emission; every other Object
// (Name, Integer, Real, Boolean, String, Reference) is already directly
// writable via its own PDF method and passes through unchanged.
type Root struct {
	children []Transformer
}

// NewRoot returns the standard handler chain for serializing a domain
// tree.
func NewRoot() *Root {
	r := &Root{}
	r.children = []Transformer{
		&dictionaryHandler{root: r},
		&arrayHandler{root: r},
	}
	return r
}

// Transform dispatches obj to the first child that claims it, or returns
// obj unchanged if none does.
func (r *Root) Transform(obj pdf.Object, ctx *Context) (pdf.Object, error) {
	for _, child := range r.children {
		if child.CanTransform(obj) {
			return child.Transform(obj, ctx)
		}
	}
	return obj, nil
}

// indirect allocates/reuses obj's Reference, queues obj for its own
// indirect-object emission, and returns the Reference that should replace
// obj in its parent's direct-object form.
func (r *Root) indirect(obj pdf.Object, ctx *Context) (pdf.Reference, error) {
	ref, err := ctx.GetReference(obj)
	if err != nil {
		return 0, err
	}
	ctx.enqueue(obj)
	return ref, nil
}
