package reader

import (
	"pdfdoc.dev/pdf"
	"pdfdoc.dev/pdf/graphics"
)

// Root is the composite Transformer every handler in this package
// ultimately recurses through. Its children are consulted in registration
// order — the first whose CanTransform returns true handles the call — so
// more specific handlers (Catalog, Type1Font, Stream) must be registered
// ahead of the generic Dictionary/Array/primitive fallbacks.
type Root struct {
	children []Transformer
}

// NewRoot returns the standard handler chain for a PDF document tree.
func NewRoot() *Root {
	r := &Root{}
	r.children = []Transformer{
		&catalogHandler{root: r},
		&pagesHandler{root: r},
		&pageHandler{root: r},
		&type1FontHandler{},
		&streamHandler{},
		&dictionaryHandler{root: r},
		&arrayHandler{root: r},
		&primitiveHandler{},
	}
	return r
}

// Transform resolves obj if it is a Reference, dispatches it to the first
// matching child handler, and records the resulting object's parent link
// and (if obj was a Reference) its reference identity in ctx.Registry.
func (r *Root) Transform(obj pdf.Object, parent pdf.Object, ctx *Context, listeners []graphics.EventListener) (pdf.Object, error) {
	var ref pdf.Reference
	if rf, ok := obj.(pdf.Reference); ok {
		ref = rf
		resolved, err := ctx.Getter.Get(rf)
		if err != nil {
			return nil, err
		}
		obj = resolved
	}

	for _, child := range r.children {
		if !child.CanTransform(obj) {
			continue
		}
		out, err := child.Transform(obj, parent, ctx, listeners)
		if err != nil {
			return nil, err
		}
		if ref != 0 {
			if err := ctx.Registry.SetReference(out, ref); err != nil {
				return nil, err
			}
		}
		ctx.Registry.SetParent(out, parent)
		return out, nil
	}

	return obj, nil
}
