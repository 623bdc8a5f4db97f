package reader

import (
	"pdfdoc.dev/pdf"
	"pdfdoc.dev/pdf/graphics"
)

// catalogHandler recognises the document's Catalog dictionary
// (Type=Catalog). It delegates body transformation to the generic
// dictionary logic, then rebuilds Pages.Kids as a flat, depth-first
// preorder array of Page dictionaries, tolerating arbitrarily nested or
// malformed Pages trees. Finally it records the caller-supplied event
// listeners on ctx for the duration of this read pass, so a later content-
// stream run can find them without threading them through every handler
// call.
type catalogHandler struct {
	root *Root
}

func (catalogHandler) CanTransform(obj pdf.Object) bool {
	d, ok := obj.(pdf.Dict)
	return ok && d["Type"] == pdf.Name("Catalog")
}

func (h *catalogHandler) Transform(obj pdf.Object, parent pdf.Object, ctx *Context, listeners []graphics.EventListener) (pdf.Object, error) {
	d := obj.(pdf.Dict)

	dh := &dictionaryHandler{root: h.root}
	out, err := dh.transformBody(d, obj, ctx, listeners)
	if err != nil {
		return nil, err
	}

	if pagesObj, ok := out["Pages"]; ok {
		flat, err := flattenPages(pagesObj, ctx)
		if err != nil {
			return nil, err
		}
		pagesDict, err := pdf.GetDict(ctx.Getter, pagesObj)
		if err != nil {
			return nil, err
		}
		if pagesDict == nil {
			pagesDict = pdf.Dict{"Type": pdf.Name("Pages")}
		} else {
			clone := make(pdf.Dict, len(pagesDict))
			for k, v := range pagesDict {
				clone[k] = v
			}
			pagesDict = clone
		}
		pagesDict["Kids"] = flat
		pagesDict["Count"] = pdf.Integer(len(flat))
		out["Pages"] = pagesDict
	}

	ctx.Listeners = listeners

	return out, nil
}

// flattenPages implements §4.2's worklist algorithm: the root Pages node
// starts the worklist; each popped node that is a Page is appended to the
// output, and each popped Pages node's Kids are spliced onto the FRONT of
// the worklist in their original array order, giving depth-first preorder
// traversal regardless of how deeply or irregularly the tree is nested.
type pagesWorkItem struct {
	node   pdf.Object
	parent pdf.Dict
}

func flattenPages(root pdf.Object, ctx *Context) (pdf.Array, error) {
	worklist := []pagesWorkItem{{node: root}}
	var pages pdf.Array

	for len(worklist) > 0 {
		item := worklist[0]
		worklist = worklist[1:]

		d, err := pdf.GetDict(ctx.Getter, item.node)
		if err != nil {
			return nil, err
		}
		if d == nil {
			continue
		}
		if item.parent != nil {
			// Resources (and other Pages-tree attributes) are inheritable
			// down the tree; recording the parent link here is what lets
			// RunPage walk back up to find them for a Page with no
			// /Resources entry of its own.
			ctx.Registry.SetParent(d, item.parent)
		}

		switch d["Type"] {
		case pdf.Name("Page"):
			pages = append(pages, item.node)
		case pdf.Name("Pages"):
			kids, err := pdf.GetArray(ctx.Getter, d["Kids"])
			if err != nil {
				return nil, err
			}
			front := make([]pagesWorkItem, len(kids))
			for i, kid := range kids {
				front[i] = pagesWorkItem{node: kid, parent: d}
			}
			worklist = append(front, worklist...)
		default:
			// Neither Type=Page nor Type=Pages: tolerate by treating a
			// leaf with no recognisable Type as a Page, the same
			// leniency the flattening algorithm extends to malformed
			// trees elsewhere.
			pages = append(pages, item.node)
		}
	}

	return pages, nil
}

// pagesHandler recognises an intermediate Pages node (Type=Pages)
// encountered outside the Catalog's own Pages entry — e.g. if a caller
// transforms a Pages subtree directly rather than via its Catalog. It
// delegates to the generic dictionary body transform; flattening only
// happens once, at the Catalog.
type pagesHandler struct {
	root *Root
}

func (pagesHandler) CanTransform(obj pdf.Object) bool {
	d, ok := obj.(pdf.Dict)
	return ok && d["Type"] == pdf.Name("Pages")
}

func (h *pagesHandler) Transform(obj pdf.Object, parent pdf.Object, ctx *Context, listeners []graphics.EventListener) (pdf.Object, error) {
	dh := &dictionaryHandler{root: h.root}
	return dh.transformBody(obj.(pdf.Dict), obj, ctx, listeners)
}

// pageHandler recognises a leaf Page dictionary (Type=Page). Like
// pagesHandler it only needs the generic dictionary body transform — page
// content streams are interpreted separately, by handing Page.Contents to
// content.Run once a Context and Canvas have been set up.
type pageHandler struct {
	root *Root
}

func (pageHandler) CanTransform(obj pdf.Object) bool {
	d, ok := obj.(pdf.Dict)
	return ok && d["Type"] == pdf.Name("Page")
}

func (h *pageHandler) Transform(obj pdf.Object, parent pdf.Object, ctx *Context, listeners []graphics.EventListener) (pdf.Object, error) {
	dh := &dictionaryHandler{root: h.root}
	return dh.transformBody(obj.(pdf.Dict), obj, ctx, listeners)
}
