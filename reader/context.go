// Package reader implements the read transformer pipeline (C2): a root
// transformer composed of specialized handlers, dispatched in registration
// order, that turns the raw typed objects produced by a tokenizer into a
// domain tree — most importantly flattening a document's Pages tree and
// resolving Type1 font dictionaries into usable metrics.
package reader

import (
	"pdfdoc.dev/pdf"
	"pdfdoc.dev/pdf/font"
	"pdfdoc.dev/pdf/graphics"
)

// Context is the state shared across one read pass: the Getter a handler
// uses to resolve References it encounters, the Registry that records
// parent links and reference identity as the tree is walked, and the
// per-reference font cache that backs Context's graphics.FontProvider
// implementation.
type Context struct {
	Getter   pdf.Getter
	Registry *pdf.Registry

	// Listeners holds the event listeners the Catalog handler attached
	// for this read pass (§4.2's "event-listener attachment"), available
	// to whatever later drives content.Run over each flattened page.
	Listeners []graphics.EventListener

	fonts map[pdf.Reference]*font.Type1
}

// NewContext returns a Context ready to drive a read pass against g.
func NewContext(g pdf.Getter) *Context {
	return &Context{
		Getter:   g,
		Registry: pdf.NewRegistry(),
		fonts:    make(map[pdf.Reference]*font.Type1),
	}
}

// Lookup implements graphics.FontProvider: it resolves and memoizes the
// Type1 font dictionary at ref, so that the content-stream interpreter can
// use a Context directly as its Fonts collaborator.
func (c *Context) Lookup(ref pdf.Reference) (graphics.FontMetrics, error) {
	if fm, ok := c.fonts[ref]; ok {
		return fm, nil
	}
	fm, err := font.ExtractType1(c.Getter, ref)
	if err != nil {
		return nil, err
	}
	c.fonts[ref] = fm
	return fm, nil
}

var _ graphics.FontProvider = (*Context)(nil)
