package reader

import (
	"io"
	"strings"

	"pdfdoc.dev/pdf"
	"pdfdoc.dev/pdf/content"
	"pdfdoc.dev/pdf/graphics"
)

// RunPage drives C4 over a single flattened Page dictionary: it resolves
// the page's (possibly inherited) /Resources /Font subdictionary into a
// Tf name->Reference lookup, concatenates the page's content stream(s),
// and interprets them against a fresh Canvas, delivering events to
// listeners.
func RunPage(ctx *Context, page pdf.Dict, listeners []graphics.EventListener) error {
	canvas := graphics.NewCanvas(ctx, listeners...)

	fontNames, err := pageResources(ctx, page, "Font")
	if err != nil {
		return err
	}
	resolveFont := func(name pdf.Name) pdf.Reference {
		ref, _ := fontNames[name].(pdf.Reference)
		return ref
	}

	r, err := concatContents(ctx, page["Contents"])
	if err != nil {
		return err
	}
	if r == nil {
		return nil
	}

	return content.Run(r, canvas, content.Standard, resolveFont)
}

// pageResources resolves page's /Resources /<key> subdictionary, walking
// the page's recorded parent chain (ctx.Registry.Parent) if the page
// itself has no /Resources entry — resources are inheritable down a Pages
// tree per the PDF specification, and the flattening pass preserves each
// page's parent link for exactly this lookup.
func pageResources(ctx *Context, page pdf.Dict, key pdf.Name) (pdf.Dict, error) {
	node := pdf.Object(page)
	for node != nil {
		d, ok := node.(pdf.Dict)
		if !ok {
			break
		}
		if res, err := pdf.GetDict(ctx.Getter, d["Resources"]); err != nil {
			return nil, err
		} else if res != nil {
			sub, err := pdf.GetDict(ctx.Getter, res[key])
			if err != nil {
				return nil, err
			}
			if sub != nil {
				return sub, nil
			}
		}
		node = ctx.Registry.Parent(node)
	}
	return pdf.Dict{}, nil
}

// concatContents resolves a page's /Contents entry, which may be a single
// stream or an array of streams, into one reader over their concatenated
// bytes (PDF requires a single space between each stream's bytes, so a
// token never straddles a stream boundary incorrectly).
func concatContents(ctx *Context, contents pdf.Object) (io.Reader, error) {
	resolved, err := pdf.Resolve(ctx.Getter, contents)
	if err != nil || resolved == nil {
		return nil, err
	}

	var streams []*pdf.Stream
	switch v := resolved.(type) {
	case *pdf.Stream:
		streams = append(streams, v)
	case pdf.Array:
		for _, elem := range v {
			s, err := pdf.GetStream(ctx.Getter, elem)
			if err != nil {
				return nil, err
			}
			if s != nil {
				streams = append(streams, s)
			}
		}
	}

	readers := make([]io.Reader, 0, 2*len(streams))
	for i, s := range streams {
		if i > 0 {
			readers = append(readers, strings.NewReader(" "))
		}
		if s.R != nil {
			readers = append(readers, s.R)
		}
	}
	if len(readers) == 0 {
		return nil, nil
	}
	return io.MultiReader(readers...), nil
}
