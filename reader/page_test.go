package reader

import (
	"io"
	"strings"
	"testing"

	"pdfdoc.dev/pdf"
	"pdfdoc.dev/pdf/graphics"
)

func TestConcatContentsSingleStream(t *testing.T) {
	ctx := NewContext(pdf.MapGetter{})
	stm := &pdf.Stream{R: strings.NewReader("BT ET")}

	r, err := concatContents(ctx, stm)
	if err != nil {
		t.Fatalf("concatContents: %v", err)
	}
	b, _ := io.ReadAll(r)
	if string(b) != "BT ET" {
		t.Errorf("got %q, want %q", b, "BT ET")
	}
}

func TestConcatContentsArrayOfStreamsJoinsWithSpace(t *testing.T) {
	ref1 := pdf.NewReference(1, 0)
	ref2 := pdf.NewReference(2, 0)
	g := pdf.MapGetter{
		ref1: &pdf.Stream{R: strings.NewReader("BT")},
		ref2: &pdf.Stream{R: strings.NewReader("ET")},
	}
	ctx := NewContext(g)

	r, err := concatContents(ctx, pdf.Array{ref1, ref2})
	if err != nil {
		t.Fatalf("concatContents: %v", err)
	}
	b, _ := io.ReadAll(r)
	if string(b) != "BT ET" {
		t.Errorf("got %q, want %q (joined with a single space)", b, "BT ET")
	}
}

func TestConcatContentsNilIsNil(t *testing.T) {
	ctx := NewContext(pdf.MapGetter{})
	r, err := concatContents(ctx, nil)
	if err != nil {
		t.Fatalf("concatContents: %v", err)
	}
	if r != nil {
		t.Errorf("got non-nil reader for nil /Contents")
	}
}

func TestPageResourcesInheritsFromParent(t *testing.T) {
	parent := pdf.Dict{
		"Type": pdf.Name("Pages"),
		"Resources": pdf.Dict{
			"Font": pdf.Dict{"F1": pdf.NewReference(9, 0)},
		},
	}
	page := pdf.Dict{"Type": pdf.Name("Page")}

	ctx := NewContext(pdf.MapGetter{})
	ctx.Registry.SetParent(page, parent)

	fonts, err := pageResources(ctx, page, "Font")
	if err != nil {
		t.Fatalf("pageResources: %v", err)
	}
	if fonts["F1"] != pdf.NewReference(9, 0) {
		t.Errorf("F1 = %v, want inherited reference", fonts["F1"])
	}
}

func TestPageResourcesOwnResourcesWin(t *testing.T) {
	parent := pdf.Dict{
		"Resources": pdf.Dict{"Font": pdf.Dict{"F1": pdf.NewReference(9, 0)}},
	}
	page := pdf.Dict{
		"Resources": pdf.Dict{"Font": pdf.Dict{"F1": pdf.NewReference(1, 0)}},
	}
	ctx := NewContext(pdf.MapGetter{})
	ctx.Registry.SetParent(page, parent)

	fonts, err := pageResources(ctx, page, "Font")
	if err != nil {
		t.Fatalf("pageResources: %v", err)
	}
	if fonts["F1"] != pdf.NewReference(1, 0) {
		t.Errorf("F1 = %v, want page's own reference, not the inherited one", fonts["F1"])
	}
}

func TestRunPageDrivesContentStream(t *testing.T) {
	fontRef := pdf.NewReference(1, 0)
	fontDict := pdf.Dict{
		"BaseFont":  pdf.Name("Helvetica"),
		"FirstChar": pdf.Integer(72),
		"Widths":    pdf.Array{pdf.Integer(600), pdf.Integer(600)},
	}
	page := pdf.Dict{
		"Type":      pdf.Name("Page"),
		"Resources": pdf.Dict{"Font": pdf.Dict{"F1": fontRef}},
		"Contents":  &pdf.Stream{R: strings.NewReader("BT /F1 12 Tf (HI) Tj ET")},
	}
	g := pdf.MapGetter{fontRef: fontDict}
	ctx := NewContext(g)

	rec := &capturingListener{}
	if err := RunPage(ctx, page, []graphics.EventListener{rec}); err != nil {
		t.Fatalf("RunPage: %v", err)
	}
	if len(rec.events) != 1 {
		t.Fatalf("got %d events, want 1", len(rec.events))
	}
}

type capturingListener struct {
	events []*graphics.ChunkOfTextRenderEvent
}

func (l *capturingListener) TextShown(e *graphics.ChunkOfTextRenderEvent) {
	l.events = append(l.events, e)
}
