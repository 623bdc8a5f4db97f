package reader

import (
	"testing"

	"pdfdoc.dev/pdf"
	"pdfdoc.dev/pdf/graphics"
)

func TestRootTransformsPrimitivesUnchanged(t *testing.T) {
	root := NewRoot()
	ctx := NewContext(pdf.MapGetter{})

	got, err := root.Transform(pdf.Integer(42), nil, ctx, nil)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if got != pdf.Integer(42) {
		t.Errorf("got %v, want 42", got)
	}
}

func TestRootTransformResolvesReferenceAndRecordsIdentity(t *testing.T) {
	ref := pdf.NewReference(5, 0)
	d := pdf.Dict{"Foo": pdf.Integer(1)}
	g := pdf.MapGetter{ref: d}
	ctx := NewContext(g)
	root := NewRoot()

	got, err := root.Transform(ref, nil, ctx, nil)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	out, ok := got.(pdf.Dict)
	if !ok {
		t.Fatalf("got %T, want pdf.Dict", got)
	}
	if out["Foo"] != pdf.Integer(1) {
		t.Errorf("Foo = %v, want 1", out["Foo"])
	}
	if gotRef, ok := ctx.Registry.Reference(out); !ok || gotRef != ref {
		t.Errorf("Registry.Reference(out) = (%v, %v), want (%v, true)", gotRef, ok, ref)
	}
}

func TestRootTransformDictRecurses(t *testing.T) {
	inner := pdf.Dict{"A": pdf.Integer(1)}
	outer := pdf.Dict{"Inner": inner}
	ctx := NewContext(pdf.MapGetter{})
	root := NewRoot()

	got, err := root.Transform(outer, nil, ctx, nil)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	out := got.(pdf.Dict)
	innerOut, ok := out["Inner"].(pdf.Dict)
	if !ok {
		t.Fatalf("Inner = %T, want pdf.Dict", out["Inner"])
	}
	if innerOut["A"] != pdf.Integer(1) {
		t.Errorf("Inner.A = %v, want 1", innerOut["A"])
	}
}

func TestRootTransformCatalogFlattensPages(t *testing.T) {
	pageA := pdf.Dict{"Type": pdf.Name("Page")}
	pageB := pdf.Dict{"Type": pdf.Name("Page")}
	nested := pdf.Dict{"Type": pdf.Name("Pages"), "Kids": pdf.Array{pageA, pageB}}
	pageC := pdf.Dict{"Type": pdf.Name("Page")}
	pages := pdf.Dict{"Type": pdf.Name("Pages"), "Kids": pdf.Array{nested, pageC}}
	catalog := pdf.Dict{"Type": pdf.Name("Catalog"), "Pages": pages}

	ctx := NewContext(pdf.MapGetter{})
	root := NewRoot()

	got, err := root.Transform(catalog, nil, ctx, nil)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	out := got.(pdf.Dict)
	outPages := out["Pages"].(pdf.Dict)
	kids := outPages["Kids"].(pdf.Array)
	if len(kids) != 3 {
		t.Fatalf("flattened Kids has %d entries, want 3", len(kids))
	}
	if count := outPages["Count"]; count != pdf.Integer(3) {
		t.Errorf("Count = %v, want 3", count)
	}
	if !pdf.Equal(kids[0], pageA) || !pdf.Equal(kids[1], pageB) || !pdf.Equal(kids[2], pageC) {
		t.Errorf("Kids order = %v, want [pageA, pageB, pageC] (depth-first preorder)", kids)
	}
}

type noopListener struct{}

func (noopListener) TextShown(*graphics.ChunkOfTextRenderEvent) {}

func TestRootTransformCatalogSetsContextListeners(t *testing.T) {
	catalog := pdf.Dict{"Type": pdf.Name("Catalog")}
	ctx := NewContext(pdf.MapGetter{})
	root := NewRoot()

	listeners := []graphics.EventListener{noopListener{}}
	if _, err := root.Transform(catalog, nil, ctx, listeners); err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if len(ctx.Listeners) != 1 {
		t.Errorf("Listeners not recorded on Context, got %d want 1", len(ctx.Listeners))
	}
}
