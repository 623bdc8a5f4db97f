package writer

import (
	"strings"
	"testing"

	"pdfdoc.dev/pdf"
)

func TestWriteSimpleDict(t *testing.T) {
	var buf strings.Builder
	ctx := NewContext(&buf)

	root := pdf.Dict{"Type": pdf.Name("Catalog")}
	ref, err := Write(root, ctx)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if ref.Number() != 1 {
		t.Errorf("root ref number = %d, want 1", ref.Number())
	}

	out := buf.String()
	if !strings.Contains(out, "1 0 obj") {
		t.Errorf("output missing object header: %q", out)
	}
	if !strings.Contains(out, "endobj") {
		t.Errorf("output missing endobj: %q", out)
	}
	if !strings.Contains(out, "/Type /Catalog") {
		t.Errorf("output missing dict body: %q", out)
	}
	if entry, ok := ctx.Table.Entries[1]; !ok || entry.Offset != 0 {
		t.Errorf("Table.Entries[1] = %v, ok=%v, want offset 0", entry, ok)
	}
}

func TestWriteNestedDictBecomesIndirectReference(t *testing.T) {
	var buf strings.Builder
	ctx := NewContext(&buf)

	child := pdf.Dict{"Value": pdf.Integer(1)}
	root := pdf.Dict{"Child": child}

	rootRef, err := Write(root, ctx)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	childRef, ok := ctx.ids.Reference(child)
	if !ok {
		t.Fatalf("child was never assigned a reference")
	}
	if childRef == rootRef {
		t.Errorf("child reference == root reference")
	}

	out := buf.String()
	wantChildPointer := childRef.String()
	if !strings.Contains(out, wantChildPointer) {
		t.Errorf("root object body does not reference child as %q:\n%s", wantChildPointer, out)
	}
	// the child must also have been emitted as its own indirect object
	if !strings.Contains(out, "/Value 1") {
		t.Errorf("child object body missing from output:\n%s", out)
	}
}

func TestWriteDedupesStructurallyEqualDicts(t *testing.T) {
	var buf strings.Builder
	ctx := NewContext(&buf)

	a := pdf.Dict{"X": pdf.Integer(1)}
	b := pdf.Dict{"X": pdf.Integer(1)} // structurally equal, different allocation
	root := pdf.Dict{"A": a, "B": b}

	if _, err := Write(root, ctx); err != nil {
		t.Fatalf("Write: %v", err)
	}
	refA, _ := ctx.ids.Reference(a)
	refB, _ := ctx.ids.Reference(b)
	if refA != refB {
		t.Errorf("refA = %v, refB = %v, want equal (structural dedup)", refA, refB)
	}

	// only one object (besides root) should have been emitted
	if got := ctx.Table.Highest(); got != 2 {
		t.Errorf("highest object number = %d, want 2 (root + one deduped child)", got)
	}
}

func TestWriteStream(t *testing.T) {
	var buf strings.Builder
	ctx := NewContext(&buf)

	stm := &pdf.Stream{
		Dict: pdf.Dict{"Length": pdf.Integer(5)},
		R:    strings.NewReader("hello"),
	}
	root := pdf.Dict{"Contents": stm}

	if _, err := Write(root, ctx); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "\nstream\nhello\nendstream\n") {
		t.Errorf("output missing stream body framing:\n%s", out)
	}
}

func TestGetReferenceIdentityReuse(t *testing.T) {
	ctx := NewContext(&strings.Builder{})
	d := pdf.Dict{"A": pdf.Integer(1)}

	r1, err := ctx.GetReference(d)
	if err != nil {
		t.Fatalf("GetReference: %v", err)
	}
	r2, err := ctx.GetReference(d)
	if err != nil {
		t.Fatalf("GetReference (again): %v", err)
	}
	if r1 != r2 {
		t.Errorf("GetReference not idempotent for same allocation: %v != %v", r1, r2)
	}
}

func TestStartObjectWithoutReferenceFails(t *testing.T) {
	ctx := NewContext(&strings.Builder{})
	d := pdf.Dict{"A": pdf.Integer(1)}
	if _, err := ctx.startObject(d); err != pdf.ErrMissingReference {
		t.Errorf("startObject without GetReference = %v, want ErrMissingReference", err)
	}
}
