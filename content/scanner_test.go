package content

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"pdfdoc.dev/pdf"
)

func scanAll(t *testing.T, src string) []pdf.Object {
	t.Helper()
	sc := NewScanner(strings.NewReader(src))
	var toks []pdf.Object
	for {
		tok, err := sc.Next()
		if err != nil {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

func TestScannerOperandsAndOperators(t *testing.T) {
	toks := scanAll(t, "1 2.5 (hi) /Name q")
	want := []pdf.Object{
		pdf.Integer(1),
		pdf.Real(2.5),
		pdf.String("hi"),
		pdf.Name("Name"),
		Operator("q"),
	}
	if diff := cmp.Diff(want, toks); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestScannerArray(t *testing.T) {
	toks := scanAll(t, "[1 (a) /b] TJ")
	want := []pdf.Object{
		pdf.Array{pdf.Integer(1), pdf.String("a"), pdf.Name("b")},
		Operator("TJ"),
	}
	if diff := cmp.Diff(want, toks); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestScannerDict(t *testing.T) {
	toks := scanAll(t, "<< /Foo 1 /Bar (x) >>")
	want := []pdf.Object{
		pdf.Dict{"Foo": pdf.Integer(1), "Bar": pdf.String("x")},
	}
	if diff := cmp.Diff(want, toks); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestScannerHexString(t *testing.T) {
	toks := scanAll(t, "<48656c6c6f>")
	want := []pdf.Object{pdf.String("Hello")}
	if diff := cmp.Diff(want, toks); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestScannerBooleanAndNull(t *testing.T) {
	toks := scanAll(t, "true false null")
	want := []pdf.Object{pdf.Boolean(true), pdf.Boolean(false), nil}
	if diff := cmp.Diff(want, toks); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestScannerComment(t *testing.T) {
	toks := scanAll(t, "1 % a comment\n2")
	want := []pdf.Object{pdf.Integer(1), pdf.Integer(2)}
	if diff := cmp.Diff(want, toks); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}
