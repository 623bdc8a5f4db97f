package font

import (
	"testing"

	"pdfdoc.dev/pdf"
)

func TestResolveTextNoEncodingFallsBackToStandard(t *testing.T) {
	g := pdf.MapGetter{}
	table, err := resolveText(g, pdf.Dict{}, false)
	if err != nil {
		t.Fatalf("resolveText: %v", err)
	}
	// 'A' (0x41) is "A" under StandardEncoding.
	if table[0x41] != "A" {
		t.Errorf("table[0x41] = %q, want \"A\"", table[0x41])
	}
}

func TestResolveTextWinAnsiEncoding(t *testing.T) {
	g := pdf.MapGetter{}
	d := pdf.Dict{"Encoding": pdf.Name("WinAnsiEncoding")}
	table, err := resolveText(g, d, false)
	if err != nil {
		t.Fatalf("resolveText: %v", err)
	}
	if table[0x41] != "A" {
		t.Errorf("table[0x41] = %q, want \"A\"", table[0x41])
	}
	// bullet (0x95 in Windows-1252) should decode to U+2022.
	if table[0x95] != "•" {
		t.Errorf("table[0x95] = %q, want bullet", table[0x95])
	}
}

func TestResolveTextDifferencesOverride(t *testing.T) {
	g := pdf.MapGetter{}
	d := pdf.Dict{
		"Encoding": pdf.Dict{
			"BaseEncoding": pdf.Name("WinAnsiEncoding"),
			"Differences": pdf.Array{
				pdf.Integer(65), pdf.Name("B"),
			},
		},
	}
	table, err := resolveText(g, d, false)
	if err != nil {
		t.Fatalf("resolveText: %v", err)
	}
	if table[65] != "B" {
		t.Errorf("table[65] = %q, want \"B\" (Differences override)", table[65])
	}
	if table[66] != "B" {
		t.Errorf("table[66] = %q, want \"B\" (base WinAnsi)", table[66])
	}
}

func TestResolveTextUnknownBaseEncodingFails(t *testing.T) {
	g := pdf.MapGetter{}
	d := pdf.Dict{"Encoding": pdf.Name("BogusEncoding")}
	if _, err := resolveText(g, d, false); err == nil {
		t.Errorf("resolveText with unknown base encoding: want error, got nil")
	}
}
