package font

import (
	"strings"
	"testing"
)

func TestParseToUnicodeBfChar(t *testing.T) {
	src := "1 beginbfchar <41> <0041> <42> <0042> endbfchar"
	tu, err := parseToUnicode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parseToUnicode: %v", err)
	}
	if s, ok := tu.lookup(0x41); !ok || s != "A" {
		t.Errorf("lookup(0x41) = (%q, %v), want (\"A\", true)", s, ok)
	}
	if s, ok := tu.lookup(0x42); !ok || s != "B" {
		t.Errorf("lookup(0x42) = (%q, %v), want (\"B\", true)", s, ok)
	}
	if _, ok := tu.lookup(0x43); ok {
		t.Errorf("lookup(0x43) = ok, want not found")
	}
}

func TestParseToUnicodeBfRangeString(t *testing.T) {
	src := "1 beginbfrange <41> <43> <0061> endbfrange"
	tu, err := parseToUnicode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parseToUnicode: %v", err)
	}
	want := map[byte]string{0x41: "a", 0x42: "b", 0x43: "c"}
	for code, text := range want {
		if s, ok := tu.lookup(code); !ok || s != text {
			t.Errorf("lookup(0x%x) = (%q, %v), want (%q, true)", code, s, ok, text)
		}
	}
}

func TestParseToUnicodeBfRangeArray(t *testing.T) {
	src := "1 beginbfrange <41> <42> [<0058> <0059>] endbfrange"
	tu, err := parseToUnicode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parseToUnicode: %v", err)
	}
	if s, ok := tu.lookup(0x41); !ok || s != "X" {
		t.Errorf("lookup(0x41) = (%q, %v), want (\"X\", true)", s, ok)
	}
	if s, ok := tu.lookup(0x42); !ok || s != "Y" {
		t.Errorf("lookup(0x42) = (%q, %v), want (\"Y\", true)", s, ok)
	}
}

func TestParseToUnicodeIgnoresUnrelatedOperators(t *testing.T) {
	src := "/CIDInit /ProcSet findresource begin\n1 beginbfchar <41> <0041> endbfchar\nend"
	tu, err := parseToUnicode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parseToUnicode: %v", err)
	}
	if s, ok := tu.lookup(0x41); !ok || s != "A" {
		t.Errorf("lookup(0x41) = (%q, %v), want (\"A\", true)", s, ok)
	}
}
