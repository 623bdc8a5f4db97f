package xref

import (
	"testing"

	"pdfdoc.dev/pdf"
)

func TestNewTableEmpty(t *testing.T) {
	tbl := NewTable()
	if len(tbl.Entries) != 0 {
		t.Errorf("new table has %d entries, want 0", len(tbl.Entries))
	}
	if got := tbl.Highest(); got != 0 {
		t.Errorf("Highest() on empty table = %d, want 0", got)
	}
}

func TestTableHighest(t *testing.T) {
	tbl := NewTable()
	tbl.Entries[1] = Entry{Offset: 10}
	tbl.Entries[7] = Entry{Offset: 70}
	tbl.Entries[3] = Entry{Offset: 30}

	if got := tbl.Highest(); got != 7 {
		t.Errorf("Highest() = %d, want 7", got)
	}
}

func TestTrailerIsADict(t *testing.T) {
	tr := Trailer{"Root": pdf.NewReference(1, 0)}
	if _, ok := tr["Root"].(pdf.Reference); !ok {
		t.Errorf("Trailer[Root] is not a pdf.Reference")
	}
}
