// Package xref holds cross-reference bookkeeping: which object numbers
// are in use, where their bytes live, and the trailer dictionary that
// anchors the document's Root/Info entries. The write pipeline records
// each object's offset here as it writes it; the read pipeline does not
// use this package.
package xref

import "pdfdoc.dev/pdf"

// Entry describes one cross-reference table entry.
type Entry struct {
	Offset     int64
	Generation uint16
	Free       bool
}

// Table is the cross-reference table: which object numbers exist and
// where to find them. The teacher keeps the equivalent bookkeeping inline
// in its file-level type; here it is a package of its own, filled in by
// the writer's startObject with one entry per written object.
type Table struct {
	Entries map[uint32]Entry
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{Entries: make(map[uint32]Entry)}
}

// Highest returns the largest object number recorded in the table, or 0
// if the table is empty. The writer does not consult it when minting
// object numbers; it keeps its own count.
func (t *Table) Highest() uint32 {
	var max uint32
	for n := range t.Entries {
		if n > max {
			max = n
		}
	}
	return max
}

// Trailer is the document trailer: a plain dictionary carrying at least
// Root and, optionally, Info, ID, and the encryption dictionary.
type Trailer pdf.Dict
