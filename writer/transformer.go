// Package writer implements the write transformer pipeline (C3), the dual
// of reader: a root transformer composed of handlers that serialize a
// domain tree back to PDF bytes, allocating and de-duplicating indirect
// object numbers as it goes.
package writer

import "pdfdoc.dev/pdf"

// Transformer is one node of the write pipeline. It returns the
// direct-object form of obj — a copy with any Dict/*Stream descendant
// replaced by the Reference it will be written under — without mutating
// obj itself, so that obj's structural hash (computed once, before any
// replacement) stays valid for later reference-deduplication lookups
// against objects visited afterwards.
type Transformer interface {
	CanTransform(obj pdf.Object) bool
	Transform(obj pdf.Object, ctx *Context) (pdf.Object, error)
}
