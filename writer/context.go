package writer

import (
	"fmt"
	"io"

	"pdfdoc.dev/pdf"
	"pdfdoc.dev/pdf/xref"
)

// Context owns everything one write pass needs: the destination writer,
// the running byte offset (so startObject can record where each indirect
// object begins, seeding the xref table), and the two de-duplication
// registries §4.3 specifies — an identity-indexed one (reused verbatim
// across repeated visits of the same allocation) and a hash-indexed one
// (shared across distinct-but-structurally-equal allocations).
type Context struct {
	W      io.Writer
	Table  *xref.Table
	offset int64

	ids     *pdf.Registry
	buckets map[uint64][]bucketEntry
	count   uint32

	pending []pdf.Object
	written map[pdf.Reference]bool
}

type bucketEntry struct {
	obj pdf.Object
	ref pdf.Reference
}

// NewContext returns a Context ready to write indirect objects to w.
func NewContext(w io.Writer) *Context {
	return &Context{
		W:       w,
		Table:   xref.NewTable(),
		ids:     pdf.NewRegistry(),
		buckets: make(map[uint64][]bucketEntry),
		written: make(map[pdf.Reference]bool),
	}
}

// enqueue schedules obj for indirect-object emission if it hasn't already
// been written or queued.
func (ctx *Context) enqueue(obj pdf.Object) {
	ref, ok := ctx.ids.Reference(obj)
	if !ok || ctx.written[ref] {
		return
	}
	for _, p := range ctx.pending {
		if pr, _ := ctx.ids.Reference(p); pr == ref {
			return
		}
	}
	ctx.pending = append(ctx.pending, obj)
}

// countingWriter would be needed for an exact running byte offset against
// an arbitrary io.Writer; Context instead requires callers to report
// writes through Context.Write so offset tracking stays centralised here
// rather than wrapping W in a second writer type.
func (ctx *Context) Write(p []byte) (int, error) {
	n, err := ctx.W.Write(p)
	ctx.offset += int64(n)
	return n, err
}

// GetReference implements §4.3's three-step reference allocation: reuse by
// identity, then by structural equality within obj's hash bucket, and
// only then mint a fresh object number.
func (ctx *Context) GetReference(obj pdf.Object) (pdf.Reference, error) {
	if ref, ok := ctx.ids.Reference(obj); ok {
		return ref, nil
	}

	h, hashErr := pdf.Hash(obj)
	if hashErr == nil {
		for _, e := range ctx.buckets[h] {
			if pdf.Equal(e.obj, obj) {
				if err := ctx.ids.SetReference(obj, e.ref); err != nil {
					return 0, err
				}
				return e.ref, nil
			}
		}
	}

	ctx.count++
	ref := pdf.NewReference(ctx.count, 0)
	if err := ctx.ids.SetReference(obj, ref); err != nil {
		return 0, err
	}
	if hashErr == nil {
		ctx.buckets[h] = append(ctx.buckets[h], bucketEntry{obj: obj, ref: ref})
	}
	return ref, nil
}

// startObject writes the indirect-object header and records the
// pre-header offset into the xref table, per §4.3/§6. It fails with
// MissingReference if obj has not already been assigned a Reference via
// GetReference.
func (ctx *Context) startObject(obj pdf.Object) (pdf.Reference, error) {
	ref, ok := ctx.ids.Reference(obj)
	if !ok {
		return 0, pdf.ErrMissingReference
	}
	offset := ctx.offset
	if _, err := fmt.Fprintf(ctx, "%d %d obj\n", ref.Number(), ref.Generation()); err != nil {
		return 0, err
	}
	ctx.Table.Entries[ref.Number()] = xref.Entry{Offset: offset, Generation: ref.Generation()}
	return ref, nil
}

// endObject writes the indirect-object trailer, per §6.
func (ctx *Context) endObject() error {
	_, err := io.WriteString(ctx, "endobj\n\n")
	return err
}
