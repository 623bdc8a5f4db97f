package writer

import (
	"io"

	"pdfdoc.dev/pdf"
)

// Write serializes root and everything it transitively references as a
// sequence of indirect PDF objects, draining the work queue that
// root.Transform populates as nested Dict/*Stream values are discovered.
// It returns root's own Reference, the one the caller needs to build a
// trailer dictionary's /Root entry.
func Write(root pdf.Object, ctx *Context) (pdf.Reference, error) {
	rt := NewRoot()

	rootRef, err := rt.indirect(root, ctx)
	if err != nil {
		return 0, err
	}

	for len(ctx.pending) > 0 {
		obj := ctx.pending[0]
		ctx.pending = ctx.pending[1:]

		ref, ok := ctx.ids.Reference(obj)
		if !ok || ctx.written[ref] {
			continue
		}

		if err := writeOne(rt, obj, ctx); err != nil {
			return 0, err
		}
		ctx.written[ref] = true
	}

	return rootRef, nil
}

func writeOne(rt *Root, obj pdf.Object, ctx *Context) error {
	if _, err := ctx.startObject(obj); err != nil {
		return err
	}

	switch v := obj.(type) {
	case *pdf.Stream:
		body, err := rt.Transform(v.Dict, ctx)
		if err != nil {
			return err
		}
		if err := body.PDF(ctx); err != nil {
			return err
		}
		if _, err := io.WriteString(ctx, "\nstream\n"); err != nil {
			return err
		}
		if v.R != nil {
			if _, err := io.Copy(ctx, v.R); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(ctx, "\nendstream\n"); err != nil {
			return err
		}
	default:
		body, err := rt.Transform(obj, ctx)
		if err != nil {
			return err
		}
		if err := body.PDF(ctx); err != nil {
			return err
		}
		if _, err := io.WriteString(ctx, "\n"); err != nil {
			return err
		}
	}

	return ctx.endObject()
}
