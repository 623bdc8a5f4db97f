package content

import (
	"fmt"
	"io"

	"pdfdoc.dev/pdf"
	"pdfdoc.dev/pdf/graphics"
)

// OpDef is one entry of the operator table (C4's configuration): arity
// and name are data, not per-operator code, so adding or changing an
// operator never touches the interpreter loop below.
type OpDef struct {
	Name  string
	Arity int
	Run   func(c *graphics.Canvas, args []pdf.Object) error
}

// Table is the full set of recognised content-stream operators.
type Table map[string]*OpDef

// Standard is the PDF 1.7 content-stream operator table this module
// implements, restructured from the teacher's operator switch in
// content/extract.go into the data-driven shape the interpreter requires.
var Standard = buildTable()

func num(obj pdf.Object) float64 {
	switch x := obj.(type) {
	case pdf.Integer:
		return float64(x)
	case pdf.Real:
		return float64(x)
	default:
		return 0
	}
}

func buildTable() Table {
	t := Table{}
	add := func(name string, arity int, run func(c *graphics.Canvas, args []pdf.Object) error) {
		t[name] = &OpDef{Name: name, Arity: arity, Run: run}
	}

	add("q", 0, func(c *graphics.Canvas, args []pdf.Object) error {
		c.Push()
		return nil
	})
	add("Q", 0, func(c *graphics.Canvas, args []pdf.Object) error {
		return c.Pop()
	})
	add("cm", 6, func(c *graphics.Canvas, args []pdf.Object) error {
		c.ConcatCTM(graphics.Matrix{num(args[0]), num(args[1]), num(args[2]), num(args[3]), num(args[4]), num(args[5])})
		return nil
	})
	add("w", 1, func(c *graphics.Canvas, args []pdf.Object) error {
		c.State.LineWidth = num(args[0])
		return nil
	})

	// Path construction/painting operators: this interpreter does not
	// rasterize, so these are accepted (for arity checking and
	// compatibility-section behaviour) but otherwise no-ops.
	for name, arity := range map[string]int{
		"m": 2, "l": 2, "c": 6, "v": 4, "y": 4, "h": 0, "re": 4,
		"S": 0, "s": 0, "f": 0, "F": 0, "f*": 0, "n": 0, "W": 0, "W*": 0,
	} {
		add(name, arity, func(c *graphics.Canvas, args []pdf.Object) error { return nil })
	}

	add("gs", 1, func(c *graphics.Canvas, args []pdf.Object) error { return nil })

	add("BT", 0, func(c *graphics.Canvas, args []pdf.Object) error {
		return c.BeginText()
	})
	add("ET", 0, func(c *graphics.Canvas, args []pdf.Object) error {
		return c.EndText()
	})
	add("Tc", 1, func(c *graphics.Canvas, args []pdf.Object) error {
		c.State.Tc = num(args[0])
		return nil
	})
	add("Tw", 1, func(c *graphics.Canvas, args []pdf.Object) error {
		c.State.Tw = num(args[0])
		return nil
	})
	add("Tz", 1, func(c *graphics.Canvas, args []pdf.Object) error {
		c.State.Th = num(args[0])
		return nil
	})
	add("TL", 1, func(c *graphics.Canvas, args []pdf.Object) error {
		c.State.Tl = num(args[0])
		return nil
	})
	add("Ts", 1, func(c *graphics.Canvas, args []pdf.Object) error {
		c.State.Trise = num(args[0])
		return nil
	})
	add("Tr", 1, func(c *graphics.Canvas, args []pdf.Object) error {
		c.State.Tmode = int(num(args[0]))
		return nil
	})
	add("Tf", 2, func(c *graphics.Canvas, args []pdf.Object) error {
		name, ok := args[0].(pdf.Name)
		if !ok {
			return fmt.Errorf("content: Tf expects a font name, got %T", args[0])
		}
		return c.SetFontByName(name, num(args[1]))
	})
	add("Td", 2, func(c *graphics.Canvas, args []pdf.Object) error {
		c.NextLine(num(args[0]), num(args[1]))
		return nil
	})
	add("TD", 2, func(c *graphics.Canvas, args []pdf.Object) error {
		c.State.Tl = -num(args[1])
		c.NextLine(num(args[0]), num(args[1]))
		return nil
	})
	add("Tm", 6, func(c *graphics.Canvas, args []pdf.Object) error {
		c.SetTextMatrix(graphics.Matrix{num(args[0]), num(args[1]), num(args[2]), num(args[3]), num(args[4]), num(args[5])})
		return nil
	})
	add("T*", 0, func(c *graphics.Canvas, args []pdf.Object) error {
		c.NextLine(0, -c.State.Tl)
		return nil
	})
	add("Tj", 1, func(c *graphics.Canvas, args []pdf.Object) error {
		s, ok := args[0].(pdf.String)
		if !ok {
			return fmt.Errorf("content: Tj expects a string, got %T", args[0])
		}
		c.ShowText(s)
		return nil
	})
	add("'", 1, func(c *graphics.Canvas, args []pdf.Object) error {
		c.NextLine(0, -c.State.Tl)
		s, ok := args[0].(pdf.String)
		if !ok {
			return fmt.Errorf("content: ' expects a string, got %T", args[0])
		}
		c.ShowText(s)
		return nil
	})
	add("\"", 3, func(c *graphics.Canvas, args []pdf.Object) error {
		c.State.Tw = num(args[0])
		c.State.Tc = num(args[1])
		c.NextLine(0, -c.State.Tl)
		s, ok := args[2].(pdf.String)
		if !ok {
			return fmt.Errorf("content: \" expects a string, got %T", args[2])
		}
		c.ShowText(s)
		return nil
	})
	add("TJ", 1, func(c *graphics.Canvas, args []pdf.Object) error {
		arr, ok := args[0].(pdf.Array)
		if !ok {
			return fmt.Errorf("content: TJ expects an array, got %T", args[0])
		}
		for _, elem := range arr {
			switch x := elem.(type) {
			case pdf.String:
				c.ShowText(x)
			case pdf.Integer, pdf.Real:
				// Horizontal adjustment, in thousandths of text space;
				// applied against the current font size the same way a
				// negative space-character advance would be.
				adj := -num(x) / 1000 * c.State.FontSize * c.State.Th / 100
				// TJ adjustments don't start a new line: only Tm moves.
				c.State.Tm = graphics.Matrix{1, 0, 0, 1, adj, 0}.Mul(c.State.Tm)
			}
		}
		return nil
	})

	add("G", 1, func(c *graphics.Canvas, args []pdf.Object) error {
		c.State.StrokeColor = graphics.Gray(num(args[0]))
		return nil
	})
	add("g", 1, func(c *graphics.Canvas, args []pdf.Object) error {
		c.State.FillColor = graphics.Gray(num(args[0]))
		return nil
	})
	add("RG", 3, func(c *graphics.Canvas, args []pdf.Object) error {
		c.State.StrokeColor = graphics.RGB{R: num(args[0]), G: num(args[1]), B: num(args[2])}
		return nil
	})
	add("rg", 3, func(c *graphics.Canvas, args []pdf.Object) error {
		c.State.FillColor = graphics.RGB{R: num(args[0]), G: num(args[1]), B: num(args[2])}
		return nil
	})
	add("K", 4, func(c *graphics.Canvas, args []pdf.Object) error {
		c.State.StrokeColor = graphics.CMYK{C: num(args[0]), M: num(args[1]), Y: num(args[2]), K: num(args[3])}
		return nil
	})
	add("k", 4, func(c *graphics.Canvas, args []pdf.Object) error {
		c.State.FillColor = graphics.CMYK{C: num(args[0]), M: num(args[1]), Y: num(args[2]), K: num(args[3])}
		return nil
	})

	add("BMC", 1, func(c *graphics.Canvas, args []pdf.Object) error {
		name, _ := args[0].(pdf.Name)
		c.BeginMarkedContent(name)
		return nil
	})
	add("BDC", 2, func(c *graphics.Canvas, args []pdf.Object) error {
		name, _ := args[0].(pdf.Name)
		c.BeginMarkedContent(name)
		return nil
	})
	add("EMC", 0, func(c *graphics.Canvas, args []pdf.Object) error {
		return c.EndMarkedContent()
	})
	add("BX", 0, func(c *graphics.Canvas, args []pdf.Object) error {
		c.BeginCompatibilitySection()
		return nil
	})
	add("EX", 0, func(c *graphics.Canvas, args []pdf.Object) error {
		c.EndCompatibilitySection()
		return nil
	})

	return t
}

// Run interprets the content-stream bytes read from r against c, using
// table to dispatch operators. resolveFont, if non-nil, is installed as
// c.ResourceFont so that Tf can map a font resource name to the
// Reference the page's /Resources /Font subdictionary associates with
// it.
func Run(r io.Reader, c *graphics.Canvas, table Table, resolveFont func(pdf.Name) pdf.Reference) error {
	if resolveFont != nil {
		c.ResourceFont = resolveFont
	}
	sc := NewScanner(r)
	var operands []pdf.Object
	for {
		tok, err := sc.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		op, isOp := tok.(Operator)
		if !isOp {
			operands = append(operands, tok)
			continue
		}

		def, known := table[string(op)]
		switch {
		case !known:
			// An operator this table doesn't recognize is always skipped,
			// compatibility section or not: PDF readers are expected to
			// tolerate vendor extensions and future operators outside BX/EX.
		case len(operands) < def.Arity:
			if !c.InCompatibilitySection() {
				return &pdf.OperandUnderflowError{Operator: def.Name, Want: def.Arity, Got: len(operands)}
			}
		default:
			args := operands
			if def.Arity > 0 {
				args = operands[len(operands)-def.Arity:]
			} else {
				args = nil
			}
			if runErr := def.Run(c, args); runErr != nil && !c.InCompatibilitySection() {
				return runErr
			}
		}
		operands = nil
	}
}
