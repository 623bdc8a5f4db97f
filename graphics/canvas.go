package graphics

import "pdfdoc.dev/pdf"

// FontMetrics is the subset of font-resolution behaviour Canvas needs to
// turn a raw string argument into a GlyphLine and an event: per-byte
// advance and Unicode text, plus ascent/descent in glyph space (1000ths
// of an em). Canvas depends only on this interface, not on the font
// package, so that font resolution (C6) stays decoupled from the stack
// machine (C4) — the same "external collaborator" shape the content
// tokenizer has.
type FontMetrics interface {
	Advance(code byte) float64
	Text(code byte) string
	Ascent() float64
	Descent() float64
}

// FontProvider resolves a /Font resource reference to its FontMetrics, as
// set up by the Tf operator against the page's /Resources dictionary.
type FontProvider interface {
	Lookup(ref pdf.Reference) (FontMetrics, error)
}

// Canvas is the stack machine that drives content-stream interpretation
// (C4): an operand stack (owned by the caller's operator table, since
// operand typing is operator-specific), a graphics-state stack, a
// marked-content stack, and the BX/EX compatibility-section flag that
// makes arity mismatches and operator errors non-fatal (unknown operators
// are skipped whether or not the flag is set).
type Canvas struct {
	State *State

	stateStack   []*State
	markedStack  []pdf.Name
	inCompat     bool
	inTextObject bool

	Fonts     FontProvider
	Listeners []EventListener

	// ResourceFont maps a content stream's /Font resource name (the
	// first operand of Tf) to the Reference the page's /Resources /Font
	// subdictionary associates with it. The content-stream interpreter
	// sets this before running a page, keeping resource-dictionary
	// lookup out of the stack machine itself.
	ResourceFont func(pdf.Name) pdf.Reference

	font FontMetrics // resolved by the most recent Tf
}

// NewCanvas returns a Canvas ready to interpret a content stream, with a
// fresh initial graphics state.
func NewCanvas(fonts FontProvider, listeners ...EventListener) *Canvas {
	return &Canvas{
		State:     NewState(),
		Fonts:     fonts,
		Listeners: listeners,
	}
}

// InCompatibilitySection reports whether BX has been seen without a
// matching EX yet.
func (c *Canvas) InCompatibilitySection() bool { return c.inCompat }

// BeginCompatibilitySection executes BX.
func (c *Canvas) BeginCompatibilitySection() { c.inCompat = true }

// EndCompatibilitySection executes EX. EX outside a BX section is
// tolerated (ends up a no-op), matching the operator's purely advisory
// role.
func (c *Canvas) EndCompatibilitySection() { c.inCompat = false }

// Push executes "q": it deep-copies the current graphics state onto the
// state stack so that nested modifications (cm, color, text state) can be
// discarded by a later Q.
func (c *Canvas) Push() {
	c.stateStack = append(c.stateStack, c.State.Clone())
}

// Pop executes "Q". It returns ErrGraphicsStateUnderflow if there is no
// matching q; inside a compatibility section this is not fatal to the
// interpreter as a whole (the operator table's Run wrapper decides
// whether to surface or swallow it).
func (c *Canvas) Pop() error {
	n := len(c.stateStack)
	if n == 0 {
		return pdf.ErrGraphicsStateUnderflow
	}
	c.State = c.stateStack[n-1]
	c.stateStack = c.stateStack[:n-1]
	return nil
}

// BeginMarkedContent executes BMC/BDC, pushing tag.
func (c *Canvas) BeginMarkedContent(tag pdf.Name) {
	c.markedStack = append(c.markedStack, tag)
}

// EndMarkedContent executes EMC. It returns ErrMarkedContentUnderflow if
// there is no matching BMC/BDC.
func (c *Canvas) EndMarkedContent() error {
	n := len(c.markedStack)
	if n == 0 {
		return pdf.ErrMarkedContentUnderflow
	}
	c.markedStack = c.markedStack[:n-1]
	return nil
}

// BeginText executes BT. Nested BT without an intervening ET is an error
// unless the interpreter is inside a BX/EX compatibility section, per
// §4.4's edge case for malformed content streams.
func (c *Canvas) BeginText() error {
	if c.inTextObject && !c.inCompat {
		return pdf.ErrNestedTextObject
	}
	c.inTextObject = true
	c.State.Tm = Identity
	c.State.Tlm = Identity
	return nil
}

// EndText executes ET.
func (c *Canvas) EndText() error {
	if !c.inTextObject && !c.inCompat {
		return pdf.ErrTextObjectUnderflow
	}
	c.inTextObject = false
	return nil
}

// SetFontByName executes Tf given the raw resource name operand,
// resolving it to a Reference via ResourceFont before delegating to
// SetFont.
func (c *Canvas) SetFontByName(name pdf.Name, size float64) error {
	var ref pdf.Reference
	if c.ResourceFont != nil {
		ref = c.ResourceFont(name)
	}
	return c.SetFont(ref, size)
}

// SetFont executes Tf, resolving fontRef through Fonts so that subsequent
// text-showing operators have metrics to work with.
func (c *Canvas) SetFont(fontRef pdf.Reference, size float64) error {
	c.State.Font = fontRef
	c.State.FontSize = size
	if c.Fonts == nil {
		return nil
	}
	fm, err := c.Fonts.Lookup(fontRef)
	if err != nil {
		return err
	}
	c.font = fm
	return nil
}

// ShowText executes Tj (and the string-showing half of ' / " / TJ): it
// decodes s as a sequence of single-byte character codes against the
// current font, advances Tm by the resulting width, and notifies every
// attached EventListener with the resulting ChunkOfTextRenderEvent. A
// nil current font (Tf never called) is a no-op, matching a malformed
// but non-fatal content stream.
func (c *Canvas) ShowText(s pdf.String) {
	if c.font == nil {
		return
	}
	gl := &GlyphLine{
		Text:   "",
		Widths: make([]float64, len(s)),
		Spaces: make([]bool, len(s)),
	}
	for i, code := range s {
		gl.Text += c.font.Text(code)
		gl.Widths[i] = c.font.Advance(code)
		gl.Spaces[i] = code == ' '
	}

	width := gl.WidthInTextSpace(c.State.FontSize, c.State.Tc, c.State.Tw, c.State.Th)
	event := NewChunkOfTextRenderEvent(gl, c.State, width, c.font.Ascent(), c.font.Descent())
	for _, l := range c.Listeners {
		l.TextShown(event)
	}

	// PDF 32000-1 9.4.3: the text matrix advances by the raw text-space
	// width, premultiplied as a translation, not by the width transformed
	// through Tm's own linear part.
	c.State.Tm = Matrix{1, 0, 0, 1, width, 0}.Mul(c.State.Tm)
}

func sumWidths(ws []float64) float64 {
	var total float64
	for _, w := range ws {
		total += w
	}
	return total
}

// NextLine executes T* / Td / TD: it moves Tlm by (tx, ty) in text space
// and resets Tm to the new Tlm, the shared behaviour of all three
// line-positioning operators.
func (c *Canvas) NextLine(tx, ty float64) {
	c.State.Tlm = Matrix{1, 0, 0, 1, tx, ty}.Mul(c.State.Tlm)
	c.State.Tm = c.State.Tlm
}

// SetTextMatrix executes Tm, replacing both Tm and Tlm.
func (c *Canvas) SetTextMatrix(m Matrix) {
	c.State.Tm = m
	c.State.Tlm = m
}

// ConcatCTM executes "cm".
func (c *Canvas) ConcatCTM(m Matrix) {
	c.State.CTM = m.Mul(c.State.CTM)
}
