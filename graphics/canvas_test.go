package graphics

import (
	"testing"

	"pdfdoc.dev/pdf"
)

type testFont struct{}

func (testFont) Advance(code byte) float64 { return 600 }
func (testFont) Text(code byte) string      { return string(rune(code)) }
func (testFont) Ascent() float64            { return 700 }
func (testFont) Descent() float64           { return -300 }

type testFonts struct{}

func (testFonts) Lookup(ref pdf.Reference) (FontMetrics, error) { return testFont{}, nil }

func TestCanvasPushPopRestoresState(t *testing.T) {
	c := NewCanvas(nil)
	c.State.LineWidth = 1
	c.Push()
	c.State.LineWidth = 9
	if err := c.Pop(); err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if c.State.LineWidth != 1 {
		t.Errorf("LineWidth after Pop = %v, want 1", c.State.LineWidth)
	}
}

func TestCanvasPopUnderflow(t *testing.T) {
	c := NewCanvas(nil)
	if err := c.Pop(); err != pdf.ErrGraphicsStateUnderflow {
		t.Errorf("Pop on empty stack = %v, want ErrGraphicsStateUnderflow", err)
	}
}

func TestCanvasBeginTextResetsMatrices(t *testing.T) {
	c := NewCanvas(nil)
	c.State.Tm = Matrix{2, 0, 0, 2, 9, 9}
	if err := c.BeginText(); err != nil {
		t.Fatalf("BeginText: %v", err)
	}
	if c.State.Tm != Identity || c.State.Tlm != Identity {
		t.Errorf("Tm/Tlm after BT = %v/%v, want identity", c.State.Tm, c.State.Tlm)
	}
}

func TestCanvasNestedBeginTextFails(t *testing.T) {
	c := NewCanvas(nil)
	if err := c.BeginText(); err != nil {
		t.Fatalf("first BeginText: %v", err)
	}
	if err := c.BeginText(); err != pdf.ErrNestedTextObject {
		t.Errorf("nested BeginText = %v, want ErrNestedTextObject", err)
	}
}

func TestCanvasNestedBeginTextToleratedInCompatibilitySection(t *testing.T) {
	c := NewCanvas(nil)
	c.BeginCompatibilitySection()
	if err := c.BeginText(); err != nil {
		t.Fatalf("first BeginText: %v", err)
	}
	if err := c.BeginText(); err != nil {
		t.Errorf("nested BeginText inside BX/EX: want nil, got %v", err)
	}
}

func TestCanvasShowTextAdvancesTextMatrix(t *testing.T) {
	rec := &recordingListener{}
	c := NewCanvas(testFonts{}, rec)
	if err := c.SetFont(pdf.NewReference(1, 0), 12); err != nil {
		t.Fatalf("SetFont: %v", err)
	}
	c.ShowText(pdf.String("ab"))

	if len(rec.events) != 1 {
		t.Fatalf("got %d events, want 1", len(rec.events))
	}
	if rec.events[0].Text != "ab" {
		t.Errorf("event.Text = %q, want %q", rec.events[0].Text, "ab")
	}
	if c.State.Tm == Identity {
		t.Errorf("Tm did not advance after ShowText")
	}
}

func TestCanvasShowTextAdvancesNonIdentityTextMatrix(t *testing.T) {
	rec := &recordingListener{}
	c := NewCanvas(testFonts{}, rec)
	if err := c.SetFont(pdf.NewReference(1, 0), 12); err != nil {
		t.Fatalf("SetFont: %v", err)
	}
	tm := Matrix{0, 1, -1, 0, 5, 7} // 90-degree rotation plus translation
	c.SetTextMatrix(tm)

	c.ShowText(pdf.String("a"))

	wantTm := Matrix{1, 0, 0, 1, sumTextWidth(c, "a"), 0}.Mul(tm)
	if c.State.Tm != wantTm {
		t.Errorf("Tm after ShowText = %v, want %v (premultiply by raw advance, not by Tm-transformed advance)", c.State.Tm, wantTm)
	}
}

// sumTextWidth recomputes the text-space advance ShowText used, so the
// test doesn't hardcode the font metrics/Tc/Tw/Th arithmetic.
func sumTextWidth(c *Canvas, s string) float64 {
	gl := &GlyphLine{Widths: make([]float64, len(s)), Spaces: make([]bool, len(s))}
	for i, code := range []byte(s) {
		gl.Widths[i] = c.font.Advance(code)
		gl.Spaces[i] = code == ' '
	}
	return gl.WidthInTextSpace(c.State.FontSize, c.State.Tc, c.State.Tw, c.State.Th)
}

func TestCanvasShowTextWithoutFontIsNoop(t *testing.T) {
	rec := &recordingListener{}
	c := NewCanvas(nil, rec)
	c.ShowText(pdf.String("x"))
	if len(rec.events) != 0 {
		t.Errorf("got %d events with no font set, want 0", len(rec.events))
	}
}

type recordingListener struct {
	events []*ChunkOfTextRenderEvent
}

func (l *recordingListener) TextShown(e *ChunkOfTextRenderEvent) {
	l.events = append(l.events, e)
}
