package content

import (
	"strings"
	"testing"

	"pdfdoc.dev/pdf"
	"pdfdoc.dev/pdf/graphics"
)

type stubFont struct{}

func (stubFont) Advance(code byte) float64 { return 500 }
func (stubFont) Text(code byte) string      { return string(rune(code)) }
func (stubFont) Ascent() float64            { return 700 }
func (stubFont) Descent() float64           { return -200 }

type stubFonts struct{}

func (stubFonts) Lookup(ref pdf.Reference) (graphics.FontMetrics, error) {
	return stubFont{}, nil
}

type recordingListener struct {
	events []*graphics.ChunkOfTextRenderEvent
}

func (l *recordingListener) TextShown(e *graphics.ChunkOfTextRenderEvent) {
	l.events = append(l.events, e)
}

func TestRunShowsText(t *testing.T) {
	rec := &recordingListener{}
	canvas := graphics.NewCanvas(stubFonts{}, rec)
	canvas.ResourceFont = func(name pdf.Name) pdf.Reference {
		return pdf.NewReference(1, 0)
	}

	src := "BT /F1 12 Tf (Hi) Tj ET"
	if err := Run(strings.NewReader(src), canvas, Standard, canvas.ResourceFont); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(rec.events) != 1 {
		t.Fatalf("got %d events, want 1", len(rec.events))
	}
	if rec.events[0].Text != "Hi" {
		t.Errorf("Text = %q, want %q", rec.events[0].Text, "Hi")
	}
}

func TestRunGraphicsStateStack(t *testing.T) {
	canvas := graphics.NewCanvas(stubFonts{})
	src := "q 1 0 0 1 10 20 cm Q"
	if err := Run(strings.NewReader(src), canvas, Standard, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if canvas.State.CTM != graphics.Identity {
		t.Errorf("CTM after q/Q = %v, want identity (Q restores pre-cm state)", canvas.State.CTM)
	}
}

func TestRunUnbalancedQFails(t *testing.T) {
	canvas := graphics.NewCanvas(stubFonts{})
	if err := Run(strings.NewReader("Q"), canvas, Standard, nil); err == nil {
		t.Errorf("Run(\"Q\"): want error, got nil")
	}
}

func TestRunCompatibilitySectionSwallowsUnknownOperator(t *testing.T) {
	canvas := graphics.NewCanvas(stubFonts{})
	src := "BX totallyUnknownOp EX"
	if err := Run(strings.NewReader(src), canvas, Standard, nil); err != nil {
		t.Errorf("Run inside BX/EX: unexpected error %v", err)
	}
}

func TestRunUnknownOperatorOutsideCompatibilitySucceeds(t *testing.T) {
	canvas := graphics.NewCanvas(stubFonts{})
	if err := Run(strings.NewReader("totallyUnknownOp"), canvas, Standard, nil); err != nil {
		t.Errorf("Run with unknown operator outside BX/EX: unexpected error %v", err)
	}
}

func TestRunArityUnderflowOutsideCompatibilityFails(t *testing.T) {
	canvas := graphics.NewCanvas(stubFonts{})
	if err := Run(strings.NewReader("cm"), canvas, Standard, nil); err == nil {
		t.Errorf("Run(\"cm\") with no operands: want error, got nil")
	}
}
