package graphics

import "pdfdoc.dev/pdf"

// Text render modes, per PDF 32000-1:2008 table 106.
const (
	RenderFill = iota
	RenderStroke
	RenderFillStroke
	RenderInvisible
	RenderFillClip
	RenderStrokeClip
	RenderFillStrokeClip
	RenderClip
)

// State is the graphics state (C5): the parts of it this interpreter
// tracks are exactly the ones the text-showing operators and the event
// geometry in §4.5 need, not the full PDF graphics state (no clipping
// path, no soft mask, no rendering intent — those never affect the text
// this module extracts).
type State struct {
	CTM Matrix

	// Text state, reset to these values by BT.
	Tm, Tlm Matrix

	Font     pdf.Reference
	FontSize float64
	Tc       float64 // character spacing
	Tw       float64 // word spacing
	Th       float64 // horizontal scaling, percent (100 = normal)
	Tl       float64 // leading
	Trise    float64 // text rise
	Tmode    int     // render mode

	StrokeColor Color
	FillColor   Color
	LineWidth   float64
}

// NewState returns the initial graphics state of a fresh content stream.
func NewState() *State {
	return &State{
		CTM:         Identity,
		Tm:          Identity,
		Tlm:         Identity,
		Th:          100,
		StrokeColor: DefaultColor,
		FillColor:   DefaultColor,
		LineWidth:   1,
	}
}

// Clone returns a deep copy of g, the operation "q" performs when pushing
// the graphics-state stack (each pushed/popped generation must be
// independently mutable, or Tm changes inside a q/Q pair would leak to
// the caller after Q).
func (g *State) Clone() *State {
	clone := *g
	return &clone
}
