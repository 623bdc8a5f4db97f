package graphics

import (
	"math"

	"pdfdoc.dev/pdf"
)

// GlyphLine is the decoded run of character identifiers a text-showing
// operator draws, together with their per-glyph advances in glyph space.
// Canvas builds one from the raw pdf.String argument of Tj/'/" and the
// TJ array's string segments; font resolution (cid -> advance, cid ->
// unicode) is supplied by the caller via the Font field of State plus an
// external width/text lookup, since this package knows nothing about
// font dictionaries.
type GlyphLine struct {
	Text    string
	Widths  []float64 // per-glyph advance, in glyph space (1000ths of an em, unscaled by font size)
	Spaces  []bool     // whether glyph i is the single-byte space code
}

// WidthInTextSpace returns the total advance of the line in text space,
// scaled by font size, character/word spacing and horizontal scaling —
// the same quantity PDF 32000-1:2008 §9.4.3 calls tx.
func (gl *GlyphLine) WidthInTextSpace(fontSize, tc, tw, th float64) float64 {
	var total float64
	for i, w := range gl.Widths {
		adv := w*fontSize/1000 + tc
		if gl.Spaces[i] {
			adv += tw
		}
		total += adv * th / 100
	}
	return total
}

// ChunkOfTextRenderEvent is emitted by Canvas once per text-showing
// operator. Its baseline and full bounding boxes are computed exactly as
// the original implementation computes them: text space (0, trise) to
// (width, trise + ascent/1000) mapped through Tm*CTM for the baseline
// box, extended down to the descent line whenever the text contains a
// descender glyph.
type ChunkOfTextRenderEvent struct {
	Text       string
	FontSize   float64
	FontColor  Color
	Font       pdf.Reference
	GlyphLine  *GlyphLine

	BaselineBoundingBox pdf.Rectangle
	BoundingBox         pdf.Rectangle
}

// descenders is the verbatim character set the original implementation
// checks (case-insensitively) to decide whether a chunk's bounding box
// must be extended down to the descent line.
var descenders = map[rune]bool{'y': true, 'p': true, 'q': true, 'f': true, 'g': true, 'j': true}

func usesDescent(text string) bool {
	for _, r := range text {
		if r >= 'A' && r <= 'Z' {
			r = r - 'A' + 'a'
		}
		if descenders[r] {
			return true
		}
	}
	return false
}

// NewChunkOfTextRenderEvent builds the event for a text-showing operator.
// width is the glyph line's total advance in text space (as
// GlyphLine.WidthInTextSpace computes it),
// ascent/descent are the font's ascent/descent in 1000ths of an em
// (PDF's glyph-space convention), and trm is Tm*CTM, the matrix that
// carries text space into device space.
func NewChunkOfTextRenderEvent(gl *GlyphLine, st *State, width, ascent, descent float64) *ChunkOfTextRenderEvent {
	trm := st.Tm.Mul(st.CTM)

	p0x, p0y := trm.Apply(0, st.Trise)
	p1x, p1y := trm.Apply(width, st.Trise+ascent*0.001)
	baseline := boxFromCorners(p0x, p0y, p1x, p1y)

	bbox := baseline
	if usesDescent(gl.Text) {
		d0x, d0y := trm.Apply(0, st.Trise+descent*0.001)
		d1x, d1y := trm.Apply(width, st.Trise+ascent*0.001)
		bbox = boxFromCorners(d0x, d0y, d1x, d1y)
	}

	return &ChunkOfTextRenderEvent{
		Text:                gl.Text,
		FontSize:            st.FontSize,
		FontColor:           st.FillColor,
		Font:                st.Font,
		GlyphLine:           gl,
		BaselineBoundingBox: baseline,
		BoundingBox:         bbox,
	}
}

func boxFromCorners(x0, y0, x1, y1 float64) pdf.Rectangle {
	llx, urx := x0, x1
	if llx > urx {
		llx, urx = urx, llx
	}
	lly, ury := y0, y1
	if lly > ury {
		lly, ury = ury, lly
	}
	return pdf.Rectangle{LLx: llx, LLy: lly, URx: urx, URy: ury}
}

// EventListener receives ChunkOfTextRenderEvents as Canvas interprets a
// content stream. A listener is attached per page by the reader pipeline
// (C2) before the page's content stream is executed.
type EventListener interface {
	TextShown(*ChunkOfTextRenderEvent)
}

// roundDownTo5 rounds y down to the nearest lower multiple of 5, banding
// baselines so glyphs on the "same line" (within 5 user-space units) sort
// together regardless of small baseline jitter.
func roundDownTo5(y float64) float64 {
	return math.Floor(y/5) * 5
}

// CompareReadingOrder orders two events in left-to-right, top-to-bottom
// (western) reading order: baselines are banded to the nearest lower
// multiple of 5 and compared first (higher bands first, i.e. top of the
// page first), then events within the same band are ordered left to
// right by baseline x.
func CompareReadingOrder(a, b *ChunkOfTextRenderEvent) int {
	y0 := roundDownTo5(a.BaselineBoundingBox.LLy)
	y1 := roundDownTo5(b.BaselineBoundingBox.LLy)
	if y0 == y1 {
		switch {
		case a.BaselineBoundingBox.LLx < b.BaselineBoundingBox.LLx:
			return -1
		case a.BaselineBoundingBox.LLx > b.BaselineBoundingBox.LLx:
			return 1
		default:
			return 0
		}
	}
	if y0 > y1 {
		return -1
	}
	return 1
}
