package font

import (
	"pdfdoc.dev/pdf"
)

// Type1 is a resolved Type 1 simple font: everything the content-stream
// interpreter (C4/C5) needs to turn a single-byte character code into an
// advance width and Unicode text, without keeping the font dictionary or
// any embedded glyph outline data around. Type1 implements
// graphics.FontMetrics.
type Type1 struct {
	PostScriptName string

	width   [256]float64
	text    [256]string
	ascent  float64
	descent float64

	// byText is the reverse lookup (Unicode text -> code), built by
	// ExtractType1 in one scan of text once text is final, so looking up
	// a code for a known glyph never needs a scan of the table; where
	// several codes share one text, the lowest code wins.
	byText map[string]byte
}

// ExtractType1 reads a Type 1 font dictionary (the PDF object a page's
// /Resources /Font entry or a form field's /DA reference points at),
// resolving its widths and per-code Unicode text following the priority
// order: a ToUnicode CMap stream, if present, is the exclusive source of
// text for every code — codes it doesn't cover resolve to no text, even
// where /Encoding would otherwise supply a guess; only in the CMap's
// absence does /Encoding drive per-code text. The widths come from
// /Widths and /FirstChar, falling back to /FontDescriptor's MissingWidth
// for any code outside that range.
func ExtractType1(r pdf.Getter, obj pdf.Object) (*Type1, error) {
	fontDict, err := pdf.GetDict(r, obj)
	if err != nil {
		return nil, err
	}
	if fontDict == nil {
		return nil, &pdf.MalformedFileError{Err: errMissingFontDict}
	}

	d := &Type1{}

	baseFont, err := pdf.GetName(r, fontDict["BaseFont"])
	if err != nil {
		return nil, err
	}
	d.PostScriptName = string(baseFont)
	if canonical, ok := CanonicalStandard14Name(d.PostScriptName); ok {
		// A Standard 14 font may be named with arbitrary punctuation or
		// casing ("Arial-ish" producers write "Helvetica,Bold" as often
		// as "Helvetica-Bold"); canonicalize it the way §4.6 specifies.
		d.PostScriptName = canonical
	}
	dingbats := d.PostScriptName == "ZapfDingbats"

	fdDict, err := pdf.GetDict(r, fontDict["FontDescriptor"])
	if err != nil {
		return nil, err
	}
	var missingWidth float64
	if fdDict != nil {
		if w, err := pdf.GetNumber(r, fdDict["MissingWidth"]); err == nil {
			missingWidth = w
		}
		if a, err := pdf.GetNumber(r, fdDict["Ascent"]); err == nil {
			d.ascent = a
		}
		if dsc, err := pdf.GetNumber(r, fdDict["Descent"]); err == nil {
			d.descent = dsc
		}
	}
	if d.ascent == 0 && d.descent == 0 {
		// No font descriptor (common for the standard 14 fonts, which may
		// be referenced without one): fall back to typical Latin-text
		// metrics rather than leaving every glyph's box degenerate.
		d.ascent = 718
		d.descent = -207
	}

	text, err := resolveText(r, fontDict, dingbats)
	if err != nil {
		return nil, err
	}
	d.text = text

	firstChar, err := pdf.GetInteger(r, fontDict["FirstChar"])
	if err != nil {
		return nil, err
	}
	widths, err := pdf.GetArray(r, fontDict["Widths"])
	if err != nil {
		return nil, err
	}
	for c := range d.width {
		d.width[c] = missingWidth
	}
	for i, w := range widths {
		code := int(firstChar) + i
		if code < 0 || code > 255 {
			continue
		}
		v, err := pdf.GetNumber(r, w)
		if err != nil {
			continue
		}
		d.width[code] = v
	}

	tuObj, err := pdf.Resolve(r, fontDict["ToUnicode"])
	if err != nil {
		return nil, err
	}
	if stm, ok := tuObj.(*pdf.Stream); ok && stm != nil && stm.R != nil {
		tu, err := parseToUnicode(stm.R)
		if err != nil {
			return nil, err
		}
		// A ToUnicode CMap, once present, is the exclusive source of text
		// for this font: codes it doesn't cover resolve to no text at all,
		// they do not fall back to the Encoding-derived guess.
		for code := 0; code < 256; code++ {
			if s, found := tu.lookup(byte(code)); found {
				d.text[code] = s
			} else {
				d.text[code] = ""
			}
		}
	}

	d.byText = make(map[string]byte, 256)
	for code, s := range d.text {
		if s == "" {
			continue
		}
		if _, seen := d.byText[s]; !seen {
			d.byText[s] = byte(code)
		}
	}

	return d, nil
}

var errMissingFontDict = encodingError("missing font dictionary")

// Advance implements graphics.FontMetrics.
func (d *Type1) Advance(code byte) float64 { return d.width[code] }

// Text implements graphics.FontMetrics; it returns the Unicode text for
// code as resolved by ExtractType1 (ToUnicode CMap exclusive of Encoding
// when present).
func (d *Type1) Text(code byte) string { return d.text[code] }

// Ascent implements graphics.FontMetrics.
func (d *Type1) Ascent() float64 { return d.ascent }

// Descent implements graphics.FontMetrics.
func (d *Type1) Descent() float64 { return d.descent }

// CodeFor is the reverse lookup built alongside text: the single-byte
// code that produces the given Unicode text, if any. Used when composing
// a content stream from text rather than extracting text from one.
func (d *Type1) CodeFor(text string) (byte, bool) {
	code, ok := d.byText[text]
	return code, ok
}
