package font

import (
	"golang.org/x/text/encoding/charmap"

	"pdfdoc.dev/pdf"
)

// resolveText returns the 256-entry code->Unicode table a Type1 font
// dictionary's /Encoding entry describes (before any ToUnicode stream is
// consulted — ExtractType1 applies that override afterwards), following
// the strict priority order from the original implementation's
// font_type_1.py: a Differences array entry always wins for its code; a
// named base encoding (WinAnsiEncoding, MacRomanEncoding,
// MacExpertEncoding, StandardEncoding) fills the rest; no /Encoding entry
// at all falls back to the implicit StandardEncoding, or, for a
// ZapfDingbats font, to the font's built-in ZapfDingbats encoding.
//
// WinAnsiEncoding and MacRomanEncoding/MacExpertEncoding are decoded
// directly, byte to rune, via golang.org/x/text/encoding/charmap's
// Windows1252 and Macintosh code pages — no glyph-name indirection is
// needed for these, since the code page already gives Unicode. Only
// StandardEncoding (for which no stdlib code page exists) and
// Differences-array overrides go through a glyph name and the Adobe
// Glyph List (names.ToUnicode). MacExpertEncoding has no retrievable
// byte table anywhere in the consulted corpus, so Mac Roman is used as a
// documented stand-in rather than left unresolved.
func resolveText(r pdf.Getter, fontDict pdf.Dict, dingbats bool) ([256]string, error) {
	var table [256]string

	encObj, err := pdf.Resolve(r, fontDict["Encoding"])
	if err != nil {
		return table, err
	}

	switch enc := encObj.(type) {
	case nil:
		if dingbats {
			table = glyphNamesToText(zapfDingbatsEncoding, dingbats)
		} else {
			table = glyphNamesToText(standardEncoding, dingbats)
		}
	case pdf.Name:
		base, err := namedEncodingText(enc, dingbats)
		if err != nil {
			return table, err
		}
		table = base
	case pdf.Dict:
		baseName, _ := enc["BaseEncoding"].(pdf.Name)
		if baseName != "" {
			base, err := namedEncodingText(baseName, dingbats)
			if err != nil {
				return table, err
			}
			table = base
		} else {
			table = glyphNamesToText(standardEncoding, dingbats)
		}

		diffs, err := pdf.GetArray(r, enc["Differences"])
		if err != nil {
			return table, err
		}
		code := -1
		for _, x := range diffs {
			switch v := x.(type) {
			case pdf.Integer:
				code = int(v)
			case pdf.Name:
				if code < 0 || code >= 256 {
					return table, &pdf.MalformedFileError{Err: errInvalidDifferences}
				}
				if string(v) != ".notdef" {
					rr := glyphToRune(string(v), dingbats)
					table[code] = string(rr)
				}
				code++
			}
		}
	default:
		return table, &pdf.MalformedFileError{Err: errInvalidDifferences}
	}

	return table, nil
}

var errInvalidDifferences = encodingError("invalid /Differences array")

type encodingError string

func (e encodingError) Error() string { return string(e) }

// namedEncodingText returns the 256-entry code->Unicode table for one of
// the four named base encodings.
func namedEncodingText(name pdf.Name, dingbats bool) ([256]string, error) {
	switch name {
	case "StandardEncoding":
		return glyphNamesToText(standardEncoding, dingbats), nil
	case "WinAnsiEncoding":
		return charmapText(charmap.Windows1252), nil
	case "MacRomanEncoding":
		return charmapText(charmap.Macintosh), nil
	case "MacExpertEncoding":
		// No MacExpertEncoding byte table is available; Mac Roman is the
		// documented stand-in (see resolveText's doc comment).
		return charmapText(charmap.Macintosh), nil
	default:
		return [256]string{}, &pdf.MalformedFileError{Err: encodingError("unknown base encoding " + string(name))}
	}
}

// charmapText decodes every byte 0-255 through cm directly to Unicode.
func charmapText(cm *charmap.Charmap) [256]string {
	var table [256]string
	for code := 0; code < 256; code++ {
		r := cm.DecodeByte(byte(code))
		if r == 0xFFFD {
			continue
		}
		table[code] = string(r)
	}
	return table
}

// glyphNamesToText resolves each entry of a 256-entry glyph-name table
// (StandardEncoding or ZapfDingbatsEncoding) through the Adobe Glyph
// List.
func glyphNamesToText(names [256]string, dingbats bool) [256]string {
	var table [256]string
	for code, name := range names {
		if name == "" || name == ".notdef" {
			continue
		}
		rr := glyphToRune(name, dingbats)
		table[code] = string(rr)
	}
	return table
}
