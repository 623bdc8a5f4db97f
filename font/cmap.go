package font

import (
	"io"
	"unicode/utf16"

	"pdfdoc.dev/pdf/content"
	"pdfdoc.dev/pdf"
)

// toUnicode is a simplified single-byte ToUnicode CMap: the Type1 simple
// fonts this package resolves never use multi-byte codes, so unlike the
// teacher's cmap.ToUnicode this has no CodeSpaceRange, only a direct
// code->rune table built from the CMap's bfchar/bfrange sections.
type toUnicode struct {
	text [256]string
	has  [256]bool
}

// lookup returns the Unicode text code maps to, and whether the CMap
// defines an entry for it at all (ExtractType1 gives a code with no entry
// empty text; it does not fall back to the encoding/AGL derived text).
func (tu *toUnicode) lookup(code byte) (string, bool) {
	if !tu.has[code] {
		return "", false
	}
	return tu.text[code], true
}

// parseToUnicode reads a ToUnicode CMap stream's bfchar/bfrange sections.
// A ToUnicode CMap is written in PostScript syntax, but the bfchar/bfrange
// bodies this function cares about are just sequences of hex strings
// bracketed by begin.../end... keywords, which the content-stream
// tokenizer (content.Scanner) already lexes correctly: hex strings become
// pdf.String, and the begin/end keywords and any other PostScript
// operators it doesn't recognise all come back as content.Operator tokens
// to be matched by name. This sidesteps writing a second, full PostScript
// parser just for CMap streams.
func parseToUnicode(r io.Reader) (*toUnicode, error) {
	sc := content.NewScanner(r)
	tu := &toUnicode{}

	for {
		tok, err := sc.Next()
		if err == io.EOF {
			return tu, nil
		}
		if err != nil {
			return nil, err
		}

		op, isOp := tok.(content.Operator)
		if !isOp {
			continue
		}

		switch string(op) {
		case "beginbfchar":
			if err := parseBfChar(sc, tu); err != nil {
				return nil, err
			}
		case "beginbfrange":
			if err := parseBfRange(sc, tu); err != nil {
				return nil, err
			}
		}
	}
}

func parseBfChar(sc *content.Scanner, tu *toUnicode) error {
	for {
		tok, err := sc.Next()
		if err != nil {
			return err
		}
		if op, ok := tok.(content.Operator); ok && string(op) == "endbfchar" {
			return nil
		}
		src, ok := tok.(pdf.String)
		if !ok || len(src) != 1 {
			continue
		}
		dstTok, err := sc.Next()
		if err != nil {
			return err
		}
		dst, ok := dstTok.(pdf.String)
		if !ok {
			continue
		}
		tu.text[src[0]] = decodeUTF16BE(dst)
		tu.has[src[0]] = true
	}
}

func parseBfRange(sc *content.Scanner, tu *toUnicode) error {
	for {
		tok, err := sc.Next()
		if err != nil {
			return err
		}
		if op, ok := tok.(content.Operator); ok && string(op) == "endbfrange" {
			return nil
		}
		lo, ok := tok.(pdf.String)
		if !ok || len(lo) != 1 {
			continue
		}
		hiTok, err := sc.Next()
		if err != nil {
			return err
		}
		hi, ok := hiTok.(pdf.String)
		if !ok || len(hi) != 1 {
			continue
		}
		dstTok, err := sc.Next()
		if err != nil {
			return err
		}

		switch dst := dstTok.(type) {
		case pdf.String:
			base := decodeUTF16BE(dst)
			runes := []rune(base)
			for code := int(lo[0]); code <= int(hi[0]); code++ {
				rr := append([]rune(nil), runes...)
				if len(rr) > 0 {
					rr[len(rr)-1] += rune(code - int(lo[0]))
				}
				tu.text[code] = string(rr)
				tu.has[code] = true
			}
		case pdf.Array:
			for i, elem := range dst {
				code := int(lo[0]) + i
				if code > int(hi[0]) || code > 255 {
					break
				}
				if s, ok := elem.(pdf.String); ok {
					tu.text[code] = decodeUTF16BE(s)
					tu.has[code] = true
				}
			}
		}
	}
}

func decodeUTF16BE(s pdf.String) string {
	buf := make([]uint16, 0, len(s)/2)
	for i := 0; i+1 < len(s); i += 2 {
		buf = append(buf, uint16(s[i])<<8|uint16(s[i+1]))
	}
	return string(utf16.Decode(buf))
}
