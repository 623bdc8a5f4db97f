// Package font implements Type-1 simple-font character-identifier to
// Unicode resolution (C6): the priority order spec'd for a font
// dictionary with no embedded CMap — ToUnicode stream first, falling
// back through named/implicit encodings to the Adobe Glyph List.
package font

import (
	"seehuhn.de/go/postscript/type1/names"
)

// glyphToRune resolves a PostScript glyph name to Unicode via the Adobe
// Glyph List, the same call the teacher's ExtractType1 makes. dingbats
// selects the ZapfDingbats variant of the AGL, which assigns different
// meanings to names like "a1".
func glyphToRune(glyphName string, dingbats bool) []rune {
	return names.ToUnicode(glyphName, dingbats)
}
