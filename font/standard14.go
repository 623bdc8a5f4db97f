package font

import "strings"

// standard14Names is the fixed set of Standard 14 font names a PDF viewer
// is required to support without any embedded font program.
var standard14Names = map[string]string{
	"courier":                "Courier",
	"courierbold":            "Courier-Bold",
	"courierboldoblique":     "Courier-BoldOblique",
	"courieroblique":         "Courier-Oblique",
	"helvetica":              "Helvetica",
	"helveticabold":          "Helvetica-Bold",
	"helveticaboldoblique":   "Helvetica-BoldOblique",
	"helveticaoblique":       "Helvetica-Oblique",
	"symbol":                 "Symbol",
	"timesbold":              "Times-Bold",
	"timesbolditalic":        "Times-BoldItalic",
	"timesitalic":            "Times-Italic",
	"timesroman":             "Times-Roman",
	"zapfdingbats":           "ZapfDingbats",
}

// CanonicalStandard14Name resolves name to its canonical Standard 14 font
// name, by lowercasing and stripping every non-letter character before
// comparing against the fixed list — so "helveticabold", "Helvetica-Bold"
// and "HELVETICA BOLD" all resolve to "Helvetica-Bold", matching the
// tolerant name matching PDF producers commonly rely on. The second
// return value is false for any name outside the Standard 14 set (e.g.
// "Arial").
func CanonicalStandard14Name(name string) (string, bool) {
	var b strings.Builder
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			r = r - 'A' + 'a'
		}
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	canonical, ok := standard14Names[b.String()]
	return canonical, ok
}
