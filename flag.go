package countrykit

import (
	"strings"
)

// regionalIndicatorOffset maps 'A' (0x41) to REGIONAL INDICATOR SYMBOL LETTER A (U+1F1E6).
const regionalIndicatorOffset = 127397

// Flag builds a flag glyph from a two-letter code by shifting each upper-cased
// letter into the regional indicator block. The table is not consulted, so
// a glyph is produced even for codes it does not contain.
func Flag(code string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(code) {
		b.WriteRune(regionalIndicatorOffset + r)
	}
	return b.String()
}
