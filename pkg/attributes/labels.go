package attributes

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatLabel turns an attribute key into a display label:
// "albumTitle" becomes "Album Title", "release_year" becomes "Release Year".
func FormatLabel(key string) string {
	var b strings.Builder
	runes := []rune(key)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-':
			b.WriteRune(' ')
			continue
		case i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]):
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}

	// A Caser is stateful, so one is built per call.
	caser := cases.Title(language.English)
	return caser.String(strings.Join(strings.Fields(b.String()), " "))
}
