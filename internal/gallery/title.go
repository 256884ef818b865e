package gallery

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TitleFromFilename derives the display title for a photo from its filename:
// strip the extension, turn underscores into spaces, capitalize each word.
// "sunset_beach.jpg" becomes "Sunset Beach". Pure function of the name.
func TitleFromFilename(name string) string {
	base := name
	if i := strings.LastIndex(name, "."); i >= 0 {
		base = name[:i]
	}
	words := strings.Fields(strings.ReplaceAll(base, "_", " "))
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}
