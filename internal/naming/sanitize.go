package naming

import (
	"regexp"
	"strings"
)

// FallbackBase is used when sanitization leaves nothing usable.
const FallbackBase = "image"

// nonAlnum matches runs of characters outside [a-z0-9] after lowercasing.
var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Sanitize converts a model caption into a filesystem-safe filename base:
// lowercase, non-alphanumeric runs collapsed to single underscores, leading
// and trailing underscores trimmed. An empty result falls back to
// [FallbackBase].
func Sanitize(caption string) string {
	s := strings.ToLower(strings.TrimSpace(caption))
	s = nonAlnum.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return FallbackBase
	}
	return s
}
