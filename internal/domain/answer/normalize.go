package answer

import (
	"regexp"
	"strings"
)

var (
	// URLs, @handles and #hashtags are deleted outright, not padded.
	reNoise    = regexp.MustCompile(`http\S+|@\w+|#[\w-]+`)
	reNonAlnum = regexp.MustCompile(`[^a-z0-9\s]`)
	reSpaces   = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes free-form text for lexical comparison: lowercase,
// noise tokens removed, everything outside [a-z0-9 ] flattened to spaces,
// whitespace runs collapsed. Total over all inputs.
func Normalize(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	t = reNoise.ReplaceAllString(t, "")
	t = reNonAlnum.ReplaceAllString(t, " ")
	return reSpaces.ReplaceAllString(t, " ")
}
