package answer

import "strings"

// ResolveMember scans a normalized question for one of the known member
// names and returns the first hit in candidate order, original form intact.
// A name matches when its lowercase form, or the lowercase form of its first
// token, appears as a substring of the question. First match wins; with
// overlapping names the candidate order (corpus fetch order) decides, which
// is a documented limitation of the lookup rather than a ranking.
func ResolveMember(normalizedQuestion string, names []string) (string, bool) {
	for _, name := range names {
		lowered := strings.ToLower(name)
		tokens := strings.Fields(lowered)
		if len(tokens) == 0 {
			continue
		}
		if strings.Contains(normalizedQuestion, lowered) || strings.Contains(normalizedQuestion, tokens[0]) {
			return name, true
		}
	}
	return "", false
}
