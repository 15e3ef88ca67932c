package display

import "strings"

// IsRepost classifies an item as a repost by case-insensitive substring match
// against the indicator phrases. Title is checked before description and the
// first match wins. This is a heuristic; false positives and negatives are
// expected and acceptable.
func IsRepost(title, description string, indicators []string) bool {
	for _, text := range []string{title, description} {
		if text == "" {
			continue
		}
		lowered := strings.ToLower(text)
		for _, indicator := range indicators {
			if indicator != "" && strings.Contains(lowered, strings.ToLower(indicator)) {
				return true
			}
		}
	}
	return false
}
