package textutil

import "strings"

// slugFallback replaces slugs that collapse to nothing.
const slugFallback = "item"

// Slug converts display text to a lowercase token containing only
// [a-z0-9-]. Runs of separator characters (space, hyphen, underscore, dot)
// collapse to a single hyphen, every other rune outside the safe set is
// dropped, and leading/trailing hyphens are trimmed. Empty results become
// "item". Slugging an already-slugged string returns it unchanged.
func Slug(value string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(value) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '-' || r == '_' || r == '.':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		default:
			// drop other runes
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return slugFallback
	}
	return out
}
