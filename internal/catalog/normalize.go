package catalog

import (
	"regexp"
	"strings"
)

var (
	parenRe       = regexp.MustCompile(`\(.*\)`)
	bracketRe     = regexp.MustCompile(`\[.*\]`)
	editionWordRe = regexp.MustCompile(`remastered|remaster|deluxe|edition|anniversary|special`)
	nonAlnumRe    = regexp.MustCompile(`[^a-z0-9]`)
)

// normalizeTitle reduces an album title to a comparison key: lowercased,
// parenthetical and bracketed segments removed, edition words removed, then
// stripped to alphanumerics. Two editions of the same album normalize to the
// same key.
func normalizeTitle(title string) string {
	t := strings.ToLower(title)
	t = parenRe.ReplaceAllString(t, "")
	t = bracketRe.ReplaceAllString(t, "")
	t = editionWordRe.ReplaceAllString(t, "")
	return nonAlnumRe.ReplaceAllString(t, "")
}

// Keywords whose agreement between two titles signals the same edition.
var editionKeywords = []string{"anniversary", "deluxe", "remaster", "edition", "live"}

// editionMatchScore measures how well a track's parent album title matches the
// originally requested edition. Exact match is 100; otherwise each edition
// keyword present in both or absent from both adds 10.
func editionMatchScore(candidate, target string) int {
	c := strings.ToLower(candidate)
	t := strings.ToLower(target)
	if c == t {
		return 100
	}
	score := 0
	for _, kw := range editionKeywords {
		if strings.Contains(c, kw) == strings.Contains(t, kw) {
			score += 10
		}
	}
	return score
}
