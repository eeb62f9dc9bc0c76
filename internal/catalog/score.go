package catalog

import "strings"

// Markers that split a full artist credit into the main artist and the
// featured/collaborating rest. The earliest occurrence wins.
var creditSeparators = []string{"&", "feat.", "featuring", ","}

// mainArtist extracts the primary credited artist from a full artist credit.
func mainArtist(credit string) string {
	cut := -1
	for _, sep := range creditSeparators {
		if idx := strings.Index(credit, sep); idx >= 0 && (cut < 0 || idx < cut) {
			cut = idx
		}
	}
	if cut < 0 {
		return strings.TrimSpace(credit)
	}
	return strings.TrimSpace(credit[:cut])
}

// relevanceScore ranks an album against a free-text query. Tiers are mutually
// exclusive; only the first matching tier awards points, except the fallback
// word-overlap tier which accumulates. Collaboration credits that do not match
// the query on the main artist are demoted by a flat 500 so a featured track
// sorts below the primary artist's own catalog.
func relevanceScore(a Album, query string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	full := strings.ToLower(strings.TrimSpace(a.ArtistName))
	main := strings.ToLower(strings.TrimSpace(mainArtist(a.ArtistName)))
	title := strings.ToLower(a.Title)

	var score int
	switch {
	case main != "" && main == q:
		score = 1000
	case q != "" && strings.Contains(main, q):
		score = 800
	case main != "" && strings.Contains(q, main):
		score = 600
	case full != "" && full == q:
		score = 500
	case q != "" && strings.Contains(full, q):
		score = 300
	case q != "" && strings.Contains(title, q):
		score = 200
	default:
		for _, w := range queryWords(q) {
			if strings.Contains(main, w) {
				score += 50
			}
			if strings.Contains(title, w) {
				score += 25
			}
		}
	}

	if isCollaborationCredit(a.ArtistName, q) {
		score -= 500
	}
	return score
}

// isCollaborationCredit reports whether the credit names multiple artists
// while the main artist does not match the query in either direction.
func isCollaborationCredit(credit, query string) bool {
	hasSeparator := false
	for _, sep := range creditSeparators {
		if strings.Contains(credit, sep) {
			hasSeparator = true
			break
		}
	}
	if !hasSeparator {
		return false
	}
	main := strings.ToLower(strings.TrimSpace(mainArtist(credit)))
	q := strings.ToLower(strings.TrimSpace(query))
	if main == "" || q == "" {
		return true
	}
	return main != q && !strings.Contains(main, q) && !strings.Contains(q, main)
}
