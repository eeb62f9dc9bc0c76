package catalog

import (
	"strings"
	"unicode"
)

// Title fragments that mark unofficial or derivative releases. Compared
// against the uppercased album title.
var blockedTitleFragments = []string{
	"LEAK",
	"FANMADE",
	"TRIBUTE",
	"COVER",
	"PARODY",
	"BOOTLEG",
	"UNOFFICIAL",
	"FAN MADE",
	"FAN-MADE",
	"- SINGLE",
	" - SINGLE",
	"INSTRUMENTAL",
	"REMASTERED",
}

// validAlbum rejects unofficial, derivative and comedy entries. Total
// function: any album value yields a verdict.
func validAlbum(a Album) bool {
	title := strings.ToUpper(a.Title)
	for _, fragment := range blockedTitleFragments {
		if strings.Contains(title, fragment) {
			return false
		}
	}
	return !strings.EqualFold(a.Genre, "Comedy")
}

// passesTrackRules drops near-empty releases and true singles. A "single" with
// five or more tracks is treated as an EP mislabeled by the store and kept.
func passesTrackRules(a Album) bool {
	if a.TrackCount < 2 {
		return false
	}
	if strings.EqualFold(a.CollectionType, "single") && a.TrackCount < 5 {
		return false
	}
	return true
}

// hasHangul reports whether the string contains Korean script.
func hasHangul(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Hangul, r) {
			return true
		}
	}
	return false
}

// queryWords tokenizes a search term into significant words (length > 1).
func queryWords(term string) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(term)) {
		if len(w) > 1 {
			words = append(words, w)
		}
	}
	return words
}

// artistMatchesTerm accepts exact or substring name matches, or at least half
// of the term's significant words appearing in the name.
func artistMatchesTerm(name, term string) bool {
	termLower := strings.ToLower(strings.TrimSpace(term))
	nameLower := strings.ToLower(name)
	if nameLower == termLower || strings.Contains(nameLower, termLower) {
		return true
	}
	words := queryWords(termLower)
	if len(words) == 0 {
		return true
	}
	matched := 0
	for _, w := range words {
		if strings.Contains(nameLower, w) {
			matched++
		}
	}
	return matched >= (len(words)+1)/2
}

// albumMatchesTerm is the looser relevance check used by free-text album
// search: main-artist, full credit or title containing the term, or half of
// the term's words found across main-artist and title.
func albumMatchesTerm(a Album, term string) bool {
	termLower := strings.ToLower(strings.TrimSpace(term))
	main := strings.ToLower(mainArtist(a.ArtistName))
	full := strings.ToLower(a.ArtistName)
	title := strings.ToLower(a.Title)

	if strings.Contains(main, termLower) || strings.Contains(title, termLower) {
		return true
	}
	if strings.Contains(full, termLower) {
		return true
	}
	words := queryWords(termLower)
	if len(words) == 0 {
		return false
	}
	matched := 0
	for _, w := range words {
		if strings.Contains(main, w) || strings.Contains(title, w) {
			matched++
		}
	}
	return matched >= (len(words)+1)/2
}
