package catalog

import "testing"

func TestMainArtist(t *testing.T) {
	tests := []struct {
		credit string
		want   string
	}{
		{"Prince", "Prince"},
		{"Prince & The Revolution", "Prince"},
		{"Kendrick Lamar feat. SZA", "Kendrick Lamar"},
		{"Beyoncé featuring Jay-Z", "Beyoncé"},
		{"Simon, Garfunkel", "Simon"},
		{"  Nas  ", "Nas"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := mainArtist(tc.credit); got != tc.want {
			t.Errorf("mainArtist(%q) = %q, want %q", tc.credit, got, tc.want)
		}
	}
}

func TestRelevanceScoreTiers(t *testing.T) {
	query := "radiohead"

	exact := Album{ArtistName: "Radiohead", Title: "OK Computer"}
	substring := Album{ArtistName: "Radiohead Tribute Band", Title: "Covers"}
	titleOnly := Album{ArtistName: "Someone Else", Title: "radiohead sessions"}

	exactScore := relevanceScore(exact, query)
	substringScore := relevanceScore(substring, query)
	titleScore := relevanceScore(titleOnly, query)

	if exactScore != 1000 {
		t.Fatalf("exact main-artist match: expected 1000, got %d", exactScore)
	}
	if !(exactScore > substringScore && substringScore > titleScore) {
		t.Fatalf("expected exact > substring > title-only, got %d / %d / %d",
			exactScore, substringScore, titleScore)
	}
}

func TestRelevanceScoreCollaborationPenalty(t *testing.T) {
	query := "prince"

	solo := Album{ArtistName: "Madonna", Title: "prince of the night"}
	collab := Album{ArtistName: "Madonna & Justin Timberlake", Title: "prince of the night"}

	soloScore := relevanceScore(solo, query)
	collabScore := relevanceScore(collab, query)

	if soloScore-collabScore != 500 {
		t.Fatalf("collaboration penalty should be exactly 500, got %d vs %d",
			soloScore, collabScore)
	}
}

func TestRelevanceScoreNoPenaltyWhenMainArtistMatches(t *testing.T) {
	query := "prince"
	album := Album{ArtistName: "Prince & The Revolution", Title: "Purple Rain"}

	if got := relevanceScore(album, query); got != 1000 {
		t.Fatalf("main artist matches query, expected full 1000, got %d", got)
	}
}

func TestRelevanceScoreWordFallback(t *testing.T) {
	query := "twisted dark fantasy"
	album := Album{ArtistName: "Kanye West", Title: "My Beautiful Dark Twisted Fantasy"}

	// No tier matches; each of the three significant words hits the title at
	// 25 points apiece.
	if got := relevanceScore(album, query); got != 75 {
		t.Fatalf("expected 75 from word fallback, got %d", got)
	}
}
