package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultAlbumLimit = 50
	searchFetchLimit  = 100
	trackTopUpLimit   = 30
	sparseThreshold   = 10
)

// ArtistAlbums lists an artist's qualifying albums, newest first. Regional and
// global catalogs are merged regional-first, singles and unofficial releases
// are filtered out, editions with identical display title and artist collapse
// to one, and titles without Korean script get a best-effort localized
// replacement.
func (c *Client) ArtistAlbums(ctx context.Context, artistID int64, limit int) ([]Album, error) {
	if artistID <= 0 {
		return nil, fmt.Errorf("artist albums: %w", ErrInvalidID)
	}
	if limit <= 0 {
		limit = defaultAlbumLimit
	}

	raw, err := c.hybrid(ctx, func(r result) int64 { return r.CollectionID },
		func(ctx context.Context, regional bool) ([]result, error) {
			return c.lookup(ctx, artistID, "album", limit, regional)
		})
	if err != nil {
		return nil, fmt.Errorf("artist %d albums: %w", artistID, ErrUpstream)
	}

	var albums []Album
	for _, r := range raw {
		if r.isCollection() {
			albums = append(albums, r.album())
		}
	}
	if len(albums) == 0 {
		return nil, fmt.Errorf("artist %d albums: %w", artistID, ErrNotFound)
	}

	filtered := albums[:0:0]
	for _, a := range albums {
		if passesTrackRules(a) && validAlbum(a) {
			filtered = append(filtered, a)
		}
	}

	deduped := dedupeAlbums(filtered)
	c.localizeTitles(ctx, deduped)
	sortAlbumsByReleaseDate(deduped)
	return deduped, nil
}

// SearchAlbums searches albums by free text. The regional album-entity search
// is tried first, then the global store; sparse result sets are topped up via
// the track-entity index, and Hangul terms fall back to per-artist catalog
// enumeration as a last resort.
func (c *Client) SearchAlbums(ctx context.Context, term string, limit int) ([]Album, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []Album{}, nil
	}
	if limit <= 0 {
		limit = defaultArtistLimit
	}

	raw, err := c.search(ctx, term, "album", searchFetchLimit, true)
	if err != nil || len(raw) == 0 {
		globalRaw, globalErr := c.search(ctx, term, "album", searchFetchLimit, false)
		if globalErr != nil {
			if err != nil {
				return nil, fmt.Errorf("search albums %q: %w", term, ErrUpstream)
			}
		} else {
			raw = globalRaw
		}
	}

	albums := collectValidAlbums(raw, term)

	// The album-entity index misses releases whose tracks are indexed under a
	// different spelling; the track-entity index recovers those.
	if len(albums) < sparseThreshold {
		albums = append(albums, c.searchAlbumsViaTracks(ctx, term, albums)...)
	}

	albums = dedupeAlbumsByID(albums)

	if len(albums) == 0 && hasHangul(term) {
		albums = c.searchAlbumsViaArtists(ctx, term)
	}

	c.localizeTitles(ctx, albums)
	sortAlbumsBySearchRelevance(albums, term)

	if len(albums) > limit {
		albums = albums[:limit]
	}
	return albums, nil
}

// collectValidAlbums parses album entries and keeps the relevant, qualifying
// ones.
func collectValidAlbums(raw []result, term string) []Album {
	var albums []Album
	for _, r := range raw {
		if !r.isCollection() {
			continue
		}
		a := r.album()
		if passesTrackRules(a) && validAlbum(a) && albumMatchesTerm(a, term) {
			albums = append(albums, a)
		}
	}
	return albums
}

// searchAlbumsViaTracks queries the track index and promotes parent albums not
// already present. Capped so a broad track search cannot flood the result.
func (c *Client) searchAlbumsViaTracks(ctx context.Context, term string, existing []Album) []Album {
	raw, err := c.search(ctx, term, "musicTrack", searchFetchLimit, true)
	if err != nil {
		log.Debug().Err(err).Str("term", term).Msg("track-entity top-up failed")
		return nil
	}

	seen := make(map[int64]struct{}, len(existing))
	for _, a := range existing {
		seen[a.CollectionID] = struct{}{}
	}

	var extra []Album
	for _, r := range raw {
		if !r.isTrack() || r.CollectionID == 0 {
			continue
		}
		if _, ok := seen[r.CollectionID]; ok {
			continue
		}
		a := r.album()
		a.Title = r.CollectionName
		if !passesTrackRules(a) && a.TrackCount != 0 {
			continue
		}
		if !validAlbum(a) || !albumMatchesTerm(a, term) {
			continue
		}
		seen[r.CollectionID] = struct{}{}
		extra = append(extra, a)
		if len(extra) >= trackTopUpLimit {
			break
		}
	}
	return extra
}

// searchAlbumsViaArtists recovers albums through artist identity when free
// text finds nothing: artists whose name overlaps the term have their
// catalogs enumerated and flattened.
func (c *Client) searchAlbumsViaArtists(ctx context.Context, term string) []Album {
	raw, err := c.search(ctx, term, "musicArtist", defaultArtistLimit, true)
	if err != nil {
		log.Debug().Err(err).Str("term", term).Msg("artist fallback search failed")
		return nil
	}

	termLower := strings.ToLower(term)
	var matched []Artist
	for _, r := range raw {
		if !r.isArtist() || r.ArtistID == 0 || r.ArtistName == "" {
			continue
		}
		name := strings.ToLower(r.ArtistName)
		if strings.Contains(name, termLower) || strings.Contains(termLower, name) {
			matched = append(matched, r.artist())
		}
	}

	var albums []Album
	for _, artist := range matched {
		list, err := c.ArtistAlbums(ctx, artist.ArtistID, 20)
		if err != nil {
			continue
		}
		albums = append(albums, list...)
	}
	return dedupeAlbumsByID(albums)
}

func dedupeAlbumsByID(albums []Album) []Album {
	seen := make(map[int64]struct{}, len(albums))
	out := albums[:0:0]
	for _, a := range albums {
		if _, ok := seen[a.CollectionID]; ok {
			continue
		}
		seen[a.CollectionID] = struct{}{}
		out = append(out, a)
	}
	return out
}

// dedupeAlbums collapses duplicates by catalog id and by normalized
// title+artist pair, so two editions with the same display title and artist
// but different ids keep only the first.
func dedupeAlbums(albums []Album) []Album {
	seenID := make(map[int64]struct{}, len(albums))
	seenPair := make(map[string]struct{}, len(albums))
	out := albums[:0:0]
	for _, a := range albums {
		if _, ok := seenID[a.CollectionID]; ok {
			continue
		}
		pair := strings.ToLower(strings.TrimSpace(a.Title)) + "\x00" + strings.ToLower(strings.TrimSpace(a.ArtistName))
		if _, ok := seenPair[pair]; ok {
			continue
		}
		seenID[a.CollectionID] = struct{}{}
		seenPair[pair] = struct{}{}
		out = append(out, a)
	}
	return out
}

// localizeTitles replaces titles lacking Korean script with the home store's
// localized variant when one exists. Per-album lookups run concurrently and
// every failure leaves the original title untouched.
func (c *Client) localizeTitles(ctx context.Context, albums []Album) {
	var wg sync.WaitGroup
	for i := range albums {
		if hasHangul(albums[i].Title) {
			continue
		}
		wg.Add(1)
		go func(a *Album) {
			defer wg.Done()
			if title := c.localizedTitle(ctx, a.CollectionID); title != "" {
				a.Title = title
			}
		}(&albums[i])
	}
	wg.Wait()
}

// localizedTitle fetches the home-store title for a collection id. Returns ""
// unless the localized title actually contains Korean script.
func (c *Client) localizedTitle(ctx context.Context, collectionID int64) string {
	results, err := c.lookup(ctx, collectionID, "", 0, true)
	if err != nil {
		return ""
	}
	for _, r := range results {
		if r.isCollection() && hasHangul(r.CollectionName) {
			return r.CollectionName
		}
	}
	return ""
}

// sortAlbumsByReleaseDate orders newest first. Missing or unparsable dates
// sort as the epoch.
func sortAlbumsByReleaseDate(albums []Album) {
	sort.SliceStable(albums, func(i, j int) bool {
		return releaseTime(albums[i]).After(releaseTime(albums[j]))
	})
}

func releaseTime(a Album) time.Time {
	if a.ReleaseDate == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, a.ReleaseDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// sortAlbumsBySearchRelevance puts albums whose title or artist textually
// overlaps the term ahead of the rest, then orders each tier by relevance
// score descending.
func sortAlbumsBySearchRelevance(albums []Album, term string) {
	termLower := strings.ToLower(strings.TrimSpace(term))
	overlaps := func(a Album) bool {
		title := strings.ToLower(a.Title)
		artist := strings.ToLower(a.ArtistName)
		return strings.Contains(title, termLower) || strings.Contains(termLower, title) ||
			strings.Contains(artist, termLower) || strings.Contains(termLower, artist)
	}

	sort.SliceStable(albums, func(i, j int) bool {
		a, b := albums[i], albums[j]
		aOverlap, bOverlap := overlaps(a), overlaps(b)
		if aOverlap != bOverlap {
			return aOverlap
		}
		return relevanceScore(a, term) > relevanceScore(b, term)
	})
}
