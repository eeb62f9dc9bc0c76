package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

const defaultArtistLimit = 20

// SearchArtists looks up artists matching a free-text term. Regional and
// global results are merged regional-first, filtered for relevance, ranked,
// and every surviving candidate is verified to own at least one qualifying
// album before it is returned. An empty or whitespace term yields an empty
// list, not an error.
func (c *Client) SearchArtists(ctx context.Context, term string, limit int) ([]Artist, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []Artist{}, nil
	}
	if limit <= 0 {
		limit = defaultArtistLimit
	}

	raw, err := c.hybrid(ctx, func(r result) int64 { return r.ArtistID },
		func(ctx context.Context, regional bool) ([]result, error) {
			return c.search(ctx, term, "musicArtist", 2*limit, regional)
		})
	if err != nil {
		return nil, fmt.Errorf("search artists %q: %w", term, ErrUpstream)
	}

	var candidates []Artist
	for _, r := range raw {
		if r.isArtist() {
			candidates = append(candidates, r.artist())
		}
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("search artists %q: %w", term, ErrNoResults)
	}

	relevant := c.filterRelevantArtists(ctx, candidates, term)
	unique := dedupeArtistsByID(relevant)
	sortArtistsByRelevance(unique, term)

	ranked := unique
	first := ranked
	if len(first) > limit {
		first = first[:limit]
	}

	verified := c.verifyArtists(ctx, first)
	if len(verified) < limit && len(ranked) > limit {
		next := ranked[limit:]
		if len(next) > limit {
			next = next[:limit]
		}
		backfill := c.verifyArtists(ctx, next)
		needed := limit - len(verified)
		if len(backfill) > needed {
			backfill = backfill[:needed]
		}
		verified = append(verified, backfill...)
	}

	return verified, nil
}

// filterRelevantArtists applies the relevance gate. Hangul terms trust the
// store's own locale-aware ranking and only require an id and a name; if that
// still leaves nothing, one regional retry with an explicit substring match
// recovers short-query relevance misses before giving up.
func (c *Client) filterRelevantArtists(ctx context.Context, candidates []Artist, term string) []Artist {
	var relevant []Artist
	if !hasHangul(term) {
		for _, a := range candidates {
			if a.ArtistID != 0 && a.Name != "" && artistMatchesTerm(a.Name, term) {
				relevant = append(relevant, a)
			}
		}
		return relevant
	}

	for _, a := range candidates {
		if a.ArtistID != 0 && a.Name != "" {
			relevant = append(relevant, a)
		}
	}
	if len(relevant) > 0 {
		return relevant
	}

	retry, err := c.search(ctx, term, "musicArtist", 2*defaultArtistLimit, true)
	if err != nil {
		log.Debug().Err(err).Str("term", term).Msg("regional artist retry failed")
		return relevant
	}
	termLower := strings.ToLower(term)
	var matched []Artist
	for _, r := range retry {
		if !r.isArtist() || r.ArtistID == 0 || r.ArtistName == "" {
			continue
		}
		name := strings.ToLower(r.ArtistName)
		if strings.Contains(name, termLower) || strings.Contains(termLower, name) {
			matched = append(matched, r.artist())
		}
	}
	if len(matched) > 0 {
		return matched
	}
	return relevant
}

func dedupeArtistsByID(artists []Artist) []Artist {
	seen := make(map[int64]struct{}, len(artists))
	out := artists[:0:0]
	for _, a := range artists {
		if a.ArtistID == 0 {
			continue
		}
		if _, ok := seen[a.ArtistID]; ok {
			continue
		}
		seen[a.ArtistID] = struct{}{}
		out = append(out, a)
	}
	return out
}

// sortArtistsByRelevance orders candidates in place: names overlapping the
// term before those that don't, exact matches first among them, and for Hangul
// terms Hangul names before romanized ones. Ties keep their prior order.
func sortArtistsByRelevance(artists []Artist, term string) {
	termLower := strings.ToLower(strings.TrimSpace(term))
	termHangul := hasHangul(term)

	overlaps := func(name string) bool {
		n := strings.ToLower(name)
		return strings.Contains(n, termLower) || strings.Contains(termLower, n)
	}

	sort.SliceStable(artists, func(i, j int) bool {
		a, b := artists[i], artists[j]
		aOverlap, bOverlap := overlaps(a.Name), overlaps(b.Name)
		if aOverlap != bOverlap {
			return aOverlap
		}
		if aOverlap && bOverlap {
			aExact := strings.ToLower(a.Name) == termLower
			bExact := strings.ToLower(b.Name) == termLower
			if aExact != bExact {
				return aExact
			}
		}
		if termHangul {
			aHangul, bHangul := hasHangul(a.Name), hasHangul(b.Name)
			if aHangul != bHangul {
				return aHangul
			}
		}
		return false
	})
}

// verifyArtists keeps only candidates whose album catalog is non-empty. Each
// verification is an independent catalog fetch, so they run concurrently; a
// failed fetch counts as an empty catalog and drops the candidate instead of
// propagating. Missing artist images are backfilled from the artist's own
// first album artwork, best-effort.
func (c *Client) verifyArtists(ctx context.Context, candidates []Artist) []Artist {
	kept := make([]*Artist, len(candidates))
	var wg sync.WaitGroup
	for i, candidate := range candidates {
		wg.Add(1)
		go func(i int, a Artist) {
			defer wg.Done()
			albums, err := c.ArtistAlbums(ctx, a.ArtistID, 50)
			if err != nil || len(albums) == 0 {
				return
			}
			if a.ArtworkURL == "" {
				a.ArtworkURL = c.artistProfileImage(ctx, a.ArtistID)
			}
			kept[i] = &a
		}(i, candidate)
	}
	wg.Wait()

	out := make([]Artist, 0, len(candidates))
	for _, a := range kept {
		if a != nil {
			out = append(out, *a)
		}
	}
	return out
}

// artistProfileImage derives an artist image from their first album's artwork.
// Failures resolve to an empty string; the image simply stays absent.
func (c *Client) artistProfileImage(ctx context.Context, artistID int64) string {
	results, err := c.lookup(ctx, artistID, "album", 1, true)
	if err != nil {
		return ""
	}
	for _, r := range results {
		if r.isCollection() && r.ArtworkURL100 != "" {
			return HighResArtwork(r.ArtworkURL100)
		}
	}
	return ""
}
