package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

const lookupDetailLimit = 200

// GetAlbumDetail fetches one album and reconciles its track listing. When the
// store attributes tracks to a differently-labeled edition of the same album,
// the artist's full song catalog is pooled by normalized title and collapsed
// per track number, preferring the edition that matches the requested release.
func (c *Client) GetAlbumDetail(ctx context.Context, collectionID int64) (*AlbumDetail, error) {
	if collectionID <= 0 {
		return nil, fmt.Errorf("album detail: %w", ErrInvalidID)
	}

	results, err := c.lookup(ctx, collectionID, "song,album", lookupDetailLimit, true)
	if err != nil {
		return nil, fmt.Errorf("album %d detail: %w", collectionID, ErrUpstream)
	}

	collection, tracks := splitLookup(results)

	// The home store sometimes knows the collection but none of its tracks.
	// Adopt the global answer only when it is more than a bare collection
	// record, so a valid empty listing is not traded for another empty one.
	if len(tracks) == 0 {
		global, globalErr := c.lookup(ctx, collectionID, "song,album", lookupDetailLimit, false)
		if globalErr == nil && len(global) > 1 {
			if gc, gt := splitLookup(global); gc != nil || len(gt) > 0 {
				if gc != nil {
					collection = gc
				}
				tracks = gt
			}
		}
	}

	if collection == nil {
		return nil, fmt.Errorf("album %d detail: %w", collectionID, ErrNotFound)
	}

	// A collection record without a trackCount still expects at least one track.
	if len(tracks) < max(collection.TrackCount, 1) && collection.ArtistID != 0 {
		if pooled := c.poolEditionTracks(ctx, collection, collectionID); len(pooled) > 0 {
			tracks = pooled
		}
	}

	kept := tracks[:0:0]
	for _, t := range tracks {
		if t.Title != "" {
			kept = append(kept, t)
		}
	}
	// Cross-edition pooling can mix disc numberings; a flat ascending track
	// order avoids collisions between discs.
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].TrackNumber < kept[j].TrackNumber
	})

	album := *collection
	if album.TrackCount == 0 {
		album.TrackCount = len(kept)
	}
	return &AlbumDetail{Album: album, Tracks: kept}, nil
}

// splitLookup separates the collection record from track records in a
// combined lookup response.
func splitLookup(results []result) (*Album, []Track) {
	var collection *Album
	var tracks []Track
	for _, r := range results {
		switch {
		case r.WrapperType == wrapperCollection:
			if collection == nil {
				a := r.album()
				collection = &a
			}
		case r.isTrack():
			tracks = append(tracks, r.track())
		}
	}
	return collection, tracks
}

// poolEditionTracks widens the search to the artist's whole song catalog and
// keeps tracks that belong to the target album or to an equivalent edition of
// it, matched by normalized title. Per track number only the edition scoring
// best against the originally requested title survives. Best-effort: any
// failure yields nil and the caller keeps what it had.
func (c *Client) poolEditionTracks(ctx context.Context, collection *Album, collectionID int64) []Track {
	catalogItems, err := c.lookup(ctx, collection.ArtistID, "song", lookupDetailLimit, false)
	if err != nil {
		log.Debug().Err(err).Int64("artist", collection.ArtistID).Msg("edition pooling fetch failed")
		return nil
	}

	targetKey := normalizeTitle(collection.Title)
	var pooled []Track
	for _, r := range catalogItems {
		if !r.isTrack() {
			continue
		}
		t := r.track()
		if t.CollectionID == collectionID {
			pooled = append(pooled, t)
			continue
		}
		key := normalizeTitle(t.CollectionName)
		if key == "" || targetKey == "" {
			continue
		}
		if key == targetKey || containsEither(key, targetKey) {
			pooled = append(pooled, t)
		}
	}

	byNumber := make(map[int]Track, len(pooled))
	var order []int
	for _, t := range pooled {
		best, ok := byNumber[t.TrackNumber]
		if !ok {
			byNumber[t.TrackNumber] = t
			order = append(order, t.TrackNumber)
			continue
		}
		if editionMatchScore(t.CollectionName, collection.Title) >
			editionMatchScore(best.CollectionName, collection.Title) {
			byNumber[t.TrackNumber] = t
		}
	}

	out := make([]Track, 0, len(order))
	for _, n := range order {
		out = append(out, byNumber[n])
	}
	return out
}

func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
