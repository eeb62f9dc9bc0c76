package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// FeaturedAlbum is the album highlighted on the front page for one date.
type FeaturedAlbum struct {
	ID           int64     `json:"id"`
	DisplayDate  string    `json:"displayDate"` // YYYY-MM-DD
	CollectionID int64     `json:"collectionId"`
	Title        string    `json:"title"`
	ArtistName   string    `json:"artistName"`
	ArtworkURL   string    `json:"artworkUrl"`
	Note         string    `json:"note"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SetFeatured installs the featured album for a date, replacing any previous
// pick for that date.
func (s *Store) SetFeatured(ctx context.Context, featured FeaturedAlbum) (*FeaturedAlbum, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO featured_albums (display_date, collection_id, title, artist_name, artwork_url, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (display_date) DO UPDATE
		SET collection_id = EXCLUDED.collection_id,
		    title = EXCLUDED.title,
		    artist_name = EXCLUDED.artist_name,
		    artwork_url = EXCLUDED.artwork_url,
		    note = EXCLUDED.note
		RETURNING id, created_at
	`, featured.DisplayDate, featured.CollectionID, featured.Title,
		featured.ArtistName, featured.ArtworkURL, featured.Note,
	).Scan(&featured.ID, &featured.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert featured album: %w", err)
	}

	return &featured, nil
}

// FeaturedByDate returns the featured album for the given date.
func (s *Store) FeaturedByDate(ctx context.Context, date string) (*FeaturedAlbum, error) {
	var featured FeaturedAlbum
	err := s.db.QueryRowContext(ctx, `
		SELECT id, display_date::text, collection_id, title, artist_name, artwork_url, note, created_at
		FROM featured_albums
		WHERE display_date = $1
	`, date).Scan(&featured.ID, &featured.DisplayDate, &featured.CollectionID,
		&featured.Title, &featured.ArtistName, &featured.ArtworkURL,
		&featured.Note, &featured.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFeaturedNotFound
		}
		return nil, fmt.Errorf("lookup featured album: %w", err)
	}

	return &featured, nil
}
