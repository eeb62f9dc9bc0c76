package store

import (
	"context"
	"fmt"
	"time"
)

// FavoriteAlbum links a user to a catalog album they marked as a favorite.
// Album metadata is denormalized at favoriting time so listings do not need
// a catalog round trip.
type FavoriteAlbum struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	CollectionID int64     `json:"collectionId"`
	Title        string    `json:"title"`
	ArtistName   string    `json:"artistName"`
	ArtworkURL   string    `json:"artworkUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AddFavorite records an album as one of the user's favorites.
func (s *Store) AddFavorite(ctx context.Context, fav FavoriteAlbum) (*FavoriteAlbum, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO favorite_albums (user_id, collection_id, title, artist_name, artwork_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, fav.UserID, fav.CollectionID, fav.Title, fav.ArtistName, fav.ArtworkURL,
	).Scan(&fav.ID, &fav.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrFavoriteExists
		}
		return nil, fmt.Errorf("insert favorite: %w", err)
	}

	return &fav, nil
}

// RemoveFavorite deletes the user's favorite for one catalog album.
func (s *Store) RemoveFavorite(ctx context.Context, userID, collectionID int64) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM favorite_albums
		WHERE user_id = $1 AND collection_id = $2
	`, userID, collectionID)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

// ListFavorites returns the user's favorite albums, newest first.
func (s *Store) ListFavorites(ctx context.Context, userID int64) ([]*FavoriteAlbum, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, collection_id, title, artist_name, artwork_url, created_at
		FROM favorite_albums
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	var favorites []*FavoriteAlbum
	for rows.Next() {
		var fav FavoriteAlbum
		if err := rows.Scan(&fav.ID, &fav.UserID, &fav.CollectionID, &fav.Title,
			&fav.ArtistName, &fav.ArtworkURL, &fav.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		favorites = append(favorites, &fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}

	return favorites, nil
}
