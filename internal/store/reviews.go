package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Review moderation statuses.
const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
	ReviewRejected = "rejected"
)

// Review is a user's take on one catalog album. CollectionID refers to the
// external catalog, not a local table.
type Review struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	Username     string    `json:"username"`
	CollectionID int64     `json:"collectionId"`
	AlbumTitle   string    `json:"albumTitle"`
	ArtistName   string    `json:"artistName"`
	Rating       int       `json:"rating"`
	Body         string    `json:"body"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateReview inserts a pending review. One review per user per album.
func (s *Store) CreateReview(ctx context.Context, review Review) (*Review, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO reviews (user_id, collection_id, album_title, artist_name, rating, body, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, review.UserID, review.CollectionID, review.AlbumTitle, review.ArtistName,
		review.Rating, review.Body, ReviewPending,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrReviewExists
		}
		return nil, fmt.Errorf("insert review: %w", err)
	}

	review.Status = ReviewPending
	return &review, nil
}

// ReviewsByAlbum returns approved reviews for one catalog album, newest first.
func (s *Store) ReviewsByAlbum(ctx context.Context, collectionID int64) ([]*Review, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.user_id, u.username, r.collection_id, r.album_title, r.artist_name,
		       r.rating, r.body, r.status, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.collection_id = $1 AND r.status = $2
		ORDER BY r.created_at DESC
	`, collectionID, ReviewApproved)
	if err != nil {
		return nil, fmt.Errorf("select reviews: %w", err)
	}
	defer rows.Close()

	return scanReviews(rows)
}

// ReviewsByUser returns all of a user's reviews regardless of status.
func (s *Store) ReviewsByUser(ctx context.Context, userID int64) ([]*Review, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.user_id, u.username, r.collection_id, r.album_title, r.artist_name,
		       r.rating, r.body, r.status, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select reviews: %w", err)
	}
	defer rows.Close()

	return scanReviews(rows)
}

// SetReviewStatus updates moderation status for one review.
func (s *Store) SetReviewStatus(ctx context.Context, reviewID int64, status string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE reviews
		SET status = $2
		WHERE id = $1
	`, reviewID, status)
	if err != nil {
		return fmt.Errorf("update review status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func scanReviews(rows *sql.Rows) ([]*Review, error) {
	var reviews []*Review
	for rows.Next() {
		var r Review
		if err := rows.Scan(&r.ID, &r.UserID, &r.Username, &r.CollectionID, &r.AlbumTitle,
			&r.ArtistName, &r.Rating, &r.Body, &r.Status, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}
	return reviews, nil
}
