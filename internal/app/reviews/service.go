package reviews

import (
	"context"
	"errors"
	"strings"

	"recordclub/internal/store"
)

// ErrInvalidReview indicates a review that fails validation.
var ErrInvalidReview = errors.New("invalid review")

// Store describes the persistence operations required by the review service.
type Store interface {
	CreateReview(ctx context.Context, review store.Review) (*store.Review, error)
	ReviewsByAlbum(ctx context.Context, collectionID int64) ([]*store.Review, error)
	ReviewsByUser(ctx context.Context, userID int64) ([]*store.Review, error)
	SetReviewStatus(ctx context.Context, reviewID int64, status string) error
}

// Service exposes review workflows.
type Service interface {
	Create(ctx context.Context, userID int64, review store.Review) (*store.Review, error)
	ListByAlbum(ctx context.Context, collectionID int64) ([]*store.Review, error)
	ListByUser(ctx context.Context, userID int64) ([]*store.Review, error)
	SetStatus(ctx context.Context, reviewID int64, status string) error
}

type service struct {
	store Store
}

// New wires a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, userID int64, review store.Review) (*store.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateReview(review); err != nil {
		return nil, err
	}

	review.UserID = userID
	review.Body = strings.TrimSpace(review.Body)
	return s.store.CreateReview(ctx, review)
}

func (s *service) ListByAlbum(ctx context.Context, collectionID int64) ([]*store.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ReviewsByAlbum(ctx, collectionID)
}

func (s *service) ListByUser(ctx context.Context, userID int64) ([]*store.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ReviewsByUser(ctx, userID)
}

func (s *service) SetStatus(ctx context.Context, reviewID int64, status string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	switch status {
	case store.ReviewPending, store.ReviewApproved, store.ReviewRejected:
	default:
		return ErrInvalidReview
	}
	return s.store.SetReviewStatus(ctx, reviewID, status)
}

func validateReview(review store.Review) error {
	if review.CollectionID <= 0 {
		return ErrInvalidReview
	}
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidReview
	}
	if strings.TrimSpace(review.Body) == "" {
		return ErrInvalidReview
	}
	return nil
}
