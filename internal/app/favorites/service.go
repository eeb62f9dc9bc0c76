package favorites

import (
	"context"
	"errors"

	"recordclub/internal/store"
)

// ErrInvalidFavorite indicates a favorite without a catalog album id.
var ErrInvalidFavorite = errors.New("invalid favorite")

// Store describes the persistence operations required by the favorites service.
type Store interface {
	AddFavorite(ctx context.Context, fav store.FavoriteAlbum) (*store.FavoriteAlbum, error)
	RemoveFavorite(ctx context.Context, userID, collectionID int64) error
	ListFavorites(ctx context.Context, userID int64) ([]*store.FavoriteAlbum, error)
}

// Service exposes favorite-album workflows.
type Service interface {
	Add(ctx context.Context, userID int64, fav store.FavoriteAlbum) (*store.FavoriteAlbum, error)
	Remove(ctx context.Context, userID, collectionID int64) error
	List(ctx context.Context, userID int64) ([]*store.FavoriteAlbum, error)
}

type service struct {
	store Store
}

// New wires a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Add(ctx context.Context, userID int64, fav store.FavoriteAlbum) (*store.FavoriteAlbum, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if fav.CollectionID <= 0 {
		return nil, ErrInvalidFavorite
	}
	fav.UserID = userID
	return s.store.AddFavorite(ctx, fav)
}

func (s *service) Remove(ctx context.Context, userID, collectionID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if collectionID <= 0 {
		return ErrInvalidFavorite
	}
	return s.store.RemoveFavorite(ctx, userID, collectionID)
}

func (s *service) List(ctx context.Context, userID int64) ([]*store.FavoriteAlbum, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListFavorites(ctx, userID)
}
