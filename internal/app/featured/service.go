package featured

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"recordclub/internal/catalog"
	"recordclub/internal/store"
)

// ErrInvalidFeatured indicates a malformed featured-album request.
var ErrInvalidFeatured = errors.New("invalid featured album")

const dateLayout = "2006-01-02"

// Store describes the persistence operations required by the featured service.
type Store interface {
	SetFeatured(ctx context.Context, featured store.FeaturedAlbum) (*store.FeaturedAlbum, error)
	FeaturedByDate(ctx context.Context, date string) (*store.FeaturedAlbum, error)
}

// Catalog resolves free-text album picks against the external catalog.
type Catalog interface {
	SearchAlbums(ctx context.Context, term string, limit int) ([]catalog.Album, error)
}

// Service exposes the daily featured-album workflows.
type Service interface {
	Get(ctx context.Context, date string) (*store.FeaturedAlbum, error)
	Set(ctx context.Context, date, artist, title, note string) (*store.FeaturedAlbum, error)
}

type service struct {
	store   Store
	catalog Catalog
}

// New wires a Service backed by the provided Store and catalog.
func New(store Store, catalog Catalog) Service {
	return &service{store: store, catalog: catalog}
}

// Get returns the featured album for a date. An empty date means today.
func (s *service) Get(ctx context.Context, date string) (*store.FeaturedAlbum, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if date == "" {
		date = time.Now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ErrInvalidFeatured
	}

	return s.store.FeaturedByDate(ctx, date)
}

// Set resolves an (artist, title) pick through the catalog and installs the
// best match as the featured album for the date.
func (s *service) Set(ctx context.Context, date, artist, title, note string) (*store.FeaturedAlbum, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	artist = strings.TrimSpace(artist)
	title = strings.TrimSpace(title)
	if artist == "" || title == "" {
		return nil, ErrInvalidFeatured
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ErrInvalidFeatured
	}

	matches, err := s.catalog.SearchAlbums(ctx, artist+" "+title, 1)
	if err != nil {
		return nil, fmt.Errorf("resolve featured album: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("resolve featured album: %w", catalog.ErrNoResults)
	}

	match := matches[0]
	return s.store.SetFeatured(ctx, store.FeaturedAlbum{
		DisplayDate:  date,
		CollectionID: match.CollectionID,
		Title:        match.Title,
		ArtistName:   match.ArtistName,
		ArtworkURL:   match.ArtworkURL,
		Note:         strings.TrimSpace(note),
	})
}
