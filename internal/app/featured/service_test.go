package featured

import (
	"context"
	"errors"
	"testing"

	"recordclub/internal/catalog"
	"recordclub/internal/store"
)

type stubStore struct {
	set  *store.FeaturedAlbum
	byDt map[string]*store.FeaturedAlbum
}

func (s *stubStore) SetFeatured(_ context.Context, featured store.FeaturedAlbum) (*store.FeaturedAlbum, error) {
	featured.ID = 1
	s.set = &featured
	return &featured, nil
}

func (s *stubStore) FeaturedByDate(_ context.Context, date string) (*store.FeaturedAlbum, error) {
	if f, ok := s.byDt[date]; ok {
		return f, nil
	}
	return nil, store.ErrFeaturedNotFound
}

type stubCatalog struct {
	albums []catalog.Album
	err    error
}

func (c *stubCatalog) SearchAlbums(context.Context, string, int) ([]catalog.Album, error) {
	return c.albums, c.err
}

func TestSetResolvesThroughCatalog(t *testing.T) {
	st := &stubStore{}
	svc := New(st, &stubCatalog{albums: []catalog.Album{{
		CollectionID: 900,
		Title:        "OK Computer",
		ArtistName:   "Radiohead",
		ArtworkURL:   "https://img/600x600bb.jpg",
	}}})

	featured, err := svc.Set(context.Background(), "2026-09-01", "Radiohead", "OK Computer", "pick")
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if featured.CollectionID != 900 || featured.DisplayDate != "2026-09-01" {
		t.Fatalf("unexpected featured album: %+v", featured)
	}
	if st.set == nil || st.set.ArtworkURL != "https://img/600x600bb.jpg" {
		t.Fatalf("catalog metadata not persisted: %+v", st.set)
	}
}

func TestSetRejectsBadInput(t *testing.T) {
	svc := New(&stubStore{}, &stubCatalog{})

	if _, err := svc.Set(context.Background(), "2026-09-01", "", "OK Computer", ""); !errors.Is(err, ErrInvalidFeatured) {
		t.Fatalf("expected ErrInvalidFeatured for empty artist, got %v", err)
	}
	if _, err := svc.Set(context.Background(), "not-a-date", "Radiohead", "OK Computer", ""); !errors.Is(err, ErrInvalidFeatured) {
		t.Fatalf("expected ErrInvalidFeatured for bad date, got %v", err)
	}
}

func TestSetNoCatalogMatch(t *testing.T) {
	svc := New(&stubStore{}, &stubCatalog{})

	_, err := svc.Set(context.Background(), "2026-09-01", "Radiohead", "OK Computer", "")
	if !errors.Is(err, catalog.ErrNoResults) {
		t.Fatalf("expected ErrNoResults, got %v", err)
	}
}

func TestGetValidatesDate(t *testing.T) {
	svc := New(&stubStore{}, &stubCatalog{})

	if _, err := svc.Get(context.Background(), "09/01/2026"); !errors.Is(err, ErrInvalidFeatured) {
		t.Fatalf("expected ErrInvalidFeatured, got %v", err)
	}
}
