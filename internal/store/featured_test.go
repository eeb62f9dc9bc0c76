package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSetFeatured(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO featured_albums`)).
		WithArgs("2026-09-01", int64(900), "OK Computer", "Radiohead", "", "pick of the day").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), time.Now()))

	featured, err := s.SetFeatured(context.Background(), FeaturedAlbum{
		DisplayDate:  "2026-09-01",
		CollectionID: 900,
		Title:        "OK Computer",
		ArtistName:   "Radiohead",
		Note:         "pick of the day",
	})
	if err != nil {
		t.Fatalf("SetFeatured: %v", err)
	}
	if featured.ID != 5 {
		t.Fatalf("unexpected featured album: %+v", featured)
	}
}

func TestFeaturedByDateNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM featured_albums`)).
		WithArgs("2026-09-02").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "display_date", "collection_id", "title", "artist_name", "artwork_url", "note", "created_at",
		}))

	if _, err := s.FeaturedByDate(context.Background(), "2026-09-02"); !errors.Is(err, ErrFeaturedNotFound) {
		t.Fatalf("expected ErrFeaturedNotFound, got %v", err)
	}
}
