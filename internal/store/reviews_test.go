package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestCreateReview(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO reviews`)).
		WithArgs(int64(7), int64(900), "OK Computer", "Radiohead", 5, "still holds up", ReviewPending).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), time.Now()))

	created, err := s.CreateReview(context.Background(), Review{
		UserID:       7,
		CollectionID: 900,
		AlbumTitle:   "OK Computer",
		ArtistName:   "Radiohead",
		Rating:       5,
		Body:         "still holds up",
	})
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if created.ID != 3 || created.Status != ReviewPending {
		t.Fatalf("unexpected review: %+v", created)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateReviewDuplicate(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO reviews`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := s.CreateReview(context.Background(), Review{UserID: 7, CollectionID: 900, Rating: 4})
	if !errors.Is(err, ErrReviewExists) {
		t.Fatalf("expected ErrReviewExists, got %v", err)
	}
}

func TestReviewsByAlbumOnlyApproved(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE r.collection_id = $1 AND r.status = $2`)).
		WithArgs(int64(900), ReviewApproved).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "username", "collection_id", "album_title", "artist_name",
			"rating", "body", "status", "created_at",
		}).AddRow(int64(3), int64(7), "alice", int64(900), "OK Computer", "Radiohead",
			5, "still holds up", ReviewApproved, time.Now()))

	reviews, err := s.ReviewsByAlbum(context.Background(), 900)
	if err != nil {
		t.Fatalf("ReviewsByAlbum: %v", err)
	}
	if len(reviews) != 1 || reviews[0].Username != "alice" {
		t.Fatalf("unexpected reviews: %+v", reviews)
	}
}

func TestSetReviewStatusNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE reviews`)).
		WithArgs(int64(99), ReviewApproved).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.SetReviewStatus(context.Background(), 99, ReviewApproved); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}
