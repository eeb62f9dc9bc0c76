package store

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrUserExists signals the username is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials indicates a login failure.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrReviewExists signals the user already reviewed the album.
	ErrReviewExists = errors.New("review already exists")
	// ErrReviewNotFound indicates a missing review row.
	ErrReviewNotFound = errors.New("review not found")
	// ErrFavoriteExists signals the album is already favorited.
	ErrFavoriteExists = errors.New("favorite already exists")
	// ErrFavoriteNotFound indicates a missing favorite row.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrFeaturedNotFound indicates no featured album for the date.
	ErrFeaturedNotFound = errors.New("no featured album for date")
)

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
