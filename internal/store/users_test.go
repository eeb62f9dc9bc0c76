package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

func TestCreateUserSuccess(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`)).
		WithArgs("alice", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := s.CreateUser(context.Background(), "  alice ", "hunter2")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected user id 7, got %d", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("alice", sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := s.CreateUser(context.Background(), "alice", "hunter2")
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestCreateUserRejectsBlankInput(t *testing.T) {
	s, _ := newMockStore(t)

	if _, err := s.CreateUser(context.Background(), "   ", "pw"); err == nil {
		t.Fatal("expected error for blank username")
	}
	if _, err := s.CreateUser(context.Background(), "bob", ""); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestAuthenticate(t *testing.T) {
	s, mock := newMockStore(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	userRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "username", "is_admin", "password_hash", "created_at"}).
			AddRow(int64(7), "alice", true, hash, time.Now())
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, is_admin, password_hash, created_at`)).
		WithArgs("alice").
		WillReturnRows(userRows())

	user, err := s.Authenticate(context.Background(), "alice", "hunter2")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user.ID != 7 || !user.Admin {
		t.Fatalf("unexpected user: %+v", user)
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, is_admin, password_hash, created_at`)).
		WithArgs("alice").
		WillReturnRows(userRows())

	if _, err := s.Authenticate(context.Background(), "alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, is_admin, password_hash, created_at`)).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "is_admin", "password_hash", "created_at"}))

	if _, err := s.Authenticate(context.Background(), "nobody", "hunter2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}
