package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"recordclub/internal/auth"
	"recordclub/internal/catalog"
	"recordclub/internal/store"
)

type stubUsers struct {
	signupErr error
	token     string
	loginErr  error
}

func (s *stubUsers) Signup(context.Context, string, string) error { return s.signupErr }
func (s *stubUsers) Login(context.Context, string, string) (string, error) {
	return s.token, s.loginErr
}

type stubCatalog struct {
	artists []catalog.Artist
	albums  []catalog.Album
	detail  *catalog.AlbumDetail
	err     error

	gotArtistID int64
	gotTerm     string
}

func (s *stubCatalog) SearchArtists(_ context.Context, term string, _ int) ([]catalog.Artist, error) {
	s.gotTerm = term
	return s.artists, s.err
}

func (s *stubCatalog) ArtistAlbums(_ context.Context, artistID int64, _ int) ([]catalog.Album, error) {
	s.gotArtistID = artistID
	return s.albums, s.err
}

func (s *stubCatalog) SearchAlbums(_ context.Context, term string, _ int) ([]catalog.Album, error) {
	s.gotTerm = term
	return s.albums, s.err
}

func (s *stubCatalog) GetAlbumDetail(context.Context, int64) (*catalog.AlbumDetail, error) {
	return s.detail, s.err
}

type stubReviews struct {
	created *store.Review
	list    []*store.Review
	err     error
}

func (s *stubReviews) Create(context.Context, int64, store.Review) (*store.Review, error) {
	return s.created, s.err
}
func (s *stubReviews) ListByAlbum(context.Context, int64) ([]*store.Review, error) {
	return s.list, s.err
}
func (s *stubReviews) ListByUser(context.Context, int64) ([]*store.Review, error) {
	return s.list, s.err
}
func (s *stubReviews) SetStatus(context.Context, int64, string) error { return s.err }

type stubFavorites struct {
	fav  *store.FavoriteAlbum
	list []*store.FavoriteAlbum
	err  error
}

func (s *stubFavorites) Add(context.Context, int64, store.FavoriteAlbum) (*store.FavoriteAlbum, error) {
	return s.fav, s.err
}
func (s *stubFavorites) Remove(context.Context, int64, int64) error { return s.err }
func (s *stubFavorites) List(context.Context, int64) ([]*store.FavoriteAlbum, error) {
	return s.list, s.err
}

type stubFeatured struct {
	pick *store.FeaturedAlbum
	err  error
}

func (s *stubFeatured) Get(context.Context, string) (*store.FeaturedAlbum, error) {
	return s.pick, s.err
}
func (s *stubFeatured) Set(context.Context, string, string, string, string) (*store.FeaturedAlbum, error) {
	return s.pick, s.err
}

type stubTokens struct{}

func (stubTokens) Verify(token string) (*auth.Claims, error) {
	switch token {
	case "user-token":
		return &auth.Claims{UserID: 7}, nil
	case "admin-token":
		return &auth.Claims{UserID: 1, Admin: true}, nil
	}
	return nil, auth.ErrInvalidToken
}

type serverStubs struct {
	users     *stubUsers
	catalog   *stubCatalog
	reviews   *stubReviews
	favorites *stubFavorites
	featured  *stubFeatured
}

func newTestServer() (*Server, *serverStubs) {
	stubs := &serverStubs{
		users:     &stubUsers{},
		catalog:   &stubCatalog{},
		reviews:   &stubReviews{},
		favorites: &stubFavorites{},
		featured:  &stubFeatured{},
	}
	srv := New(stubs.users, stubs.catalog, stubs.reviews, stubs.favorites, stubs.featured, stubTokens{})
	return srv, stubs
}

func doRequest(t *testing.T, srv *Server, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}

func TestSignup(t *testing.T) {
	srv, stubs := newTestServer()

	rec := doRequest(t, srv, http.MethodPost, "/api/v1/auth/signup", "", `{"username":"alice","password":"pw"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	stubs.users.signupErr = store.ErrUserExists
	rec = doRequest(t, srv, http.MethodPost, "/api/v1/auth/signup", "", `{"username":"alice","password":"pw"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate username, got %d", rec.Code)
	}
}

func TestLogin(t *testing.T) {
	srv, stubs := newTestServer()
	stubs.users.token = "issued-token"

	rec := doRequest(t, srv, http.MethodPost, "/api/v1/auth/login", "", `{"username":"alice","password":"pw"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp tokenResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "issued-token" {
		t.Fatalf("unexpected token %q", resp.Token)
	}

	stubs.users.loginErr = store.ErrInvalidCredentials
	rec = doRequest(t, srv, http.MethodPost, "/api/v1/auth/login", "", `{"username":"alice","password":"bad"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSearchArtistsEndpoint(t *testing.T) {
	srv, stubs := newTestServer()
	stubs.catalog.artists = []catalog.Artist{{ArtistID: 1, Name: "Prince"}}

	rec := doRequest(t, srv, http.MethodGet, "/api/v1/catalog/artists?term=prince", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if stubs.catalog.gotTerm != "prince" {
		t.Fatalf("term not forwarded, got %q", stubs.catalog.gotTerm)
	}

	var resp struct {
		Artists []catalog.Artist `json:"artists"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Artists) != 1 || resp.Artists[0].Name != "Prince" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCatalogErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"no results", catalog.ErrNoResults, http.StatusNotFound},
		{"upstream failure", catalog.ErrUpstream, http.StatusBadGateway},
		{"invalid id", catalog.ErrInvalidID, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			srv, stubs := newTestServer()
			stubs.catalog.err = tc.err

			rec := doRequest(t, srv, http.MethodGet, "/api/v1/catalog/artists?term=x", "", "")
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, rec.Code)
			}
		})
	}
}

func TestArtistAlbumsEndpoint(t *testing.T) {
	srv, stubs := newTestServer()
	stubs.catalog.albums = []catalog.Album{{CollectionID: 10, Title: "Purple Rain"}}

	rec := doRequest(t, srv, http.MethodGet, "/api/v1/catalog/artists/42/albums", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stubs.catalog.gotArtistID != 42 {
		t.Fatalf("artist id not forwarded, got %d", stubs.catalog.gotArtistID)
	}

	rec = doRequest(t, srv, http.MethodGet, "/api/v1/catalog/artists/abc/albums", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", rec.Code)
	}
}

func TestAlbumDetailEndpoint(t *testing.T) {
	srv, stubs := newTestServer()
	stubs.catalog.detail = &catalog.AlbumDetail{
		Album:  catalog.Album{CollectionID: 10, Title: "Dummy"},
		Tracks: []catalog.Track{{TrackID: 1, Title: "Mysterons", TrackNumber: 1}},
	}

	rec := doRequest(t, srv, http.MethodGet, "/api/v1/catalog/albums/10", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var detail catalog.AlbumDetail
	if err := json.NewDecoder(rec.Body).Decode(&detail); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if detail.Album.CollectionID != 10 || len(detail.Tracks) != 1 {
		t.Fatalf("unexpected payload: %+v", detail)
	}
}

func TestCreateReviewRequiresAuth(t *testing.T) {
	srv, stubs := newTestServer()
	stubs.reviews.created = &store.Review{ID: 3, Status: store.ReviewPending}

	rec := doRequest(t, srv, http.MethodPost, "/api/v1/reviews", "", `{"collectionId":900,"rating":5,"body":"x"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	rec = doRequest(t, srv, http.MethodPost, "/api/v1/reviews", "user-token", `{"collectionId":900,"rating":5,"body":"x"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 with token, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestReviewStatusRequiresAdmin(t *testing.T) {
	srv, _ := newTestServer()

	rec := doRequest(t, srv, http.MethodPut, "/api/v1/admin/reviews/3/status", "user-token", `{"status":"approved"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", rec.Code)
	}

	rec = doRequest(t, srv, http.MethodPut, "/api/v1/admin/reviews/3/status", "admin-token", `{"status":"approved"}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for admin, got %d", rec.Code)
	}
}

func TestRemoveFavoriteNotFound(t *testing.T) {
	srv, stubs := newTestServer()
	stubs.favorites.err = store.ErrFavoriteNotFound

	rec := doRequest(t, srv, http.MethodDelete, "/api/v1/me/favorites/albums/900", "user-token", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestFeaturedEndpoints(t *testing.T) {
	srv, stubs := newTestServer()
	stubs.featured.pick = &store.FeaturedAlbum{ID: 1, DisplayDate: "2026-09-01", CollectionID: 900}

	rec := doRequest(t, srv, http.MethodGet, "/api/v1/featured?date=2026-09-01", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doRequest(t, srv, http.MethodPut, "/api/v1/admin/featured", "user-token", `{"displayDate":"2026-09-01"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", rec.Code)
	}

	rec = doRequest(t, srv, http.MethodPut, "/api/v1/admin/featured", "admin-token",
		`{"displayDate":"2026-09-01","artistName":"Radiohead","albumTitle":"OK Computer"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", rec.Code)
	}
}
