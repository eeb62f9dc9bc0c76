package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"recordclub/internal/auth"
	"recordclub/internal/catalog"
	"recordclub/internal/store"
)

// UserService captures the account operations needed by the HTTP handlers.
type UserService interface {
	Signup(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
}

// CatalogService exposes the external music catalog workflows.
type CatalogService interface {
	SearchArtists(ctx context.Context, term string, limit int) ([]catalog.Artist, error)
	ArtistAlbums(ctx context.Context, artistID int64, limit int) ([]catalog.Album, error)
	SearchAlbums(ctx context.Context, term string, limit int) ([]catalog.Album, error)
	GetAlbumDetail(ctx context.Context, collectionID int64) (*catalog.AlbumDetail, error)
}

// ReviewService coordinates album review workflows.
type ReviewService interface {
	Create(ctx context.Context, userID int64, review store.Review) (*store.Review, error)
	ListByAlbum(ctx context.Context, collectionID int64) ([]*store.Review, error)
	ListByUser(ctx context.Context, userID int64) ([]*store.Review, error)
	SetStatus(ctx context.Context, reviewID int64, status string) error
}

// FavoriteService coordinates favorite-album workflows.
type FavoriteService interface {
	Add(ctx context.Context, userID int64, fav store.FavoriteAlbum) (*store.FavoriteAlbum, error)
	Remove(ctx context.Context, userID, collectionID int64) error
	List(ctx context.Context, userID int64) ([]*store.FavoriteAlbum, error)
}

// FeaturedService coordinates the daily featured album.
type FeaturedService interface {
	Get(ctx context.Context, date string) (*store.FeaturedAlbum, error)
	Set(ctx context.Context, date, artist, title, note string) (*store.FeaturedAlbum, error)
}

// TokenVerifier validates bearer tokens presented by clients.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	users     UserService
	catalog   CatalogService
	reviews   ReviewService
	favorites FavoriteService
	featured  FeaturedService
	tokens    TokenVerifier
}

// New configures a Server over the given services.
func New(
	users UserService,
	catalogSvc CatalogService,
	reviews ReviewService,
	favorites FavoriteService,
	featured FeaturedService,
	tokens TokenVerifier,
) *Server {
	return &Server{
		users:     users,
		catalog:   catalogSvc,
		reviews:   reviews,
		favorites: favorites,
		featured:  featured,
		tokens:    tokens,
	}
}

// Routes exposes the HTTP handlers.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /api/v1/auth/signup", s.handleSignup)
	mux.HandleFunc("POST /api/v1/auth/login", s.handleLogin)

	mux.HandleFunc("GET /api/v1/catalog/artists", s.handleSearchArtists)
	mux.HandleFunc("GET /api/v1/catalog/artists/{id}/albums", s.handleArtistAlbums)
	mux.HandleFunc("GET /api/v1/catalog/search", s.handleSearchAlbums)
	mux.HandleFunc("GET /api/v1/catalog/albums/{id}", s.handleAlbumDetail)

	mux.HandleFunc("POST /api/v1/reviews", s.handleCreateReview)
	mux.HandleFunc("GET /api/v1/me/reviews", s.handleMyReviews)
	mux.HandleFunc("GET /api/v1/albums/{id}/reviews", s.handleAlbumReviews)
	mux.HandleFunc("PUT /api/v1/admin/reviews/{id}/status", s.handleReviewStatus)

	mux.HandleFunc("GET /api/v1/me/favorites/albums", s.handleListFavorites)
	mux.HandleFunc("POST /api/v1/me/favorites/albums", s.handleAddFavorite)
	mux.HandleFunc("DELETE /api/v1/me/favorites/albums/{id}", s.handleRemoveFavorite)

	mux.HandleFunc("GET /api/v1/featured", s.handleGetFeatured)
	mux.HandleFunc("PUT /api/v1/admin/featured", s.handleSetFeatured)

	return mux
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	if err := s.users.Signup(r.Context(), req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, store.ErrUserExists):
			writeJSON(w, http.StatusConflict, errorResponse{Error: "username already taken"})
		default:
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	token, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		status := http.StatusUnauthorized
		if !errors.Is(err, store.ErrInvalidCredentials) {
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// authenticate resolves the bearer token into verified claims.
func (s *Server) authenticate(r *http.Request) (*auth.Claims, error) {
	token := parseBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return nil, auth.ErrInvalidToken
	}
	return s.tokens.Verify(token)
}

func (s *Server) authenticateAdmin(r *http.Request) (*auth.Claims, error) {
	claims, err := s.authenticate(r)
	if err != nil {
		return nil, err
	}
	if !claims.Admin {
		return nil, errors.New("admin access required")
	}
	return claims, nil
}

// pathID extracts the {id} path segment as a positive int64.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id parameter")
	}
	return id, nil
}

// queryLimit reads the limit query parameter, falling back when absent or
// out of range.
func queryLimit(r *http.Request, fallback, max int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 || limit > max {
		return fallback
	}
	return limit
}

func parseBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
