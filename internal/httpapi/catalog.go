package httpapi

import (
	"errors"
	"net/http"

	"recordclub/internal/catalog"
)

func (s *Server) handleSearchArtists(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")
	limit := queryLimit(r, 20, 50)

	artists, err := s.catalog.SearchArtists(r.Context(), term, limit)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	if artists == nil {
		artists = []catalog.Artist{}
	}
	writeJSON(w, http.StatusOK, struct {
		Artists []catalog.Artist `json:"artists"`
	}{Artists: artists})
}

func (s *Server) handleArtistAlbums(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	limit := queryLimit(r, 50, 100)

	albums, err := s.catalog.ArtistAlbums(r.Context(), id, limit)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	if albums == nil {
		albums = []catalog.Album{}
	}
	writeJSON(w, http.StatusOK, struct {
		Albums []catalog.Album `json:"albums"`
	}{Albums: albums})
}

func (s *Server) handleSearchAlbums(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")
	limit := queryLimit(r, 20, 50)

	albums, err := s.catalog.SearchAlbums(r.Context(), term, limit)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	if albums == nil {
		albums = []catalog.Album{}
	}
	writeJSON(w, http.StatusOK, struct {
		Albums []catalog.Album `json:"albums"`
	}{Albums: albums})
}

func (s *Server) handleAlbumDetail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	detail, err := s.catalog.GetAlbumDetail(r.Context(), id)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

// writeCatalogError maps the catalog error taxonomy onto HTTP statuses.
func writeCatalogError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, catalog.ErrInvalidID):
		status = http.StatusBadRequest
	case errors.Is(err, catalog.ErrNoResults), errors.Is(err, catalog.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, catalog.ErrUpstream):
		status = http.StatusBadGateway
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
