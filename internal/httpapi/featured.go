package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"recordclub/internal/app/featured"
	"recordclub/internal/catalog"
	"recordclub/internal/store"
)

type featuredRequest struct {
	DisplayDate string `json:"displayDate"` // YYYY-MM-DD
	ArtistName  string `json:"artistName"`
	AlbumTitle  string `json:"albumTitle"`
	Note        string `json:"note"`
}

func (s *Server) handleGetFeatured(w http.ResponseWriter, r *http.Request) {
	pick, err := s.featured.Get(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		switch {
		case errors.Is(err, featured.ErrInvalidFeatured):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid date"})
		case errors.Is(err, store.ErrFeaturedNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "no featured album"})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusOK, pick)
}

func (s *Server) handleSetFeatured(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticateAdmin(r); err != nil {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "admin access required"})
		return
	}

	var req featuredRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	pick, err := s.featured.Set(r.Context(), req.DisplayDate, req.ArtistName, req.AlbumTitle, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, featured.ErrInvalidFeatured):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		case errors.Is(err, catalog.ErrNoResults):
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "no catalog match for album"})
		case errors.Is(err, catalog.ErrUpstream):
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusOK, pick)
}
