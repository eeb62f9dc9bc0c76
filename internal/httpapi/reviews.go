package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"recordclub/internal/app/reviews"
	"recordclub/internal/store"
)

type reviewRequest struct {
	CollectionID int64  `json:"collectionId"`
	AlbumTitle   string `json:"albumTitle"`
	ArtistName   string `json:"artistName"`
	Rating       int    `json:"rating"`
	Body         string `json:"body"`
}

type reviewStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	claims, err := s.authenticate(r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	created, err := s.reviews.Create(r.Context(), claims.UserID, store.Review{
		CollectionID: req.CollectionID,
		AlbumTitle:   req.AlbumTitle,
		ArtistName:   req.ArtistName,
		Rating:       req.Rating,
		Body:         req.Body,
	})
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidReview):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		case errors.Is(err, store.ErrReviewExists):
			writeJSON(w, http.StatusConflict, errorResponse{Error: "album already reviewed"})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleMyReviews(w http.ResponseWriter, r *http.Request) {
	claims, err := s.authenticate(r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return
	}

	list, err := s.reviews.ListByUser(r.Context(), claims.UserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	if list == nil {
		list = []*store.Review{}
	}
	writeJSON(w, http.StatusOK, struct {
		Reviews []*store.Review `json:"reviews"`
	}{Reviews: list})
}

func (s *Server) handleAlbumReviews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	list, err := s.reviews.ListByAlbum(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	if list == nil {
		list = []*store.Review{}
	}
	writeJSON(w, http.StatusOK, struct {
		Reviews []*store.Review `json:"reviews"`
	}{Reviews: list})
}

func (s *Server) handleReviewStatus(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticateAdmin(r); err != nil {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "admin access required"})
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	var req reviewStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	if err := s.reviews.SetStatus(r.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidReview):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid status"})
		case errors.Is(err, store.ErrReviewNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "review not found"})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
