package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"recordclub/internal/app/favorites"
	"recordclub/internal/store"
)

type favoriteRequest struct {
	CollectionID int64  `json:"collectionId"`
	Title        string `json:"title"`
	ArtistName   string `json:"artistName"`
	ArtworkURL   string `json:"artworkUrl"`
}

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	claims, err := s.authenticate(r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return
	}

	list, err := s.favorites.List(r.Context(), claims.UserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	if list == nil {
		list = []*store.FavoriteAlbum{}
	}
	writeJSON(w, http.StatusOK, struct {
		Favorites []*store.FavoriteAlbum `json:"favorites"`
	}{Favorites: list})
}

func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	claims, err := s.authenticate(r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return
	}

	var req favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	fav, err := s.favorites.Add(r.Context(), claims.UserID, store.FavoriteAlbum{
		CollectionID: req.CollectionID,
		Title:        req.Title,
		ArtistName:   req.ArtistName,
		ArtworkURL:   req.ArtworkURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, favorites.ErrInvalidFavorite):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		case errors.Is(err, store.ErrFavoriteExists):
			writeJSON(w, http.StatusConflict, errorResponse{Error: "album already favorited"})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusCreated, fav)
}

func (s *Server) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	claims, err := s.authenticate(r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if err := s.favorites.Remove(r.Context(), claims.UserID, id); err != nil {
		if errors.Is(err, store.ErrFavoriteNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "favorite not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
