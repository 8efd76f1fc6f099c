package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sakif/gamepad-api/internal/auth"
	"github.com/sakif/gamepad-api/internal/service"
)

// FavoriteHandler exposes the authenticated favorites endpoints. All three
// routes sit behind auth.RequireAuth, so the owner always comes from the
// request context — a client can only ever touch its own list.
type FavoriteHandler struct {
	favorites *service.FavoriteService
	logger    *slog.Logger
}

// NewFavoriteHandler creates a FavoriteHandler.
func NewFavoriteHandler(favorites *service.FavoriteService, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favorites: favorites,
		logger:    logger,
	}
}

// addFavoriteRequest mirrors the JSON body of POST /favorite.
type addFavoriteRequest struct {
	GameID string `json:"gameId"`
	Title  string `json:"title"`
	Image  string `json:"image"`
}

// deleteFavoriteRequest mirrors the JSON body of POST /deleteFav.
type deleteFavoriteRequest struct {
	Title string `json:"title"`
}

// HandleAdd saves a game to the caller's favorites.
//
// HTTP: POST /favorite (bearer token)
// Body: {"gameId": ..., "title": ..., "image": ...}
//
// 200 → {"message": "Game added in Favorites"}
// 400 → missing title/image, 409 → already saved.
func (h *FavoriteHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.UserFromContext(r.Context())
	if !ok {
		// Unreachable behind RequireAuth, but never proceed without an owner.
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req addFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid favorite JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
		return
	}

	_, err := h.favorites.Add(r.Context(), owner, service.AddFavoriteParams{
		GameID: req.GameID,
		Title:  req.Title,
		Image:  req.Image,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Game added in Favorites"})
}

// HandleList returns the caller's favorites.
//
// HTTP: GET /favoritesOfUser (bearer token)
//
// 200 → JSON array, possibly empty. An empty list is a normal response —
// "no favorites yet" is not an authorization problem.
func (h *FavoriteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	favorites, err := h.favorites.ListForOwner(r.Context(), owner)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, favorites)
}

// HandleDelete removes a favorite by title.
//
// HTTP: POST /deleteFav (bearer token)
// Body: {"title": ...}
//
// 200 → {"deletedCount": 0|1}. Deleting a title that was never saved is a
// zero-count success, not an error.
func (h *FavoriteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req deleteFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid deleteFav JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
		return
	}

	count, err := h.favorites.Delete(r.Context(), owner, req.Title)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deletedCount": count})
}
