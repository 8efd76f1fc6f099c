package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sakif/gamepad-api/internal/auth"
	"github.com/sakif/gamepad-api/internal/service"
)

// ReviewHandler exposes review writing (authenticated) and reading (public).
type ReviewHandler struct {
	reviews *service.ReviewService
	logger  *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(reviews *service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviews: reviews,
		logger:  logger,
	}
}

// addReviewRequest mirrors the JSON body of POST /review.
type addReviewRequest struct {
	GameID string `json:"gameId"`
	Title  string `json:"title"`
	Review string `json:"review"`
}

// HandleAdd records the caller's review of a game.
//
// HTTP: POST /review (bearer token)
// Body: {"gameId": ..., "title": ..., "review": ...}
//
// 201 → {"message": "Review successfully added"}
// 400 → missing fields, 409 → caller already reviewed this game.
func (h *ReviewHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req addReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid review JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
		return
	}

	_, err := h.reviews.Add(r.Context(), owner, service.AddReviewParams{
		GameID: req.GameID,
		Title:  req.Title,
		Review: req.Review,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Review successfully added"})
}

// HandleListForGame returns every review for a game.
//
// HTTP: GET /reviews?gameId=<id> (public — no token needed)
//
// 200 → JSON array, possibly empty, in no guaranteed order. Each entry
// carries the reviewer's username as "owner".
func (h *ReviewHandler) HandleListForGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("gameId")

	reviews, err := h.reviews.ListForGame(r.Context(), gameID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}
