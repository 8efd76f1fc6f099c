package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/gamepad-api/internal/model"
	"github.com/sakif/gamepad-api/internal/repository"
)

// ReviewService handles per-game text reviews. Writing requires an
// authenticated owner; reading is public.
type ReviewService struct {
	reviews repository.ReviewRepository
	logger  *slog.Logger
}

// NewReviewService creates a ReviewService.
func NewReviewService(reviews repository.ReviewRepository, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		logger:  logger,
	}
}

// AddReviewParams are the fields a review request must carry.
type AddReviewParams struct {
	GameID string `validate:"required"`
	Title  string `validate:"required"`
	Review string `validate:"required"`
}

// Add records the owner's review of a game with a server-assigned creation
// timestamp. One review per user per game: a second attempt bounces off the
// store's UNIQUE(owner, game) index as a conflict. Reviews are write-once —
// there is no update or delete.
func (s *ReviewService) Add(ctx context.Context, owner *model.User, params AddReviewParams) (*model.Review, error) {
	if err := checkParams(params); err != nil {
		return nil, err
	}

	review := &model.Review{
		GameID:    params.GameID,
		Title:     params.Title,
		Review:    params.Review,
		OwnerID:   owner.ID,
		OwnerName: owner.Username,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("service/review: saving review: %w", err)
	}

	s.logger.Info("review added",
		slog.String("userID", owner.ID),
		slog.String("gameID", review.GameID),
	)

	return review, nil
}

// ListForGame returns every review for a game, in whatever order the store
// produces. Public — no owner scoping — and an empty list is a normal
// success.
func (s *ReviewService) ListForGame(ctx context.Context, gameID string) ([]model.Review, error) {
	reviews, err := s.reviews.ListByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("service/review: listing reviews for game %s: %w", gameID, err)
	}
	return reviews, nil
}
