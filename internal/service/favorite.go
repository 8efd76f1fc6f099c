package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/gamepad-api/internal/model"
	"github.com/sakif/gamepad-api/internal/repository"
)

// FavoriteService handles a user's saved-games list. Every operation is
// ownership-scoped: the owner comes from the authenticated identity, never
// from the request body.
type FavoriteService struct {
	favorites repository.FavoriteRepository
	logger    *slog.Logger
}

// NewFavoriteService creates a FavoriteService.
func NewFavoriteService(favorites repository.FavoriteRepository, logger *slog.Logger) *FavoriteService {
	return &FavoriteService{
		favorites: favorites,
		logger:    logger,
	}
}

// AddFavoriteParams are the fields a favorite-add request must carry.
// GameID is optional — the inherited contract only requires title and image.
type AddFavoriteParams struct {
	GameID string
	Title  string `validate:"required"`
	Image  string `validate:"required"`
}

// Add saves a game to the owner's favorites.
//
// Uniqueness is (owner, title): saving the same title twice bounces off the
// store's unique index as a conflict ("Favorite already saved"). The index,
// not a prior existence check, is the enforcement — concurrent double-saves
// cannot both land.
func (s *FavoriteService) Add(ctx context.Context, owner *model.User, params AddFavoriteParams) (*model.Favorite, error) {
	if err := checkParams(params); err != nil {
		return nil, err
	}

	fav := &model.Favorite{
		GameID:  params.GameID,
		Title:   params.Title,
		Image:   params.Image,
		OwnerID: owner.ID,
	}

	if err := s.favorites.Create(ctx, fav); err != nil {
		return nil, fmt.Errorf("service/favorite: saving favorite: %w", err)
	}

	s.logger.Info("favorite added",
		slog.String("userID", owner.ID),
		slog.String("title", fav.Title),
	)

	return fav, nil
}

// ListForOwner returns all of the owner's favorites. An empty list is a
// normal success — "no favorites yet" is content, not an auth failure.
func (s *FavoriteService) ListForOwner(ctx context.Context, owner *model.User) ([]model.Favorite, error) {
	favorites, err := s.favorites.ListByOwner(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("service/favorite: listing favorites: %w", err)
	}
	return favorites, nil
}

// Delete removes the owner's favorite with the given title and reports how
// many records went away (0 or 1 — title is unique per owner). Deleting a
// title that was never saved is not an error; the operation is idempotent.
func (s *FavoriteService) Delete(ctx context.Context, owner *model.User, title string) (int64, error) {
	count, err := s.favorites.DeleteByTitle(ctx, owner.ID, title)
	if err != nil {
		return 0, fmt.Errorf("service/favorite: deleting favorite: %w", err)
	}

	s.logger.Info("favorite delete",
		slog.String("userID", owner.ID),
		slog.String("title", title),
		slog.Int64("deleted", count),
	)

	return count, nil
}
