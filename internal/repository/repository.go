// Package repository declares the storage interfaces the service layer
// programs against. The concrete implementation lives in repository/sqlite;
// tests substitute in-memory fakes.
package repository

import (
	"context"

	"github.com/sakif/gamepad-api/internal/model"
)

// UserRepository persists account records.
//
// UNIQUENESS IS THE STORE'S JOB:
// email, username and token each carry a unique index. Create does NOT do a
// check-then-insert — concurrent signups would race between the check and
// the write. Instead the unique-index violation coming back from the insert
// is the authoritative duplicate signal, surfaced as apperror.ErrConflict.
type UserRepository interface {
	// Create inserts a new user, assigning ID and CreatedAt.
	// Returns apperror.ErrConflict if the email or username is taken.
	Create(ctx context.Context, user *model.User) error

	// GetByEmail returns the full credential record (salt and hash included —
	// login needs them). Returns apperror.ErrNotFound if absent.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByToken resolves a bearer token to its owner. The projection
	// excludes salt and password hash — callers of this path never need
	// credential material. Returns apperror.ErrNotFound for unknown tokens.
	GetByToken(ctx context.Context, token string) (*model.User, error)
}

// FavoriteRepository persists a user's saved games.
// (owner_id, title) is unique — enforced by the store, same pattern as above.
type FavoriteRepository interface {
	// Create inserts a favorite, assigning ID and CreatedAt.
	// Returns apperror.ErrConflict if the owner already saved this title.
	Create(ctx context.Context, fav *model.Favorite) error

	// ListByOwner returns all favorites belonging to ownerID.
	// An empty slice is a normal result, not an error.
	ListByOwner(ctx context.Context, ownerID string) ([]model.Favorite, error)

	// DeleteByTitle removes the favorite matching (ownerID, title) and
	// returns how many rows were deleted (0 or 1 — title is unique per
	// owner). Deleting nothing is not an error.
	DeleteByTitle(ctx context.Context, ownerID, title string) (int64, error)
}

// ReviewRepository persists per-game reviews.
// (owner_id, game_id) is unique — one review per user per game.
type ReviewRepository interface {
	// Create inserts a review, assigning ID and CreatedAt.
	// Returns apperror.ErrConflict if the owner already reviewed this game.
	Create(ctx context.Context, review *model.Review) error

	// ListByGame returns all reviews for a game, each with the reviewer's
	// username filled in. No ordering guarantee.
	ListByGame(ctx context.Context, gameID string) ([]model.Review, error)
}
