package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/sakif/gamepad-api/internal/apperror"
	"github.com/sakif/gamepad-api/internal/model"
)

func addReview(t *testing.T, r *ReviewDB, ownerID, gameID, text string) *model.Review {
	t.Helper()
	review := &model.Review{
		GameID:  gameID,
		Title:   "Game " + gameID,
		Review:  text,
		OwnerID: ownerID,
	}
	if err := r.Create(context.Background(), review); err != nil {
		t.Fatalf("failed to create review for game %q: %v", gameID, err)
	}
	return review
}

func TestReviewCreate(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db.Users(), "alice")

	review := &model.Review{
		GameID:  "3328",
		Title:   "The Witcher 3",
		Review:  "Still the best open world I've played.",
		OwnerID: owner.ID,
	}
	if err := db.Reviews().Create(context.Background(), review); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if review.ID == "" {
		t.Error("Create() did not set review.ID")
	}
	if review.CreatedAt.IsZero() {
		t.Error("Create() did not set the server-assigned timestamp")
	}
}

func TestReviewCreate_DuplicateGameSameOwner(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db.Users(), "alice")
	r := db.Reviews()

	addReview(t, r, owner.ID, "g-100", "first impressions")

	dup := &model.Review{
		GameID:  "g-100",
		Title:   "Same Game",
		Review:  "second thoughts",
		OwnerID: owner.ID,
	}
	err := r.Create(context.Background(), dup)
	if !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("error should be ErrConflict, got %v", err)
	}

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Message != "you already wrote a review on this game" {
		t.Errorf("conflict message = %v, want the already-reviewed message", err)
	}
}

func TestReviewCreate_SameGameDifferentOwners(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db.Users(), "alice")
	bob := createTestUser(t, db.Users(), "bob")
	r := db.Reviews()

	addReview(t, r, alice.ID, "g-200", "loved it")
	// One review per user per game — a different user may review the same game.
	addReview(t, r, bob.ID, "g-200", "hated it")

	reviews, err := r.ListByGame(context.Background(), "g-200")
	if err != nil {
		t.Fatalf("ListByGame() error = %v", err)
	}
	if len(reviews) != 2 {
		t.Errorf("ListByGame() returned %d reviews, want 2", len(reviews))
	}
}

func TestReviewCreate_SameOwnerDifferentGames(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db.Users(), "alice")
	r := db.Reviews()

	addReview(t, r, owner.ID, "g-300", "good")
	addReview(t, r, owner.ID, "g-301", "also good")
}

func TestReviewListByGame_CarriesUsername(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db.Users(), "carol")
	r := db.Reviews()

	addReview(t, r, owner.ID, "g-400", "a text review")

	reviews, err := r.ListByGame(context.Background(), "g-400")
	if err != nil {
		t.Fatalf("ListByGame() error = %v", err)
	}
	if len(reviews) != 1 {
		t.Fatalf("ListByGame() returned %d reviews, want 1", len(reviews))
	}

	got := reviews[0]
	if got.OwnerName != "carol" {
		t.Errorf("OwnerName = %q, want %q", got.OwnerName, "carol")
	}
	if got.OwnerID != owner.ID {
		t.Errorf("OwnerID = %q, want %q", got.OwnerID, owner.ID)
	}
	if got.Review != "a text review" {
		t.Errorf("Review = %q, want the stored text", got.Review)
	}
}

func TestReviewListByGame_Empty(t *testing.T) {
	db := newTestDB(t)

	reviews, err := db.Reviews().ListByGame(context.Background(), "nobody-reviewed-this")
	if err != nil {
		t.Fatalf("ListByGame() error = %v", err)
	}
	if reviews == nil {
		t.Error("ListByGame() should return an empty slice, not nil")
	}
	if len(reviews) != 0 {
		t.Errorf("ListByGame() returned %d reviews, want 0", len(reviews))
	}
}
