package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/sakif/gamepad-api/internal/apperror"
	"github.com/sakif/gamepad-api/internal/model"
)

func TestUserCreate(t *testing.T) {
	db := newTestDB(t)
	u := db.Users()

	user := &model.User{
		Email:        "test@example.com",
		Username:     "testuser",
		Token:        "some-opaque-token",
		Salt:         "some-salt",
		PasswordHash: "some-digest",
	}

	if err := u.Create(context.Background(), user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if user.ID == "" {
		t.Error("Create() did not set user.ID")
	}
	if user.CreatedAt.IsZero() {
		t.Error("Create() did not set user.CreatedAt")
	}
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	u := db.Users()

	createTestUser(t, u, "alice")

	dup := &model.User{
		Email:        "alice@example.com", // taken
		Username:     "completely-different",
		Token:        "another-token",
		Salt:         "s",
		PasswordHash: "h",
	}
	err := u.Create(context.Background(), dup)
	if err == nil {
		t.Fatal("Create() should fail for a duplicate email")
	}
	if !errors.Is(err, apperror.ErrConflict) {
		t.Errorf("error should be ErrConflict, got %v", err)
	}

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Message != "email already used" {
		t.Errorf("conflict message = %v, want %q", err, "email already used")
	}
}

func TestUserCreate_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	u := db.Users()

	createTestUser(t, u, "bob")

	dup := &model.User{
		Email:        "new-address@example.com",
		Username:     "bob", // taken
		Token:        "another-token",
		Salt:         "s",
		PasswordHash: "h",
	}
	err := u.Create(context.Background(), dup)
	if !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("error should be ErrConflict, got %v", err)
	}

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Message != "username already used" {
		t.Errorf("conflict message = %v, want %q", err, "username already used")
	}
}

func TestUserGetByEmail(t *testing.T) {
	db := newTestDB(t)
	u := db.Users()

	created := createTestUser(t, u, "carol")

	got, err := u.GetByEmail(context.Background(), "carol@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}

	if got.ID != created.ID {
		t.Errorf("ID = %q, want %q", got.ID, created.ID)
	}
	// The login path needs the full credential record.
	if got.Salt != created.Salt || got.PasswordHash != created.PasswordHash {
		t.Error("GetByEmail() must include salt and password hash")
	}
	if got.Token != created.Token {
		t.Errorf("Token = %q, want %q", got.Token, created.Token)
	}
}

func TestUserGetByEmail_CaseSensitive(t *testing.T) {
	db := newTestDB(t)
	u := db.Users()

	createTestUser(t, u, "dave")

	// Emails are stored and matched case-sensitively.
	_, err := u.GetByEmail(context.Background(), "DAVE@example.com")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetByEmail() with different case should be ErrNotFound, got %v", err)
	}
}

func TestUserGetByEmail_NotFound(t *testing.T) {
	db := newTestDB(t)
	u := db.Users()

	_, err := u.GetByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error should be ErrNotFound, got %v", err)
	}
}

func TestUserGetByToken(t *testing.T) {
	db := newTestDB(t)
	u := db.Users()

	created := createTestUser(t, u, "erin")

	got, err := u.GetByToken(context.Background(), created.Token)
	if err != nil {
		t.Fatalf("GetByToken() error = %v", err)
	}

	if got.ID != created.ID || got.Username != "erin" {
		t.Errorf("resolved wrong user: %+v", got)
	}
	// The token path must not carry credential material.
	if got.Salt != "" || got.PasswordHash != "" {
		t.Error("GetByToken() projection must exclude salt and password hash")
	}
}

func TestUserGetByToken_Unknown(t *testing.T) {
	db := newTestDB(t)
	u := db.Users()

	createTestUser(t, u, "frank")

	_, err := u.GetByToken(context.Background(), "no-such-token")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error should be ErrNotFound, got %v", err)
	}
}
