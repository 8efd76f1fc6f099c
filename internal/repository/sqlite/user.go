package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/xid"
	"github.com/sakif/gamepad-api/internal/apperror"
	"github.com/sakif/gamepad-api/internal/model"
	"github.com/sakif/gamepad-api/internal/repository"
)

// UserDB implements repository.UserRepository.
type UserDB struct {
	conn *sql.DB
}

// Compile-time check that *UserDB satisfies the interface.
var _ repository.UserRepository = (*UserDB)(nil)

// Create inserts a new user, assigning ID and CreatedAt in place.
//
// No existence pre-check: the INSERT either lands or bounces off a unique
// index. Which index it bounced off decides the error — "email already used"
// vs "username already used" — so the caller can report the right conflict.
// This is atomic at the store, immune to the signup race.
func (u *UserDB) Create(ctx context.Context, user *model.User) error {
	user.ID = xid.New().String()
	user.CreatedAt = time.Now().UTC()

	_, err := u.conn.ExecContext(ctx,
		`INSERT INTO users (id, email, username, token, salt, password_hash, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Email,
		user.Username,
		user.Token,
		user.Salt,
		user.PasswordHash,
		user.CreatedAt,
	)
	if err != nil {
		if convErr, ok := conflictOn(err, "users.email", "email already used"); ok {
			return convErr
		}
		if convErr, ok := conflictOn(err, "users.username", "username already used"); ok {
			return convErr
		}
		return fmt.Errorf("sqlite: inserting user (email=%s): %w", user.Email, err)
	}

	return nil
}

// GetByEmail returns the full credential record, salt and hash included —
// this is the login path and it needs them to recompute the digest.
func (u *UserDB) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User

	err := u.conn.QueryRowContext(ctx,
		`SELECT id, email, username, token, salt, password_hash, created_at
		 FROM users WHERE email = ?`,
		email,
	).Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.Token,
		&user.Salt,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("user", email)
		}
		return nil, fmt.Errorf("sqlite: getting user by email: %w", err)
	}

	return &user, nil
}

// GetByToken resolves a bearer token to its owner.
//
// The SELECT deliberately leaves out salt and password_hash: this record
// travels with the request context through the whole handler chain, and
// credential material has no business there.
func (u *UserDB) GetByToken(ctx context.Context, token string) (*model.User, error) {
	var user model.User

	err := u.conn.QueryRowContext(ctx,
		`SELECT id, email, username, token, created_at
		 FROM users WHERE token = ?`,
		token,
	).Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.Token,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("user", "token")
		}
		return nil, fmt.Errorf("sqlite: getting user by token: %w", err)
	}

	return &user, nil
}
