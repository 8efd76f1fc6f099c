package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sakif/gamepad-api/internal/apperror"
	"github.com/sakif/gamepad-api/internal/auth"
	"github.com/sakif/gamepad-api/internal/model"
	"github.com/sakif/gamepad-api/internal/repository"
)

// AccountService handles signup and login.
//
// DEPENDENCIES (injected via NewAccountService):
//   - users     repository.UserRepository → persist/look up accounts
//   - passwords *auth.PasswordService     → salted digests
//   - logger    *slog.Logger              → structured logging
type AccountService struct {
	users     repository.UserRepository
	passwords *auth.PasswordService
	logger    *slog.Logger
}

// NewAccountService creates an AccountService with all required dependencies.
func NewAccountService(
	users repository.UserRepository,
	passwords *auth.PasswordService,
	logger *slog.Logger,
) *AccountService {
	return &AccountService{
		users:     users,
		passwords: passwords,
		logger:    logger,
	}
}

// SignupParams are the fields a signup request must carry.
type SignupParams struct {
	Username string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// LoginParams are the fields a login request must carry.
type LoginParams struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// AuthResult is what both signup and login hand back to the HTTP layer:
// exactly the identity fields plus the bearer token. Salt and hash are not
// here by construction — the response type cannot leak them.
type AuthResult struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Signup registers a new account.
//
// FLOW:
//  1. Presence validation → MissingParameters (400).
//  2. Generate a salt (16 chars) and a session token (32 chars), once, here.
//     There is no re-issuance path anywhere in the system.
//  3. Digest the password with the salt.
//  4. Insert. Email/username collisions come back from the store's unique
//     indexes as conflicts — no check-then-insert, so two racing signups
//     with the same email cannot both land.
func (s *AccountService) Signup(ctx context.Context, params SignupParams) (*AuthResult, error) {
	if err := checkParams(params); err != nil {
		return nil, err
	}

	salt, err := auth.GenerateToken(auth.SaltLength)
	if err != nil {
		return nil, fmt.Errorf("service/account: generating salt: %w", err)
	}
	token, err := auth.GenerateToken(auth.TokenLength)
	if err != nil {
		return nil, fmt.Errorf("service/account: generating token: %w", err)
	}

	user := &model.User{
		Email:        params.Email,
		Username:     params.Username,
		Token:        token,
		Salt:         salt,
		PasswordHash: s.passwords.Hash(params.Password, salt),
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Conflict errors carry their own message ("email already used" /
		// "username already used") — pass them through untouched.
		return nil, fmt.Errorf("service/account: creating user: %w", err)
	}

	s.logger.Info("user signed up",
		slog.String("userID", user.ID),
		slog.String("username", user.Username),
	)

	return &AuthResult{
		ID:       user.ID,
		Token:    user.Token,
		Username: user.Username,
	}, nil
}

// Login verifies credentials and returns the stored token.
//
// Unknown email and wrong password produce the same InvalidCredentials
// error — the response never reveals which half was wrong. The stored hash
// is only ever compared against a freshly computed digest of the submitted
// password and the stored salt.
//
// NO TOKEN ROTATION:
// Login does not mint anything. The token issued at signup is the account's
// token for life; we just hand it back.
func (s *AccountService) Login(ctx context.Context, params LoginParams) (*AuthResult, error) {
	if err := checkParams(params); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.InvalidCredentials()
		}
		return nil, fmt.Errorf("service/account: looking up user: %w", err)
	}

	if !s.passwords.Verify(user.PasswordHash, params.Password, user.Salt) {
		return nil, apperror.InvalidCredentials()
	}

	s.logger.Info("user logged in",
		slog.String("userID", user.ID),
		slog.String("username", user.Username),
	)

	return &AuthResult{
		ID:       user.ID,
		Token:    user.Token,
		Username: user.Username,
	}, nil
}
