package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/sakif/gamepad-api/internal/model"
	"github.com/sakif/gamepad-api/internal/repository"
)

// contextKey is an unexported type for context keys in this package.
// A package-private type means only this package can read or write the
// authenticated user in the context — no collisions with other packages.
type contextKey string

const userKey contextKey = "user"

// RequireAuth enforces bearer-token authentication on protected routes.
//
// It reads the Authorization header, resolves the token to its owning user
// via the repository (GetByToken — the projection excludes salt and hash),
// and stores the user in the request context. A missing, malformed, or
// unknown token halts the chain with 401.
//
// THE TOKEN IS THE WHOLE MECHANISM:
// There is no signature to verify and no expiry to check. The token is an
// opaque string whose only meaning is "a row in the users table holds it".
// Possession equals identity; the database lookup is the validation.
func RequireAuth(users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				unauthorized(w)
				return
			}

			user, err := users.GetByToken(r.Context(), token)
			if err != nil {
				// Unknown token and storage failure both end the request
				// here; neither may attach an identity.
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated user set by RequireAuth.
// Returns (nil, false) on routes the middleware did not run on.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok && user != nil
}

// bearerToken extracts the credential from "Authorization: Bearer <token>".
// The scheme comparison is case-insensitive per RFC 7235; the token itself
// is case-sensitive.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

// unauthorized writes the 401 body directly. The middleware runs before the
// handler layer, so it doesn't go through writeError — the body shape is the
// same {"error": ...} contract.
func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
}
