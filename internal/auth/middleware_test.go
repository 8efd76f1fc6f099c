package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sakif/gamepad-api/internal/apperror"
	"github.com/sakif/gamepad-api/internal/model"
)

// fakeUserRepo resolves tokens from an in-memory map. Only GetByToken
// matters to the middleware; the other methods exist to satisfy the
// interface.
type fakeUserRepo struct {
	byToken map[string]*model.User
}

func (f *fakeUserRepo) Create(_ context.Context, _ *model.User) error { return nil }

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	return nil, apperror.NotFound("user", email)
}

func (f *fakeUserRepo) GetByToken(_ context.Context, token string) (*model.User, error) {
	if u, ok := f.byToken[token]; ok {
		return u, nil
	}
	return nil, apperror.NotFound("user", "token")
}

// protectedProbe records whether the inner handler ran and what identity it
// saw in the context.
type protectedProbe struct {
	called bool
	user   *model.User
	hadID  bool
}

func (p *protectedProbe) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.called = true
		p.user, p.hadID = UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func newTestGate(t *testing.T) (*fakeUserRepo, *protectedProbe, http.Handler) {
	t.Helper()
	repo := &fakeUserRepo{byToken: map[string]*model.User{
		"valid-token-123": {ID: "u1", Username: "alice", Email: "alice@example.com", Token: "valid-token-123"},
	}}
	probe := &protectedProbe{}
	return repo, probe, RequireAuth(repo)(probe.handler())
}

func TestRequireAuth_ValidToken(t *testing.T) {
	_, probe, gate := newTestGate(t)

	req := httptest.NewRequest(http.MethodGet, "/favoritesOfUser", nil)
	req.Header.Set("Authorization", "Bearer valid-token-123")
	rec := httptest.NewRecorder()

	gate.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !probe.called {
		t.Fatal("inner handler was not called for a valid token")
	}
	if !probe.hadID || probe.user == nil {
		t.Fatal("no identity attached to the request context")
	}
	if probe.user.ID != "u1" || probe.user.Username != "alice" {
		t.Errorf("resolved identity = %+v, want user u1/alice", probe.user)
	}
}

func TestRequireAuth_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string // "" means no Authorization header at all
	}{
		{"missing header", ""},
		{"empty bearer", "Bearer "},
		{"wrong scheme", "Basic valid-token-123"},
		{"no scheme", "valid-token-123"},
		{"unknown token", "Bearer nobody-has-this-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, probe, gate := newTestGate(t)

			req := httptest.NewRequest(http.MethodGet, "/favoritesOfUser", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			gate.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			if probe.called {
				t.Error("inner handler must not run for a rejected request")
			}
			if body := rec.Body.String(); body != `{"error":"unauthorized"}` {
				t.Errorf("body = %q, want the standard unauthorized body", body)
			}
		})
	}
}

func TestRequireAuth_SchemeIsCaseInsensitive(t *testing.T) {
	_, probe, gate := newTestGate(t)

	req := httptest.NewRequest(http.MethodGet, "/favoritesOfUser", nil)
	req.Header.Set("Authorization", "bearer valid-token-123")
	rec := httptest.NewRecorder()

	gate.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || !probe.called {
		t.Errorf("lowercase scheme rejected: status = %d", rec.Code)
	}
}

func TestUserFromContext_EmptyContext(t *testing.T) {
	user, ok := UserFromContext(context.Background())
	if ok || user != nil {
		t.Error("UserFromContext() on an empty context should return (nil, false)")
	}
}
