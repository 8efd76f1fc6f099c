package sqlite

import (
	"context"
	"testing"

	"github.com/sakif/gamepad-api/internal/model"
)

// newTestDB returns a DB backed by an in-memory SQLite database that lives
// for the duration of the test.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// createTestUser inserts a user with credential fields filled in, failing
// the test on error. Token/salt/hash are synthetic — repository tests don't
// care about real crypto.
func createTestUser(t *testing.T, u *UserDB, username string) *model.User {
	t.Helper()
	user := &model.User{
		Email:        username + "@example.com",
		Username:     username,
		Token:        "token-for-" + username,
		Salt:         "salt-for-" + username,
		PasswordHash: "hash-for-" + username,
	}
	if err := u.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user %q: %v", username, err)
	}
	return user
}
