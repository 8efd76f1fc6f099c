// Package sqlite implements the repository interfaces on SQLite.
//
// The spec treats the store as a generic persistent document collection with
// indexed lookups; an embedded SQLite file fits that shape with zero
// infrastructure. We use modernc.org/sqlite (pure Go translation of SQLite,
// no CGo) so the binary cross-compiles everywhere Go runs.
//
// UNIQUE INDEXES ARE THE CONCURRENCY STORY:
// Every uniqueness rule in the system — email, username, token,
// (owner, title) for favorites, (owner, game) for reviews — lives in the
// schema below. Application code never does check-then-insert; it inserts
// and treats the constraint violation as the duplicate signal. That closes
// the race window two concurrent signups would otherwise slip through.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/sakif/gamepad-api/internal/apperror"

	// Side-effect import: registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

// DB wraps the sql.DB connection pool and hands out the per-entity
// repositories. The server owns the lifecycle: New at startup, Close on
// shutdown.
type DB struct {
	conn *sql.DB
}

// New opens (or creates) the SQLite database at dbPath and runs migrations.
// Use ":memory:" for tests.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// One connection for the whole pool. SQLite serialises writes anyway;
	// a single connection turns driver-level SQLITE_BUSY into ordinary
	// queueing, and makes ":memory:" databases work — every pool
	// connection would otherwise get its own empty in-memory DB.
	conn.SetMaxOpenConns(1)

	// sql.Open is lazy; Ping forces a real connection so a bad path fails
	// here instead of on the first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL lets reads proceed while a write is in flight — needed for a
	// server handling concurrent requests.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	// Foreign keys are off by default in SQLite; favorites and reviews
	// reference users(id).
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the connection pool, flushing the WAL.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Users returns the user repository backed by this database.
func (db *DB) Users() *UserDB { return &UserDB{conn: db.conn} }

// Favorites returns the favorites repository backed by this database.
func (db *DB) Favorites() *FavoriteDB { return &FavoriteDB{conn: db.conn} }

// Reviews returns the review repository backed by this database.
func (db *DB) Reviews() *ReviewDB { return &ReviewDB{conn: db.conn} }

// migrate creates the schema. CREATE TABLE IF NOT EXISTS keeps it idempotent.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			username      TEXT NOT NULL UNIQUE,
			token         TEXT NOT NULL UNIQUE,
			salt          TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	// Favorite uniqueness is keyed on title, not game_id — inherited
	// contract, kept as-is.
	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS favorites (
			id         TEXT PRIMARY KEY,
			game_id    TEXT NOT NULL DEFAULT '',
			title      TEXT NOT NULL,
			image      TEXT NOT NULL,
			owner_id   TEXT NOT NULL REFERENCES users(id),
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(owner_id, title)
		);
		CREATE INDEX IF NOT EXISTS idx_favorites_owner ON favorites(owner_id);
	`)
	if err != nil {
		return fmt.Errorf("creating favorites table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS reviews (
			id         TEXT PRIMARY KEY,
			game_id    TEXT NOT NULL,
			title      TEXT NOT NULL,
			review     TEXT NOT NULL,
			owner_id   TEXT NOT NULL REFERENCES users(id),
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(owner_id, game_id)
		);
		CREATE INDEX IF NOT EXISTS idx_reviews_game ON reviews(game_id);
	`)
	if err != nil {
		return fmt.Errorf("creating reviews table: %w", err)
	}

	return nil
}

// conflictOn translates a driver error into the domain conflict error when it
// is a violation of the named unique index, identified by its
// "table.column" (or "table.col1, table.col2") spelling in the driver
// message. Any other error passes through untouched.
//
// modernc.org/sqlite reports constraint failures as
// "constraint failed: UNIQUE constraint failed: users.email (2067)" — the
// driver does not expose a stable typed error through database/sql, so the
// repo layer matches the message text, in one place, here.
func conflictOn(err error, indexColumns, message string) (error, bool) {
	if err == nil {
		return nil, false
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed: "+indexColumns) {
		return apperror.Conflict(message), true
	}
	return err, false
}
