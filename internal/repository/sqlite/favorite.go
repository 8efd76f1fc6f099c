package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/xid"
	"github.com/sakif/gamepad-api/internal/model"
	"github.com/sakif/gamepad-api/internal/repository"
)

// FavoriteDB implements repository.FavoriteRepository.
type FavoriteDB struct {
	conn *sql.DB
}

var _ repository.FavoriteRepository = (*FavoriteDB)(nil)

// Create inserts a favorite, assigning ID and CreatedAt in place.
// The UNIQUE(owner_id, title) index turns a double-save into a conflict.
func (f *FavoriteDB) Create(ctx context.Context, fav *model.Favorite) error {
	fav.ID = xid.New().String()
	fav.CreatedAt = time.Now().UTC()

	_, err := f.conn.ExecContext(ctx,
		`INSERT INTO favorites (id, game_id, title, image, owner_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		fav.ID,
		fav.GameID,
		fav.Title,
		fav.Image,
		fav.OwnerID,
		fav.CreatedAt,
	)
	if err != nil {
		if convErr, ok := conflictOn(err, "favorites.owner_id, favorites.title", "Favorite already saved"); ok {
			return convErr
		}
		return fmt.Errorf("sqlite: inserting favorite (title=%s): %w", fav.Title, err)
	}

	return nil
}

// ListByOwner returns every favorite belonging to ownerID. No rows is an
// empty slice, not an error.
func (f *FavoriteDB) ListByOwner(ctx context.Context, ownerID string) ([]model.Favorite, error) {
	rows, err := f.conn.QueryContext(ctx,
		`SELECT id, game_id, title, image, owner_id, created_at
		 FROM favorites WHERE owner_id = ?`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing favorites for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	favorites := []model.Favorite{}
	for rows.Next() {
		var fav model.Favorite
		if err := rows.Scan(
			&fav.ID,
			&fav.GameID,
			&fav.Title,
			&fav.Image,
			&fav.OwnerID,
			&fav.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning favorite row: %w", err)
		}
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating favorite rows: %w", err)
	}

	return favorites, nil
}

// DeleteByTitle removes the favorite matching (ownerID, title), reporting
// how many rows went away. Zero is a legitimate answer — the operation is
// idempotent.
func (f *FavoriteDB) DeleteByTitle(ctx context.Context, ownerID, title string) (int64, error) {
	res, err := f.conn.ExecContext(ctx,
		`DELETE FROM favorites WHERE owner_id = ? AND title = ?`,
		ownerID, title,
	)
	if err != nil {
		return 0, fmt.Errorf("sqlite: deleting favorite (title=%s): %w", title, err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("sqlite: reading deleted row count: %w", err)
	}
	return count, nil
}
