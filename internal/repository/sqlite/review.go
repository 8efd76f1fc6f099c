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

// ReviewDB implements repository.ReviewRepository.
type ReviewDB struct {
	conn *sql.DB
}

var _ repository.ReviewRepository = (*ReviewDB)(nil)

// Create inserts a review, assigning ID and CreatedAt in place.
// The UNIQUE(owner_id, game_id) index enforces one review per user per game.
func (r *ReviewDB) Create(ctx context.Context, review *model.Review) error {
	review.ID = xid.New().String()
	review.CreatedAt = time.Now().UTC()

	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO reviews (id, game_id, title, review, owner_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		review.ID,
		review.GameID,
		review.Title,
		review.Review,
		review.OwnerID,
		review.CreatedAt,
	)
	if err != nil {
		if convErr, ok := conflictOn(err, "reviews.owner_id, reviews.game_id", "you already wrote a review on this game"); ok {
			return convErr
		}
		return fmt.Errorf("sqlite: inserting review (gameID=%s): %w", review.GameID, err)
	}

	return nil
}

// ListByGame returns all reviews for a game, joining users so each row
// carries the reviewer's username. The store's natural order is the order —
// the contract guarantees none.
func (r *ReviewDB) ListByGame(ctx context.Context, gameID string) ([]model.Review, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT rv.id, rv.game_id, rv.title, rv.review, rv.owner_id, u.username, rv.created_at
		 FROM reviews rv
		 JOIN users u ON u.id = rv.owner_id
		 WHERE rv.game_id = ?`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing reviews for game %s: %w", gameID, err)
	}
	defer rows.Close()

	reviews := []model.Review{}
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(
			&rv.ID,
			&rv.GameID,
			&rv.Title,
			&rv.Review,
			&rv.OwnerID,
			&rv.OwnerName,
			&rv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning review row: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating review rows: %w", err)
	}

	return reviews, nil
}
