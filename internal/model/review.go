package model

import "time"

// Review is a user's text review of a game. One review per user per game:
// (OwnerID, GameID) is unique. Reviews are write-once — there is no update
// or delete path.
//
// OwnerID references users(id). OwnerName is the reviewer's username,
// denormalised into listings (via a join) so clients can display the author
// without a second request. It is never used as the ownership key.
type Review struct {
	ID        string    `json:"id"        db:"id"`
	GameID    string    `json:"gameId"    db:"game_id"`
	Title     string    `json:"title"     db:"title"`
	Review    string    `json:"review"    db:"review"`
	OwnerID   string    `json:"-"         db:"owner_id"`
	OwnerName string    `json:"owner"     db:"-"`
	CreatedAt time.Time `json:"date"      db:"created_at"`
}
