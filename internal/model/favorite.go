package model

import "time"

// Favorite is a game a user has saved to their list.
//
// A user cannot favorite the same title twice: (OwnerID, Title) is unique.
// Note the key is the title, not the game ID — two catalogue entries with
// the same title count as one favorite. That is the inherited contract and
// the unique index preserves it as-is.
type Favorite struct {
	ID        string    `json:"id"        db:"id"`
	GameID    string    `json:"gameId"    db:"game_id"`
	Title     string    `json:"title"     db:"title"`
	Image     string    `json:"image"     db:"image"` // cover image URL
	OwnerID   string    `json:"owner"     db:"owner_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
