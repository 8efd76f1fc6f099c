// Package model defines the data structures used throughout the application.
package model

import "time"

// User represents a registered account.
//
// Authentication is classic salted-hash: we store a random per-user Salt and
// the digest of password+salt, never the plaintext. The Token is the opaque
// bearer credential issued once at signup — a later login returns the same
// stored token, there is no rotation or expiry in this design.
//
// Salt, PasswordHash and Token are immutable after signup.
//
// WHY `json:"-"` ON SALT AND HASH?
// Credential material must never leave the server. Marking the fields with
// json:"-" means even a careless writeJSON(w, user) cannot leak them.
type User struct {
	ID           string    `json:"id"        db:"id"`
	Email        string    `json:"email"     db:"email"`    // unique, case-sensitive as stored
	Username     string    `json:"username"  db:"username"` // unique
	Token        string    `json:"-"         db:"token"`    // opaque bearer credential
	Salt         string    `json:"-"         db:"salt"`
	PasswordHash string    `json:"-"         db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
