// Package auth — password hashing, token generation, and the bearer-token
// middleware.
//
// PASSWORD SCHEME:
// Each user gets a random salt at signup. We store the salt and the
// PBKDF2-SHA256 digest of the password, never the plaintext. Login recomputes
// the digest with the stored salt and compares — the stored hash is only ever
// compared to a freshly computed digest.
//
// WHY PBKDF2 AND NOT A PLAIN SHA-256 OF password+salt?
// Both are deterministic salted digests, but a single SHA-256 round is cheap
// enough to brute-force on a GPU. PBKDF2 runs the hash hundreds of thousands
// of times, which keeps the contract (pure, deterministic, one-way) while
// making offline cracking expensive.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/pbkdf2"
)

// defaultIterations is the PBKDF2 work factor for new digests.
// 210k iterations of SHA-256 is the current OWASP recommendation.
const defaultIterations = 210_000

// digestLen is the derived key length in bytes.
const digestLen = 32

// PasswordService derives and verifies salted password digests.
//
// It's a struct (not free functions) so the iteration count can be injected:
// tests use a tiny count to stay fast, production uses the default.
type PasswordService struct {
	iterations int
}

// NewPasswordService returns a PasswordService with the default work factor.
func NewPasswordService() *PasswordService {
	return &PasswordService{iterations: defaultIterations}
}

// NewPasswordServiceForTest returns a PasswordService with a reduced
// iteration count. Only for tests — a low count is far too weak for
// real credentials.
func NewPasswordServiceForTest(iterations int) *PasswordService {
	return &PasswordService{iterations: iterations}
}

// Hash derives the digest for a password and salt.
//
// Deterministic: the same (password, salt) pair always yields the same
// digest, which is what lets login verify against the stored value.
// The output is base64 (standard, unpadded) of the raw derived key.
func (p *PasswordService) Hash(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), p.iterations, digestLen, sha256.New)
	return base64.RawStdEncoding.EncodeToString(key)
}

// Verify reports whether password+salt derives the stored digest.
//
// The comparison is constant-time. PBKDF2 itself dominates the runtime, but
// subtle.ConstantTimeCompare removes any doubt about the equality check
// leaking a prefix match.
func (p *PasswordService) Verify(storedHash, password, salt string) bool {
	candidate := p.Hash(password, salt)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(storedHash)) == 1
}
