package auth

import (
	"crypto/rand"
	"fmt"
)

// Two random-string lengths are used at signup: a short one for the password
// salt and a longer one for the session token. Both are generated exactly
// once per user — there is no re-issuance path, a login hands back the token
// stored at signup.
const (
	SaltLength  = 16
	TokenLength = 32
)

// tokenAlphabet is the character set for generated strings: URL-safe,
// header-safe, 64 symbols so each character carries 6 bits of entropy.
// A 32-char token is 192 bits — far beyond collision or guessing range.
const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// GenerateToken returns a cryptographically random string of exactly length
// characters drawn from tokenAlphabet.
//
// crypto/rand (not math/rand) is mandatory here: the token IS the
// credential — possession alone grants access — so it must be unpredictable.
//
// The alphabet has 64 symbols, so mapping each random byte with a modulo
// introduces no bias (256 % 64 == 0).
func GenerateToken(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("auth: token length must be positive, got %d", length)
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("auth: reading random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = tokenAlphabet[int(b)%len(tokenAlphabet)]
	}
	return string(buf), nil
}
