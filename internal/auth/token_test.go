package auth

import (
	"strings"
	"testing"
)

func TestGenerateToken_Length(t *testing.T) {
	for _, length := range []int{1, SaltLength, TokenLength, 64} {
		token, err := GenerateToken(length)
		if err != nil {
			t.Fatalf("GenerateToken(%d) error = %v", length, err)
		}
		if len(token) != length {
			t.Errorf("GenerateToken(%d) returned %d characters", length, len(token))
		}
	}
}

func TestGenerateToken_InvalidLength(t *testing.T) {
	for _, length := range []int{0, -1} {
		if _, err := GenerateToken(length); err == nil {
			t.Errorf("GenerateToken(%d) should return an error", length)
		}
	}
}

func TestGenerateToken_Alphabet(t *testing.T) {
	token, err := GenerateToken(256)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	for _, c := range token {
		if !strings.ContainsRune(tokenAlphabet, c) {
			t.Errorf("GenerateToken() produced character %q outside the alphabet", c)
		}
	}
}

func TestGenerateToken_Unique(t *testing.T) {
	// 32 chars over a 64-symbol alphabet is 192 bits of entropy — any
	// collision in a small sample means the generator is broken.
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token, err := GenerateToken(TokenLength)
		if err != nil {
			t.Fatalf("GenerateToken() error = %v", err)
		}
		if seen[token] {
			t.Fatalf("GenerateToken() produced a duplicate: %q", token)
		}
		seen[token] = true
	}
}

func TestGenerateToken_SaltShorterThanToken(t *testing.T) {
	// The contract uses two lengths: a short salt, a longer session token.
	if SaltLength >= TokenLength {
		t.Errorf("SaltLength (%d) should be shorter than TokenLength (%d)", SaltLength, TokenLength)
	}
}
