package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenBytes is the entropy of a session token. 12 bytes (96 bits) rendered
// as 24 hex characters; uniqueness is probabilistic, not enforced.
const tokenBytes = 12

// TokenLength is the length of a rendered session token in characters.
const TokenLength = tokenBytes * 2

// GenerateToken returns a fresh opaque session token.
func GenerateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
