package security

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewSessionToken returns an opaque, unguessable bearer token. Tokens carry
// no claims; they are only ever matched against the session store.
func NewSessionToken() (string, error) {
	buf := make([]byte, 32)

	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
