package server

import (
	"crypto/rand"
	"encoding/base64"
)

// stateLength is the byte length of the CSRF state token generated per
// login attempt
const stateLength = 32

// generateRandomString creates a random base64url string
func generateRandomString(length int) string {
	b := make([]byte, length)
	rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
