package pkg

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateRandomString returns n securely generated random bytes as a
// URL-safe, unpadded base64 string. Used for session tokens.
func GenerateRandomString(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
