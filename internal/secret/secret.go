// Package secret generates JWT signing secrets.
package secret

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const secretBytes = 32

// Generate returns a base64-encoded secret built from 32 bytes of
// cryptographically secure randomness.
func Generate() (string, error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}
