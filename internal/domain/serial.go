package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// NewSerial returns a ticket serial: 8 uppercase hex characters derived from
// 4 cryptographically random bytes. Collisions are not pre-checked; the
// storage-level uniqueness constraint is the backstop.
func NewSerial() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate serial: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}
