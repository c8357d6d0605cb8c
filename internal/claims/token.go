package claims

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// tokenBytes gives 256 bits of entropy per token, double the 128-bit floor
// the resolve endpoints rely on as their credential strength.
const tokenBytes = 32

// newToken mints one unguessable URL-safe token.
func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// newTokenPair mints the accept/reject pair for a claim. The two values are
// independent draws; uniqueness across all items is enforced at write time
// by the database indexes, with the caller retrying on collision.
func newTokenPair() (accept, reject string, err error) {
	if accept, err = newToken(); err != nil {
		return "", "", err
	}
	if reject, err = newToken(); err != nil {
		return "", "", err
	}
	return accept, reject, nil
}
