// Package gravatar builds deterministic avatar URLs for comment authors.
package gravatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	size     = 100
	rating   = "g"
	fallback = "retro"
)

// URL returns the gravatar.com avatar URL for the given email address.
// The email is normalized (trimmed, lowercased) before hashing.
func URL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf(
		"https://www.gravatar.com/avatar/%s?s=%d&d=%s&r=%s",
		hex.EncodeToString(sum[:]), size, fallback, rating,
	)
}
