// Package gravatar derives deterministic avatar URLs from email addresses.
package gravatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
)

// URL returns the Gravatar URL for the given email: 200px, PG-rated, with the
// "mystery man" fallback. The email is trimmed and lowercased before hashing,
// as Gravatar expects.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	hash := hex.EncodeToString(sum[:])

	query := url.Values{}
	query.Set("s", "200")
	query.Set("r", "pg")
	query.Set("d", "mm")

	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?%s", hash, query.Encode())
}
