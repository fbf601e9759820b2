package storage

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ObjectKey names a user's résumé object: "<user-id>-<unix-millis>.pdf".
func ObjectKey(userID uuid.UUID, now time.Time) string {
	return fmt.Sprintf("%s-%d.pdf", userID, now.UnixMilli())
}

// KeyFromReference extracts the object key from a public reference URL.
// Returns "" when the reference does not point into bucket.
func KeyFromReference(ref, bucket string) string {
	marker := "/" + bucket + "/"
	idx := strings.LastIndex(ref, marker)
	if idx < 0 {
		return ""
	}
	key := ref[idx+len(marker):]
	if i := strings.IndexAny(key, "?#"); i >= 0 {
		key = key[:i]
	}
	if unescaped, err := url.PathUnescape(key); err == nil {
		key = unescaped
	}
	return key
}

// OwnedBy reports whether key belongs to userID.
func OwnedBy(key string, userID uuid.UUID) bool {
	return strings.HasPrefix(key, userID.String()+"-")
}

// PublicURL is the public reference of key in the configured bucket.
func (c *Client) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, url.PathEscape(key))
}
