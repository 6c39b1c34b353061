package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// Cursor marks the last row of a page in a list ordered by (created_at DESC, id DESC).
type Cursor struct {
	CreatedAt time.Time
	ID        string
}

// EncodeCursor turns c into an opaque, URL-safe token.
func EncodeCursor(c Cursor) string {
	tokenStr := c.CreatedAt.UTC().Format(timeFormat) + "|" + c.ID
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeCursor parses a token produced by EncodeCursor.
func DecodeCursor(token string) (Cursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	createdAtStr, id, ok := strings.Cut(string(decodedBytes), "|")
	if !ok || id == "" {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}
	createdAt, err := time.Parse(timeFormat, createdAtStr)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}
	return Cursor{CreatedAt: createdAt, ID: id}, nil
}

// NextToken returns the token for the page after a fetch of limit+1 rows, or nil when
// fetched holds no more than limit rows. cursorOf extracts the cursor of the last row kept.
func NextToken[T any](fetched []T, limit int, cursorOf func(T) Cursor) ([]T, *string) {
	if len(fetched) <= limit {
		return fetched, nil
	}
	page := fetched[:limit]
	token := EncodeCursor(cursorOf(page[limit-1]))
	return page, &token
}
