package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidCursor is returned when a cursor token cannot be decoded.
var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor identifies the last row of a page in a collection ordered by
// (created_at DESC, id DESC). The encoded form is opaque to callers and is
// passed back verbatim to resume the listing.
type Cursor struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
}

// Encode serializes the cursor into an opaque URL-safe token.
func (c Cursor) Encode() string {
	raw, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

// Decode parses an opaque token produced by Encode. An empty token yields a
// nil cursor (first page).
func Decode(token string) (*Cursor, error) {
	if token == "" {
		return nil, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	return &c, nil
}

// PageInfo describes the resumption state of a page fetch.
//
// HasMore is a heuristic: it is true whenever the page came back full, so a
// collection whose remaining count exactly equals the page size reports
// HasMore=true and the following page is empty. Callers must treat an empty
// page as the true end.
type PageInfo struct {
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
}

// NewPageInfo builds the PageInfo for a page of n rows fetched with the given
// page size, where last is the cursor of the final row (ignored when n == 0).
func NewPageInfo(last Cursor, n, pageSize int) PageInfo {
	info := PageInfo{HasMore: n == pageSize && pageSize > 0}
	if n > 0 {
		info.NextCursor = last.Encode()
	}
	return info
}
