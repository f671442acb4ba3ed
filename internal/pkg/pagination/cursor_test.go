package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	orig := Cursor{
		CreatedAt: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
		ID:        "0195a7b2-1111-7def-8abc-1234567890ab",
	}

	token := orig.Encode()
	require.NotEmpty(t, token)

	decoded, err := Decode(token)
	require.NoError(t, err)
	require.NotNil(t, decoded)
	assert.True(t, orig.CreatedAt.Equal(decoded.CreatedAt))
	assert.Equal(t, orig.ID, decoded.ID)
}

func TestDecodeEmptyToken(t *testing.T) {
	c, err := Decode("")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestDecodeGarbage(t *testing.T) {
	for _, token := range []string{"!!!", "not-a-cursor", "YWJjZGVm"} {
		_, err := Decode(token)
		assert.Error(t, err, "token %q should not decode", token)
	}
}

func TestNewPageInfo(t *testing.T) {
	last := Cursor{CreatedAt: time.Now(), ID: "abc"}

	t.Run("full page reports has_more", func(t *testing.T) {
		info := NewPageInfo(last, 50, 50)
		assert.True(t, info.HasMore)
		assert.NotEmpty(t, info.NextCursor)
	})

	t.Run("short page is terminal", func(t *testing.T) {
		info := NewPageInfo(last, 12, 50)
		assert.False(t, info.HasMore)
		assert.NotEmpty(t, info.NextCursor)
	})

	t.Run("empty page has no cursor", func(t *testing.T) {
		info := NewPageInfo(Cursor{}, 0, 50)
		assert.False(t, info.HasMore)
		assert.Empty(t, info.NextCursor)
	})
}
