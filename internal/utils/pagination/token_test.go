package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCursor(t *testing.T) {
	c := Cursor{
		CreatedAt: time.Date(2024, 5, 15, 14, 30, 45, 123456789, time.UTC),
		ID:        "5f0c1e1e-0000-4000-8000-000000000001",
	}

	token := EncodeCursor(c)
	assert.NotEmpty(t, token)
	assert.NotContains(t, token, "=", "token should be usable as a query parameter without escaping")

	decoded, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.True(t, c.CreatedAt.Equal(decoded.CreatedAt))
	assert.Equal(t, c.ID, decoded.ID)
}

func TestEncodeCursor_NormalizesToUTC(t *testing.T) {
	local := time.Date(2024, 5, 15, 9, 0, 0, 0, time.FixedZone("UTC-5", -5*3600))
	decoded, err := DecodeCursor(EncodeCursor(Cursor{CreatedAt: local, ID: "a"}))
	require.NoError(t, err)
	assert.True(t, local.Equal(decoded.CreatedAt))
	assert.Equal(t, time.UTC, decoded.CreatedAt.Location())
}

func TestDecodeCursorError(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		contains string
	}{
		{name: "not base64", token: "this is not base64!", contains: "base64 decode"},
		{name: "missing separator", token: base64.RawURLEncoding.EncodeToString([]byte("2024-05-15T00:00:00Z")), contains: "split"},
		{name: "missing id", token: base64.RawURLEncoding.EncodeToString([]byte("2024-05-15T00:00:00Z|")), contains: "split"},
		{name: "bad time", token: base64.RawURLEncoding.EncodeToString([]byte("notadate|e1")), contains: "created_at parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCursor(tt.token)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestNextToken(t *testing.T) {
	base := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	rows := []Cursor{
		{CreatedAt: base.Add(3 * time.Hour), ID: "c"},
		{CreatedAt: base.Add(2 * time.Hour), ID: "b"},
		{CreatedAt: base.Add(1 * time.Hour), ID: "a"},
	}
	identity := func(c Cursor) Cursor { return c }

	page, next := NextToken(rows, 2, identity)
	assert.Len(t, page, 2)
	require.NotNil(t, next)
	decoded, err := DecodeCursor(*next)
	require.NoError(t, err)
	assert.Equal(t, "b", decoded.ID)

	page, next = NextToken(rows, 3, identity)
	assert.Len(t, page, 3)
	assert.Nil(t, next)
}
