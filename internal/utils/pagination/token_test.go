package pagination

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCursor(t *testing.T) {
	for _, id := range []int{-1, 0, 1, 42, 1 << 30} {
		token := EncodeCursor(id)
		assert.NotEmpty(t, token, "Token should not be empty")

		decoded, err := DecodeCursor(token)
		require.NoError(t, err)
		assert.Equal(t, id, decoded)
	}
}

func TestDecodeCursor_Empty(t *testing.T) {
	afterID, err := DecodeCursor("")
	require.NoError(t, err)
	assert.Equal(t, -1, afterID)
}

func TestDecodeCursorError(t *testing.T) {
	// Test invalid base64
	_, err := DecodeCursor("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Test invalid format (missing separator)
	_, err = DecodeCursor(base64.URLEncoding.EncodeToString([]byte("no-separator")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	// Test wrong prefix
	_, err = DecodeCursor(base64.URLEncoding.EncodeToString([]byte("before|3")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	// Test non-numeric id
	_, err = DecodeCursor(base64.URLEncoding.EncodeToString([]byte("after|abc")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "id parse")

	// Test out of range id
	_, err = DecodeCursor(base64.URLEncoding.EncodeToString([]byte("after|-5")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}
