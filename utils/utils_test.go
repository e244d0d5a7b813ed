package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsString(t *testing.T) {
	assert.True(t, ContainsString([]string{"a", "b"}, "a"))
	assert.False(t, ContainsString([]string{}, "a"))
	assert.False(t, ContainsString([]string{"a", "b"}, "c"))
}

func TestRandomAlphabetString(t *testing.T) {
	s := RandomAlphabetString(16)
	assert.Len(t, s, 16)
	for _, r := range s {
		assert.True(t, (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'))
	}
}

func TestTextToMd5Hash(t *testing.T) {
	h1, err := TextToMd5Hash("hello")
	require.NoError(t, err)
	h2, err := TextToMd5Hash("hello")
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 32)

	h3, err := TextToMd5Hash("world")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3)
}

func TestGetUrlExtNameWithDot(t *testing.T) {
	assert.Equal(t, ".png", GetUrlExtNameWithDot("avatar.png"))
	assert.Equal(t, ".jpg", GetUrlExtNameWithDot("a/b/c.jpg"))
	assert.Equal(t, "", GetUrlExtNameWithDot("noext"))
}

func TestIsDuplicateKeyError(t *testing.T) {
	assert.False(t, IsDuplicateKeyError(nil))
	assert.True(t, IsDuplicateKeyError(errImpl(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`)))
	assert.False(t, IsDuplicateKeyError(errImpl("connection refused")))
}

type errImpl string

func (e errImpl) Error() string { return string(e) }
