package bcrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	b := NewWithCost(4)

	hash, err := b.HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, b.ComparePassword(hash, "secret123"))
	assert.Error(t, b.ComparePassword(hash, "wrong-password"))
}
