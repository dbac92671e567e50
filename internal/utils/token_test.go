package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenKey(t *testing.T) {
	key, err := GenerateTokenKey()
	require.NoError(t, err)
	assert.Len(t, key, 40)
	assert.Regexp(t, "^[0-9a-f]{40}$", key)
}

func TestGenerateTokenKeyUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key, err := GenerateTokenKey()
		require.NoError(t, err)
		assert.False(t, seen[key], "令牌值不应重复")
		seen[key] = true
	}
}
