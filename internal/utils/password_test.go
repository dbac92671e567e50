package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("password")
	require.NoError(t, err)
	assert.NotEqual(t, "password", hash)
	assert.True(t, IsBcryptHash(hash))

	assert.NoError(t, CheckPassword("password", hash))
	assert.Error(t, CheckPassword("not_password", hash))
}

func TestHashPasswordUniqueSalt(t *testing.T) {
	h1, err := HashPassword("password")
	require.NoError(t, err)
	h2, err := HashPassword("password")
	require.NoError(t, err)

	// bcrypt每次使用不同盐值
	assert.NotEqual(t, h1, h2)
}

func TestIsBcryptHash(t *testing.T) {
	assert.False(t, IsBcryptHash("password"))
	assert.False(t, IsBcryptHash(""))
	assert.True(t, IsBcryptHash("$2a$10$abcdefghijklmnopqrstuv"))
	assert.True(t, IsBcryptHash("$2b$12$abcdefghijklmnopqrstuv"))
}
