package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	digest, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", digest)

	assert.True(t, CheckPassword("secret123", digest))
	assert.False(t, CheckPassword("wrong", digest))
	assert.False(t, CheckPassword("", digest))
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	a, err := HashPassword("secret123")
	require.NoError(t, err)
	b, err := HashPassword("secret123")
	require.NoError(t, err)

	// bcrypt embeds a fresh salt per call
	assert.NotEqual(t, a, b)
	assert.True(t, CheckPassword("secret123", a))
	assert.True(t, CheckPassword("secret123", b))
}
