package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hash)

	// Salted: hashing the same plaintext twice yields different hashes.
	hash2, err := HashPassword("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pw1")))
}

func TestHashPassword_EmptyPlaintext(t *testing.T) {
	hash, err := HashPassword("")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, ""))
	assert.False(t, CheckPassword(hash, "notempty"))
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "Correct horse battery staple"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "anything"))
	assert.False(t, CheckPassword("", "anything"))
}
