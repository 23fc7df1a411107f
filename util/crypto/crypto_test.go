package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPasswordAsBcrypt("password123")
	assert.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPasswordHash(hash, "password123"))
	assert.False(t, CheckPasswordHash(hash, "password124"))
	assert.False(t, CheckPasswordHash("not-a-hash", "password123"))
}
