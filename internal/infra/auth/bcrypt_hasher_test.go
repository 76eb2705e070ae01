package auth

import (
	"strings"
	"testing"

	"cardportal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(cost int) *bcryptHasher {
	cfg := &config.Config{}
	cfg.Auth.BcryptCost = cost

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("correct horse battery")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	// Salted: same input, different hash.
	again, err := hasher.Hash("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher(bcrypt.MinCost)
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_CostFallback(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, newTestHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, newTestHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, 12, newTestHasher(12).cost)
}

func TestBcryptHasher_TooLong(t *testing.T) {
	hasher := newTestHasher(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("a", 73))

	assert.Error(t, err)
}
