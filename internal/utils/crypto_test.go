package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	t.Run("hash and verify", func(t *testing.T) {
		hash, err := hasher.Hash("Password123")
		require.NoError(t, err)
		assert.NotEqual(t, "Password123", hash)

		assert.True(t, hasher.Verify(hash, "Password123"))
		assert.False(t, hasher.Verify(hash, "password123"))
		assert.False(t, hasher.Verify(hash, ""))
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		h1, err := hasher.Hash("Password123")
		require.NoError(t, err)
		h2, err := hasher.Hash("Password123")
		require.NoError(t, err)
		assert.NotEqual(t, h1, h2)
	})

	t.Run("garbage hash never verifies", func(t *testing.T) {
		assert.False(t, hasher.Verify("not-a-bcrypt-hash", "Password123"))
	})

	t.Run("out-of-range cost falls back to default", func(t *testing.T) {
		h := NewPasswordHasher(100)
		assert.Equal(t, bcrypt.DefaultCost, h.cost)

		h = NewPasswordHasher(-1)
		assert.Equal(t, bcrypt.DefaultCost, h.cost)
	})
}

func TestGenerateCode(t *testing.T) {
	t.Run("length and charset", func(t *testing.T) {
		code, err := GenerateCode(6)
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, c := range code {
			assert.GreaterOrEqual(t, c, '0')
			assert.LessOrEqual(t, c, '9')
		}
	})

	t.Run("codes vary", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 20; i++ {
			code, err := GenerateCode(6)
			require.NoError(t, err)
			seen[code] = true
		}
		// 20 draws from a million-value space colliding down to one value
		// would mean the generator is broken
		assert.Greater(t, len(seen), 1)
	})
}
