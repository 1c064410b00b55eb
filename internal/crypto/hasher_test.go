package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("pw1")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "pw1", digest)

	ok, err := h.Compare(digest, "pw1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_FreshSaltPerCall(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	// same input, different stored digests, both verify
	assert.NotEqual(t, first, second)

	for _, digest := range []string{first, second} {
		ok, err := h.Compare(digest, "same-password")
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestBcryptHasher_MismatchIsNotAnError(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("right")
	require.NoError(t, err)

	ok, err := h.Compare(digest, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	ok, err := h.Compare("not-a-bcrypt-digest", "anything")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	h := NewBcryptHasher(99).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)

	h = NewBcryptHasher(-1).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}
