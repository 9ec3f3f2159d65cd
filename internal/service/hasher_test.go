package service

import (
	"strings"
	"testing"

	"github.com/MKhiriev/skillscope/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordHasher(t *testing.T) {
	h, err := NewPasswordHasher(config.ClientApp{PasswordHashing: config.HashingBcrypt, BcryptCost: 5})
	require.NoError(t, err)
	assert.Equal(t, &bcryptHasher{cost: 5}, h)

	h, err = NewPasswordHasher(config.ClientApp{})
	require.NoError(t, err)
	assert.Equal(t, &bcryptHasher{cost: bcrypt.DefaultCost}, h)

	h, err = NewPasswordHasher(config.ClientApp{PasswordHashing: config.HashingPlain})
	require.NoError(t, err)
	assert.Equal(t, plainHasher{}, h)

	_, err = NewPasswordHasher(config.ClientApp{PasswordHashing: "md5"})
	assert.Error(t, err)
}

func TestBcryptHasher(t *testing.T) {
	h := &bcryptHasher{cost: bcrypt.MinCost}

	hash, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.True(t, isBcryptHash(hash))
	assert.True(t, h.Verify(hash, "secret1"))
	assert.False(t, h.Verify(hash, "secret2"))
	assert.False(t, h.NeedsRehash(hash))

	// legacy plaintext records still verify and ask for an upgrade
	assert.True(t, h.Verify("secret1", "secret1"))
	assert.False(t, h.Verify("secret1", "Secret1"))
	assert.True(t, h.NeedsRehash("secret1"))

	// a different cost is upgraded too
	assert.True(t, (&bcryptHasher{cost: bcrypt.MinCost + 1}).NeedsRehash(hash))

	_, err = h.Hash(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestPlainHasher(t *testing.T) {
	h := plainHasher{}

	stored, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.Equal(t, "secret1", stored)
	assert.True(t, h.Verify(stored, "secret1"))
	assert.False(t, h.Verify(stored, "secret"))
	assert.False(t, h.NeedsRehash(stored))

	// stored values are compared as entered, whatever they look like
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	require.True(t, isBcryptHash(string(hash)))
	assert.True(t, h.Verify(string(hash), string(hash)))
	assert.False(t, h.Verify(string(hash), "secret1"))
}
