// Copyright (c) 2026 DevOpsCorp. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/devopscorp/auth-api/internal/platform/sec"
)

/*
TestPasswordHasher_RoundTrip hashes with the minimum cost (tests should not
burn CPU on production work factors) and verifies both match and mismatch.
*/
func TestPasswordHasher_RoundTrip(t *testing.T) {
	hasher := sec.NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, hasher.Verify("secret1", hash))
	assert.False(t, hasher.Verify("secret2", hash))
	assert.False(t, hasher.Verify("", hash))
	assert.False(t, hasher.Verify("secret1", "not-a-bcrypt-hash"))
}

/*
TestPasswordHasher_Cost checks that the configured work factor is embedded in
the generated hash, and that out-of-range costs fall back to the default.
*/
func TestPasswordHasher_Cost(t *testing.T) {
	hasher := sec.NewPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	fallback := sec.NewPasswordHasher(99)
	hash, err = fallback.Hash("secret1")
	require.NoError(t, err)

	cost, err = bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

/*
TestPasswordHasher_SaltedHashes confirms two hashes of the same password
differ (bcrypt embeds a random salt) yet both verify.
*/
func TestPasswordHasher_SaltedHashes(t *testing.T) {
	hasher := sec.NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("secret1")
	require.NoError(t, err)
	second, err := hasher.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("secret1", first))
	assert.True(t, hasher.Verify("secret1", second))
}
