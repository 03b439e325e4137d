package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVerify_RoundTrip(t *testing.T) {
	hashed, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.False(t, IsLegacyPlain(hashed))
	assert.LessOrEqual(t, len(hashed), 64)

	assert.True(t, VerifyPassword(hashed, "s3cret!"))
	assert.False(t, VerifyPassword(hashed, "wrong"))
}

// 存量明文口令按等值比较
func TestVerify_LegacyPlain(t *testing.T) {
	assert.True(t, IsLegacyPlain("123456"))
	assert.True(t, VerifyPassword("123456", "123456"))
	assert.False(t, VerifyPassword("123456", "654321"))
}

func TestVerify_EmptyStored(t *testing.T) {
	assert.False(t, VerifyPassword("", "anything"))
}
