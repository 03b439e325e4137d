package jwt

import (
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	m := NewManager("unit-test-secret", 3600, "sysadmin")

	token, err := m.Generate(7, "张三", []string{"/api/user_list", "/api/user_save"}, "jti-001")
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "张三", claims.Username)
	assert.Equal(t, []string{"/api/user_list", "/api/user_save"}, claims.Permissions)
	assert.Equal(t, "jti-001", claims.JTI)
	assert.Equal(t, "sysadmin", claims.Issuer)
}

func TestParse_Expired(t *testing.T) {
	m := NewManager("unit-test-secret", -1, "sysadmin")

	token, err := m.Generate(7, "张三", nil, "jti-002")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, jwtlib.ErrTokenExpired)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", 3600, "sysadmin").Generate(7, "张三", nil, "jti-003")
	require.NoError(t, err)

	_, err = NewManager("secret-b", 3600, "sysadmin").Parse(token)
	assert.ErrorIs(t, err, jwtlib.ErrTokenSignatureInvalid)
}

func TestParse_Garbage(t *testing.T) {
	m := NewManager("unit-test-secret", 3600, "sysadmin")
	_, err := m.Parse("not.a.token")
	assert.Error(t, err)
}
