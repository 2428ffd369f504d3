package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signSession(t *testing.T, secret string, expiresIn time.Duration) string {
	t.Helper()
	claims := &SessionClaims{
		Name:       "Sari",
		Role:       "kasir",
		BranchName: "Cabang Pusat",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestSessionManager_Verified(t *testing.T) {
	m := NewSessionManager("s3cret")

	claims, err := m.ParseSession(signSession(t, "s3cret", time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "user-7", claims.UserID)
	assert.Equal(t, "Cabang Pusat", claims.BranchName)

	_, err = m.ParseSession(signSession(t, "other", time.Hour))
	assert.Error(t, err)
}

func TestSessionManager_Unverified(t *testing.T) {
	m := NewSessionManager("")
	assert.False(t, m.Verifies())

	claims, err := m.ParseSession(signSession(t, "anything", time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "Sari", claims.Name)
}

func TestSessionManager_RejectsExpired(t *testing.T) {
	_, err := NewSessionManager("").ParseSession(signSession(t, "k", -time.Minute))
	assert.Error(t, err)

	_, err = NewSessionManager("k").ParseSession(signSession(t, "k", -time.Minute))
	assert.Error(t, err)
}

func TestSessionManager_RejectsEmpty(t *testing.T) {
	_, err := NewSessionManager("").ParseSession("  ")
	assert.Error(t, err)
}

func TestSessionManager_RejectsUnsignedTokens(t *testing.T) {
	claims := &SessionClaims{
		Name:       "Sari",
		BranchName: "Cabang Lain",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewSessionManager("").ParseSession(unsigned)
	assert.Error(t, err)

	_, err = NewSessionManager("k").ParseSession(unsigned)
	assert.Error(t, err)
}
