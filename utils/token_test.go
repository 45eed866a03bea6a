package authUtils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePairAndParse(t *testing.T) {
	m := NewTokenManager("secret", time.Hour, 24*time.Hour)

	pair, err := m.GeneratePair("64f1c2", "citizen", "64f1aa")
	require.NoError(t, err)

	claims, err := m.Parse(pair.Token, AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "64f1c2", claims.Subject)
	assert.Equal(t, "citizen", claims.Role)
	assert.Equal(t, "64f1aa", claims.MunicipalityID)

	_, err = m.Parse(pair.Token, RefreshToken)
	assert.ErrorIs(t, err, ErrTokenWrongType)

	_, err = m.Parse(pair.RefreshToken, RefreshToken)
	assert.NoError(t, err)
}

func TestParseRejectsExpiredAndForeignTokens(t *testing.T) {
	m := NewTokenManager("secret", time.Minute, time.Hour)
	issuedAt := time.Now().Add(-2 * time.Minute)
	m.now = func() time.Time { return issuedAt }
	pair, err := m.GeneratePair("user", "citizen", "")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(pair.Token, AccessToken)
	assert.ErrorIs(t, err, ErrTokenExpired)

	other := NewTokenManager("other-secret", time.Hour, time.Hour)
	fresh, err := other.GeneratePair("user", "citizen", "")
	require.NoError(t, err)
	_, err = m.Parse(fresh.Token, AccessToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = m.Parse("not-a-jwt", AccessToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestGenerateOTP(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		assert.Regexp(t, `^[A-Z0-9]{6}$`, code)
		seen[code] = true
	}
	assert.Greater(t, len(seen), 1)

	password, err := TemporaryPassword()
	require.NoError(t, err)
	assert.Len(t, password, 12)
}
