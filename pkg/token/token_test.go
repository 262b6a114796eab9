package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testIdentity() Identity {
	return Identity{
		ID:       7,
		Username: "alice01",
		Email:    "a@b.com",
		Role:     Role{Name: "user", Permissions: []string{"requests:read"}},
	}
}

func TestNewManager_RejectsShortSecret(t *testing.T) {
	_, err := NewManager("short", time.Hour)
	assert.Error(t, err)
}

func TestIssueAndParse_RoundTripsIdentity(t *testing.T) {
	m, err := NewManager(testSecret, time.Hour)
	require.NoError(t, err)

	tok, expiresAt, err := m.Issue(testIdentity())
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := m.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, testIdentity(), claims.Identity)
	assert.NotEmpty(t, claims.TokenID)
}

func TestIssue_RenewedTokenKeepsIdentity(t *testing.T) {
	m, err := NewManager(testSecret, time.Hour)
	require.NoError(t, err)

	first, _, err := m.Issue(testIdentity())
	require.NoError(t, err)
	claims, err := m.Parse(first)
	require.NoError(t, err)

	renewed, _, err := m.Issue(claims.Identity)
	require.NoError(t, err)
	assert.NotEqual(t, first, renewed)

	renewedClaims, err := m.Parse(renewed)
	require.NoError(t, err)
	assert.Equal(t, claims.Identity, renewedClaims.Identity)
}

func TestParse_Expired(t *testing.T) {
	m, err := NewManager(testSecret, time.Minute)
	require.NoError(t, err)

	past := time.Now().Add(-2 * time.Hour)
	m.timeFunc = func() time.Time { return past }
	tok, _, err := m.Issue(testIdentity())
	require.NoError(t, err)

	m.timeFunc = time.Now
	_, err = m.Parse(tok)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestParse_WrongSecret(t *testing.T) {
	m, err := NewManager(testSecret, time.Hour)
	require.NoError(t, err)
	other, err := NewManager("ffffffffffffffffffffffffffffffff", time.Hour)
	require.NoError(t, err)

	tok, _, err := other.Issue(testIdentity())
	require.NoError(t, err)

	_, err = m.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	m, err := NewManager(testSecret, time.Hour)
	require.NoError(t, err)

	_, err = m.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
