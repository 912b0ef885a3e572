package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{ID: "11111111-2222-3333-4444-555555555555", Email: "user@example.com"}
}

func TestTokenManager_IssueAndParse(t *testing.T) {
	tm := NewTokenManager("test-secret", "helpdesk-api", "helpdesk-clients", time.Hour)
	user := testUser()

	token, exp, err := tm.Issue(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, user.Email, claims.Email)
	assert.NotEmpty(t, claims.ID, "jti should be set")
	assert.Equal(t, "helpdesk-api", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, exp.Unix(), claims.ExpiresAt.Time.Unix())
}

func TestTokenManager_FreshTokenID(t *testing.T) {
	tm := NewTokenManager("test-secret", "iss", "aud", time.Hour)
	user := testUser()

	first, _, err := tm.Issue(user)
	require.NoError(t, err)
	second, _, err := tm.Issue(user)
	require.NoError(t, err)

	c1, err := tm.Parse(first)
	require.NoError(t, err)
	c2, err := tm.Parse(second)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	tm := &TokenManager{
		secret:   []byte("test-secret"),
		issuer:   "iss",
		audience: "aud",
		ttl:      -time.Minute,
	}

	token, _, err := tm.Issue(testUser())
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsTampered(t *testing.T) {
	tm := NewTokenManager("test-secret", "iss", "aud", time.Hour)
	token, _, err := tm.Issue(testUser())
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = tm.Parse(tampered)
	assert.Error(t, err)
}

func TestTokenManager_RejectsWrongKeyIssuerAudience(t *testing.T) {
	issuing := NewTokenManager("test-secret", "iss", "aud", time.Hour)
	token, _, err := issuing.Issue(testUser())
	require.NoError(t, err)

	cases := map[string]*TokenManager{
		"wrong secret":   NewTokenManager("other-secret", "iss", "aud", time.Hour),
		"wrong issuer":   NewTokenManager("test-secret", "other", "aud", time.Hour),
		"wrong audience": NewTokenManager("test-secret", "iss", "other", time.Hour),
	}
	for name, verifier := range cases {
		_, err := verifier.Parse(token)
		assert.Error(t, err, name)
	}
}
