package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk/internal/auth"
	"github.com/spec-kit/helpdesk/internal/config"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:             "test-secret",
		Issuer:                "helpdesk-api",
		Audience:              "helpdesk-clients",
		AccessTokenTTLMinutes: 60,
		CookieName:            "access_token",
	}
}

func newTestAuthService() (*AuthService, *memUserRepo) {
	users := newMemUserRepo()
	svc := NewAuthService(testAuthConfig(), AuthDependencies{UserRepo: users})
	return svc, users
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	return domainErr.HTTPStatus
}

func TestRegister(t *testing.T) {
	svc, _ := newTestAuthService()

	user, token, exp, err := svc.Register(context.Background(), "new@example.com", "long-enough-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.IsAdmin)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	// The stored hash verifies against the plaintext and is never the plaintext.
	assert.NotEqual(t, "long-enough-pass", user.PasswordHash)
	ok, err := auth.VerifyPassword("long-enough-pass", user.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)

	claims, err := svc.TokenManager().Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	_, _, _, err := svc.Register(context.Background(), "dup@example.com", "long-enough-pass")
	require.NoError(t, err)

	_, _, _, err = svc.Register(context.Background(), "dup@example.com", "another-password")
	assert.Equal(t, http.StatusConflict, statusOf(t, err))
}

func TestLogin(t *testing.T) {
	svc, _ := newTestAuthService()

	registered, _, _, err := svc.Register(context.Background(), "login@example.com", "long-enough-pass")
	require.NoError(t, err)

	user, token, _, err := svc.Login(context.Background(), "login@example.com", "long-enough-pass")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)
}

func TestLogin_UniformFailure(t *testing.T) {
	svc, _ := newTestAuthService()

	_, _, _, err := svc.Register(context.Background(), "known@example.com", "long-enough-pass")
	require.NoError(t, err)

	_, _, _, wrongPass := svc.Login(context.Background(), "known@example.com", "wrong-password")
	_, _, _, unknownEmail := svc.Login(context.Background(), "nobody@example.com", "whatever-password")

	// Same status and same message for both, so responses cannot be used to
	// probe which emails exist.
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, wrongPass))
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, unknownEmail))
	assert.Equal(t,
		apperrors.ToDomainError(wrongPass).Message,
		apperrors.ToDomainError(unknownEmail).Message,
	)
}

func TestLogout_RevokesToken(t *testing.T) {
	users := newMemUserRepo()
	revoker := &stubRevoker{revoked: make(map[string]time.Time)}
	svc := NewAuthService(testAuthConfig(), AuthDependencies{UserRepo: users, Revoker: revoker})

	_, token, _, err := svc.Register(context.Background(), "out@example.com", "long-enough-pass")
	require.NoError(t, err)

	claims, err := svc.TokenManager().Parse(token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), claims))
	_, ok := revoker.revoked[claims.ID]
	assert.True(t, ok, "jti should be denylisted")
}

type stubRevoker struct {
	revoked map[string]time.Time
}

func (s *stubRevoker) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	s.revoked[tokenID] = expiresAt
	return nil
}

func (s *stubRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := s.revoked[tokenID]
	return ok, nil
}
