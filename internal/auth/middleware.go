package auth

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/repository"
)

const principalKey = "auth_principal"

// TokenRevoker answers whether a token id has been denylisted at logout.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Principal represents the authenticated caller. User is re-read from the
// store on every request, so the admin flag is never trusted from the token.
type Principal struct {
	User   *domain.User
	Claims *Claims
}

// AuthMiddleware extracts the access token from its cookie and loads the
// principal. It never rejects on its own: requests with a missing, invalid,
// expired or revoked token simply proceed unauthenticated and the route
// guards decide.
type AuthMiddleware struct {
	tokens     *TokenManager
	users      repository.UserRepository
	revoked    TokenRevoker
	cookieName string
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, users repository.UserRepository, revoked TokenRevoker, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users, revoked: revoked, cookieName: cookieName}
}

// Handle attaches the principal for downstream handlers when the cookie
// carries a valid token.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	tokenStr := c.Cookies(m.cookieName)
	if tokenStr == "" {
		return c.Next()
	}

	claims, err := m.tokens.Parse(tokenStr)
	if err != nil {
		return c.Next()
	}

	if m.revoked != nil {
		if revoked, err := m.revoked.IsRevoked(c.Context(), claims.ID); err != nil || revoked {
			return c.Next()
		}
	}

	user, err := m.users.GetByID(c.Context(), claims.Subject)
	if err != nil {
		return c.Next()
	}

	c.Locals(principalKey, &Principal{User: user, Claims: claims})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
