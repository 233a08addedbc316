package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/litreview/internal/domain"
	"github.com/spec-kit/litreview/internal/repository"
	"github.com/spec-kit/litreview/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	User   *domain.User
	Claims *Claims
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens    *TokenManager
	users     repository.UserRepository
	blocklist TokenBlocklist
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, users repository.UserRepository, blocklist TokenBlocklist) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users, blocklist: blocklist}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return errorutil.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return errorutil.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return errorutil.NewUnauthorized("invalid token")
	}

	if m.blocklist != nil {
		revoked, err := m.blocklist.IsRevoked(c.UserContext(), claims.ID)
		if err != nil {
			return errorutil.NewInternalError(err)
		}
		if revoked {
			return errorutil.NewUnauthorized("token revoked")
		}
	}

	user, err := m.users.GetByID(c.UserContext(), claims.UserID())
	if err != nil {
		if errorutil.IsNoRows(err) {
			return errorutil.NewUnauthorized("user not found")
		}
		return errorutil.NewInternalError(err)
	}

	c.Locals(principalKey, &Principal{User: user, Claims: claims})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	principal, ok := c.Locals(principalKey).(*Principal)
	return principal, ok && principal != nil && principal.User != nil
}

// MustPrincipal returns the principal or an UNAUTHORIZED error.
func MustPrincipal(c *fiber.Ctx) (*Principal, error) {
	principal, ok := PrincipalFromContext(c)
	if !ok {
		return nil, errorutil.NewUnauthorized("authentication required")
	}
	return principal, nil
}
