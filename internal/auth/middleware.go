package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ops-console/internal/domain"
	"github.com/spec-kit/ops-console/internal/session"
	apperrors "github.com/spec-kit/ops-console/pkg/util"
)

const sessionKey = "auth_session"

// Middleware validates bearer tokens and restores the Session they name.
type Middleware struct {
	tokens   *TokenManager
	sessions session.Store
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, sessions session.Store) *Middleware {
	return &Middleware{tokens: tokens, sessions: sessions}
}

// Handle enforces authentication for protected routes. A missing, expired or
// malformed stored session all resolve to the same unauthenticated outcome.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	sess, err := m.sessions.Load(c.Context(), claims.SessionID)
	if err != nil {
		return apperrors.MapError(err)
	}
	if sess == nil {
		return apperrors.NewUnauthorized("session expired")
	}

	c.Locals(sessionKey, sess)
	return c.Next()
}

// SessionFromContext retrieves the authenticated session.
func SessionFromContext(c *fiber.Ctx) (*domain.Session, bool) {
	val := c.Locals(sessionKey)
	if val == nil {
		return nil, false
	}
	sess, ok := val.(*domain.Session)
	return sess, ok
}

// RequireRoles gates a route group on the view's allowed-role set. The
// decision is recomputed per request from the restored Session.
func RequireRoles(allowed ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, _ := SessionFromContext(c)
		switch Authorize(sess, allowed...) {
		case Granted:
			return c.Next()
		case DeniedNoSession:
			return apperrors.NewUnauthorized("authentication required")
		default:
			return apperrors.NewForbidden("insufficient role")
		}
	}
}

// RequireView gates a route group using the fixed route table.
func RequireView(view View) fiber.Handler {
	return RequireRoles(AllowedRoles(view)...)
}
