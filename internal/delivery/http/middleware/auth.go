package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/station-booking/internal/pkg/errors"
	"github.com/station-booking/internal/pkg/token"
	"github.com/station-booking/internal/pkg/utils"
)

const (
	localsUserID  = "auth_user_id"
	localsIsAdmin = "auth_is_admin"
)

type Auth struct {
	tokens *token.Manager
}

func NewAuth(tokens *token.Manager) *Auth {
	return &Auth{tokens: tokens}
}

// Required rejects requests without a valid Bearer access token and stores
// the caller identity in request locals.
func (a *Auth) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		claims, err := a.tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return utils.SendError(c, errors.ErrInvalidToken)
		}
		if claims.TokenType != token.TypeAccess {
			return utils.SendError(c, errors.ErrInvalidToken)
		}

		c.Locals(localsUserID, claims.UserID)
		c.Locals(localsIsAdmin, claims.IsAdmin)
		return c.Next()
	}
}

// AdminOrReadOnly lets any authenticated caller read but restricts writes to
// administrators. Must run after Required.
func (a *Auth) AdminOrReadOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}
		if !IsAdmin(c) {
			return utils.SendError(c, errors.ErrForbidden)
		}
		return c.Next()
	}
}

// AdminOnly restricts the route to administrators. Must run after Required.
func (a *Auth) AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IsAdmin(c) {
			return utils.SendError(c, errors.ErrForbidden)
		}
		return c.Next()
	}
}

func UserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(localsUserID).(int64)
	return id
}

func IsAdmin(c *fiber.Ctx) bool {
	isAdmin, _ := c.Locals(localsIsAdmin).(bool)
	return isAdmin
}
