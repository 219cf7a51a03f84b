package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mohammad-ishtiaque/Agro-clima-api/internal/auth/domain"
	autherror "github.com/mohammad-ishtiaque/Agro-clima-api/internal/errors"
)

const currentUserKey = "currentUser"

// RequireAuth validates the bearer token and loads the account into the
// request locals. Missing header, bad token and deleted account all return
// the same 401.
func (h *AuthHandler) RequireAuth(c *fiber.Ctx) error {
	tokenString, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if !ok || tokenString == "" {
		return errorResponse(c, autherror.ErrUnauthenticated)
	}

	user, err := h.userService.Authenticate(c.Context(), tokenString)
	if err != nil {
		return errorResponse(c, err)
	}

	c.Locals(currentUserKey, user)

	return c.Next()
}

// RequireVerified rejects unverified accounts. Must run after RequireAuth.
func (h *AuthHandler) RequireVerified(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil {
		return errorResponse(c, autherror.ErrUnauthenticated)
	}
	if !user.IsVerified {
		return errorResponse(c, autherror.ErrForbidden)
	}

	return c.Next()
}

// CurrentUser returns the account loaded by RequireAuth, or nil.
func CurrentUser(c *fiber.Ctx) *domain.User {
	user, _ := c.Locals(currentUserKey).(*domain.User)
	return user
}
