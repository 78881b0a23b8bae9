package auth

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"linguahub_backend/internals/constants"
	helper "linguahub_backend/internals/helpers"
)

// RoleSource resolves the stored role for an authenticated email. A record
// that does not exist or carries no role resolves to "".
type RoleSource interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// RequireRole loads the caller's record by the authenticated email and
// rejects with 403 unless its role equals the required one. Records with
// an absent role never match.
func RequireRole(roles RoleSource, required string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := AuthedEmail(c)
		if email == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, constants.ErrUnauthorized)
		}

		role, err := roles.RoleByEmail(c.UserContext(), email)
		if err != nil {
			log.Printf("[ERROR] role lookup for %s: %v", email, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		if role != required {
			return helper.JsonError(c, fiber.StatusForbidden, constants.ErrForbidden)
		}
		return c.Next()
	}
}
