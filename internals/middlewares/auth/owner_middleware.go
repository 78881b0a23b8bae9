package auth

import (
	"github.com/gofiber/fiber/v2"

	"linguahub_backend/internals/constants"
	helper "linguahub_backend/internals/helpers"
)

// OwnerParam compares the email path parameter against the authenticated
// email and rejects mismatches with 403 before the handler runs.
func OwnerParam(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Params(name) != AuthedEmail(c) {
			return helper.JsonError(c, fiber.StatusForbidden, constants.ErrForbidden)
		}
		return c.Next()
	}
}

// OwnerQuery is OwnerParam for a query parameter. An absent parameter
// passes through; the handler answers it with an empty result set.
func OwnerQuery(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Query(name)
		if email == "" {
			return c.Next()
		}
		if email != AuthedEmail(c) {
			return helper.JsonError(c, fiber.StatusForbidden, constants.ErrForbidden)
		}
		return c.Next()
	}
}
