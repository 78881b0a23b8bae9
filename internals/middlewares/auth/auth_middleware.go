package auth

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"linguahub_backend/internals/constants"
	tokenService "linguahub_backend/internals/features/tokens/service"
	helper "linguahub_backend/internals/helpers"
)

// Locals keys hydrated by AuthJWT for downstream guards/handlers.
const (
	LocEmail  = "email"
	LocClaims = "jwt_claims"
)

// AuthJWT extracts the bearer token from the Authorization header and
// verifies it. Missing, malformed, badly signed and expired tokens all
// short-circuit with 401; on success the claims email lands in Locals.
func AuthJWT(tokens *tokenService.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		}
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, constants.ErrUnauthorized)
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			log.Printf("[WARN] token verify failed: %v", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, constants.ErrUnauthorized)
		}

		c.Locals(LocEmail, claims.Email)
		c.Locals(LocClaims, claims)
		return c.Next()
	}
}

// AuthedEmail returns the email hydrated by AuthJWT, or "" when the route
// was reached without the auth guard.
func AuthedEmail(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocEmail).(string); ok {
		return v
	}
	return ""
}
