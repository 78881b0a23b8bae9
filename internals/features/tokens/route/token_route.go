package route

import (
	"github.com/gofiber/fiber/v2"

	tokenController "linguahub_backend/internals/features/tokens/controller"
	"linguahub_backend/internals/features/tokens/service"
)

func TokenRoutes(app fiber.Router, tokens *service.TokenService) {
	ctrl := tokenController.NewTokenController(tokens)

	app.Post("/token", ctrl.IssueToken)
}
