package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMw "linguahub_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the ambient middleware stack in order.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
}
