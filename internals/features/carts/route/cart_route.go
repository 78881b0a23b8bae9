package route

import (
	"github.com/gofiber/fiber/v2"

	cartController "linguahub_backend/internals/features/carts/controller"
	"linguahub_backend/internals/features/carts/repository"
	tokenService "linguahub_backend/internals/features/tokens/service"
	authMw "linguahub_backend/internals/middlewares/auth"
)

func CartRoutes(app fiber.Router, carts repository.CartRepository, tokens *tokenService.TokenService) {
	ctrl := cartController.NewCartController(carts)

	authed := authMw.AuthJWT(tokens)

	app.Get("/carts", authed, authMw.OwnerQuery("email"), ctrl.ListCart)
	app.Post("/carts", ctrl.AddCartItem)
	app.Delete("/carts/:id", ctrl.DeleteCartItem)
}
