package route

import (
	"github.com/gofiber/fiber/v2"

	cartRepo "linguahub_backend/internals/features/carts/repository"
	paymentController "linguahub_backend/internals/features/payments/controller"
	"linguahub_backend/internals/features/payments/repository"
	"linguahub_backend/internals/features/payments/service"
	tokenService "linguahub_backend/internals/features/tokens/service"
	authMw "linguahub_backend/internals/middlewares/auth"
)

func PaymentRoutes(app fiber.Router, payments repository.PaymentRepository, carts cartRepo.CartRepository, provider service.ChargeProvider, tokens *tokenService.TokenService) {
	ctrl := paymentController.NewPaymentController(payments, carts, provider)

	authed := authMw.AuthJWT(tokens)

	app.Get("/payments", authed, authMw.OwnerQuery("email"), ctrl.ListPayments)
	app.Post("/payments", authed, ctrl.RecordPayment)
	app.Post("/create-payment-intent", authed, ctrl.CreatePaymentIntent)
}
