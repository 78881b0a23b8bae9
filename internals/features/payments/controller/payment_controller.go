package controller

import (
	"log"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"

	cartRepo "linguahub_backend/internals/features/carts/repository"
	"linguahub_backend/internals/features/payments/dto"
	"linguahub_backend/internals/features/payments/model"
	"linguahub_backend/internals/features/payments/repository"
	"linguahub_backend/internals/features/payments/service"
	helper "linguahub_backend/internals/helpers"
)

var validate = validator.New()

type PaymentController struct {
	Payments repository.PaymentRepository
	Carts    cartRepo.CartRepository
	Provider service.ChargeProvider
}

func NewPaymentController(payments repository.PaymentRepository, carts cartRepo.CartRepository, provider service.ChargeProvider) *PaymentController {
	return &PaymentController{Payments: payments, Carts: carts, Provider: provider}
}

// POST /payments (auth)
// Two sequential writes, not atomic: insert the payment, then batch-mark
// the referenced cart items paid. A failure between them leaves the
// payment recorded with carts unmarked; that outcome is reported
// explicitly, never hidden.
func (pc *PaymentController) RecordPayment(c *fiber.Ctx) error {
	var req dto.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	cartIDs := make([]string, 0, len(req.CartIDs))
	for _, id := range req.CartIDs {
		cartIDs = append(cartIDs, id.String())
	}

	payment := model.PaymentModel{
		Email:         req.Email,
		CartIDs:       pq.StringArray(cartIDs),
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
	}
	if err := pc.Payments.Insert(c.UserContext(), &payment); err != nil {
		log.Println("[ERROR] RecordPayment insert:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	marked, err := pc.Carts.MarkPaid(c.UserContext(), req.CartIDs)
	if err != nil {
		log.Printf("[ERROR] RecordPayment cart update after insert %s: %v", payment.ID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError,
			"payment "+payment.ID.String()+" recorded but cart items were not marked paid")
	}

	return helper.JsonOK(c, dto.RecordPaymentResponse{
		InsertResult: helper.InsertAck{InsertedID: payment.ID.String()},
		UpdateResult: helper.UpdateAck{MatchedCount: marked, ModifiedCount: marked},
	})
}

// GET /payments?email= (auth + owner): payment history, newest first.
func (pc *PaymentController) ListPayments(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return helper.JsonOK(c, []model.PaymentModel{})
	}
	payments, err := pc.Payments.FindByEmail(c.UserContext(), email)
	if err != nil {
		log.Println("[ERROR] ListPayments:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, payments)
}

// POST /create-payment-intent (auth)
func (pc *PaymentController) CreatePaymentIntent(c *fiber.Ctx) error {
	var req dto.CreateIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// provider takes minor units
	amount := int64(math.Round(req.Price * 100))
	secret, err := pc.Provider.CreatePaymentIntent(c.UserContext(), amount, "usd")
	if err != nil {
		log.Println("[ERROR] CreatePaymentIntent:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, dto.CreateIntentResponse{ClientSecret: secret})
}
