package dto

import (
	"github.com/google/uuid"

	helper "linguahub_backend/internals/helpers"
)

// RecordPaymentRequest is the POST /payments body sent after the provider
// confirms the charge.
type RecordPaymentRequest struct {
	Email         string      `json:"email" validate:"required,email"`
	CartIDs       []uuid.UUID `json:"cartIds" validate:"required,min=1"`
	TransactionID string      `json:"transactionId" validate:"required"`
	Amount        float64     `json:"amount" validate:"gte=0"`
}

// RecordPaymentResponse echoes both store results so the client can see
// the payment insert and the cart batch update outcomes.
type RecordPaymentResponse struct {
	InsertResult helper.InsertAck `json:"insertResult"`
	UpdateResult helper.UpdateAck `json:"updateResult"`
}

// CreateIntentRequest is the POST /create-payment-intent body.
type CreateIntentRequest struct {
	Price float64 `json:"price" validate:"gt=0"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
