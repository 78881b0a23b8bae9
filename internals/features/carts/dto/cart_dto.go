package dto

import "github.com/google/uuid"

// AddCartItemRequest is the POST /carts body.
type AddCartItemRequest struct {
	ClassID   uuid.UUID `json:"classId" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	ClassName string    `json:"className"`
	Price     float64   `json:"price" validate:"gte=0"`
}
