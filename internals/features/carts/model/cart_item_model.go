package model

import (
	"time"

	"github.com/google/uuid"
)

// InfoPaid is written into Info once a payment covering the item
// completes.
const InfoPaid = "paid"

// CartItemModel joins a student email to a class they intend to enroll
// in. Items are deleted explicitly or superseded by a payment that marks
// them paid.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	ClassID   uuid.UUID `gorm:"type:uuid;not null" json:"classId" validate:"required"`
	Email     string    `gorm:"size:255;not null;index" json:"email" validate:"required,email"`
	ClassName string    `gorm:"size:200" json:"className,omitempty"`
	Price     float64   `gorm:"not null;default:0" json:"price"`
	Info      *string   `gorm:"size:50" json:"info,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CartItemModel) TableName() string {
	return "carts"
}

// Paid reports whether the item has been covered by a payment.
func (ci *CartItemModel) Paid() bool {
	return ci.Info != nil && *ci.Info == InfoPaid
}
