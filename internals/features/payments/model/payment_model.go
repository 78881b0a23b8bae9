package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PaymentModel records a completed charge. It is immutable after insert;
// its creation triggers the paid-marker batch update on the referenced
// cart items.
type PaymentModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Email         string         `gorm:"size:255;not null;index" json:"email"`
	CartIDs       pq.StringArray `gorm:"type:text[]" json:"cartIds"`
	TransactionID string         `gorm:"size:255;not null" json:"transactionId"`
	Amount        float64        `gorm:"not null" json:"amount"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
