package repository

import (
	"context"

	"gorm.io/gorm"

	"linguahub_backend/internals/features/payments/model"
)

// PaymentRepository is the typed store adapter for the payments
// collection.
type PaymentRepository interface {
	Insert(ctx context.Context, p *model.PaymentModel) error
	FindByEmail(ctx context.Context, email string) ([]model.PaymentModel, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Insert(ctx context.Context, p *model.PaymentModel) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *paymentRepository) FindByEmail(ctx context.Context, email string) ([]model.PaymentModel, error) {
	var payments []model.PaymentModel
	err := r.db.WithContext(ctx).Where("email = ?", email).Order("created_at DESC").Find(&payments).Error
	return payments, err
}
