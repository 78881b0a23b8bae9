package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"linguahub_backend/internals/features/carts/model"
)

// CartRepository is the typed store adapter for the carts collection.
type CartRepository interface {
	FindByEmail(ctx context.Context, email string) ([]model.CartItemModel, error)
	Insert(ctx context.Context, item *model.CartItemModel) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	// MarkPaid batch-stamps the paid marker onto the given items.
	MarkPaid(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) FindByEmail(ctx context.Context, email string) ([]model.CartItemModel, error) {
	var items []model.CartItemModel
	err := r.db.WithContext(ctx).Where("email = ?", email).Find(&items).Error
	return items, err
}

func (r *cartRepository) Insert(ctx context.Context, item *model.CartItemModel) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CartItemModel{})
	return tx.RowsAffected, tx.Error
}

func (r *cartRepository) MarkPaid(ctx context.Context, ids []uuid.UUID) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.CartItemModel{}).
		Where("id IN ?", ids).
		Update("info", model.InfoPaid)
	return tx.RowsAffected, tx.Error
}
