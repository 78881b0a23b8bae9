package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"linguahub_backend/internals/features/classes/model"
)

// ClassRepository is the typed store adapter for the classes collection.
type ClassRepository interface {
	FindAll(ctx context.Context) ([]model.ClassModel, error)
	// FindByStatus returns classes in the given state; with sortBySeats the
	// result is ordered by available seats, highest first.
	FindByStatus(ctx context.Context, status string, sortBySeats bool) ([]model.ClassModel, error)
	FindByInstructor(ctx context.Context, email string) ([]model.ClassModel, error)
	Insert(ctx context.Context, cl *model.ClassModel) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, reason *string) (int64, error)
	UpdateSeats(ctx context.Context, id uuid.UUID, availableSeats, enrollment int) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) FindAll(ctx context.Context) ([]model.ClassModel, error) {
	var classes []model.ClassModel
	err := r.db.WithContext(ctx).Find(&classes).Error
	return classes, err
}

func (r *classRepository) FindByStatus(ctx context.Context, status string, sortBySeats bool) ([]model.ClassModel, error) {
	var classes []model.ClassModel
	tx := r.db.WithContext(ctx).Where("status = ?", status)
	if sortBySeats {
		tx = tx.Order("available_seats DESC")
	}
	err := tx.Find(&classes).Error
	return classes, err
}

func (r *classRepository) FindByInstructor(ctx context.Context, email string) ([]model.ClassModel, error) {
	var classes []model.ClassModel
	err := r.db.WithContext(ctx).Where("instructor_email = ?", email).Find(&classes).Error
	return classes, err
}

func (r *classRepository) Insert(ctx context.Context, cl *model.ClassModel) error {
	return r.db.WithContext(ctx).Create(cl).Error
}

func (r *classRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, reason *string) (int64, error) {
	fields := map[string]interface{}{"status": status}
	if reason != nil {
		fields["reason"] = *reason
	}
	tx := r.db.WithContext(ctx).Model(&model.ClassModel{}).
		Where("id = ?", id).
		Updates(fields)
	return tx.RowsAffected, tx.Error
}

func (r *classRepository) UpdateSeats(ctx context.Context, id uuid.UUID, availableSeats, enrollment int) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.ClassModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"available_seats": availableSeats,
			"enrollment":      enrollment,
		})
	return tx.RowsAffected, tx.Error
}

func (r *classRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ClassModel{})
	return tx.RowsAffected, tx.Error
}
