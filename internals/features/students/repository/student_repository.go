package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"linguahub_backend/internals/features/students/model"
)

// StudentRepository is the typed store adapter for the students
// collection, one method per access pattern the routes use. No business
// logic lives here; store errors are surfaced unchanged.
type StudentRepository interface {
	FindAll(ctx context.Context) ([]model.StudentModel, error)
	FindByEmail(ctx context.Context, email string) (*model.StudentModel, error)
	Insert(ctx context.Context, s *model.StudentModel) error
	UpdateRole(ctx context.Context, id uuid.UUID, role string) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	// RoleByEmail backs the role guard; a missing record is "" not an error.
	RoleByEmail(ctx context.Context, email string) (string, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) FindAll(ctx context.Context) ([]model.StudentModel, error) {
	var students []model.StudentModel
	err := r.db.WithContext(ctx).Find(&students).Error
	return students, err
}

func (r *studentRepository) FindByEmail(ctx context.Context, email string) (*model.StudentModel, error) {
	var s model.StudentModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *studentRepository) Insert(ctx context.Context, s *model.StudentModel) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *studentRepository) UpdateRole(ctx context.Context, id uuid.UUID, role string) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.StudentModel{}).
		Where("id = ?", id).
		Update("role", role)
	return tx.RowsAffected, tx.Error
}

func (r *studentRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.StudentModel{})
	return tx.RowsAffected, tx.Error
}

func (r *studentRepository) RoleByEmail(ctx context.Context, email string) (string, error) {
	s, err := r.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if s == nil {
		return "", nil
	}
	return s.EffectiveRole(), nil
}
