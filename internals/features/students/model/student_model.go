package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"linguahub_backend/internals/constants"
)

// StudentModel is the identity record. Email is the unique key; Role
// defaults to student and is only changed by explicit promotion routes.
// Extra carries whatever opaque profile fields the client sends.
type StudentModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Name      string         `gorm:"size:100" json:"name,omitempty"`
	Email     string         `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	PhotoURL  string         `gorm:"size:512" json:"photoURL,omitempty"`
	Role      string         `gorm:"type:varchar(20);not null;default:'student'" json:"role,omitempty" validate:"omitempty,oneof=student instructor admin"`
	Extra     datatypes.JSON `gorm:"type:jsonb" json:"extra,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}

// EffectiveRole treats an absent role as student.
func (s *StudentModel) EffectiveRole() string {
	if s.Role == "" {
		return constants.RoleStudent
	}
	return s.Role
}
