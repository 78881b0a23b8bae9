package model

import (
	"time"

	"github.com/google/uuid"
)

// Class approval workflow states. A class starts pending and is moved to
// approved or denied by an admin; re-submission after denial is out of
// scope.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

type ClassModel struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Name            string    `gorm:"size:200;not null" json:"name" validate:"required"`
	ImageURL        string    `gorm:"size:512" json:"image,omitempty"`
	InstructorName  string    `gorm:"size:100" json:"instructorName,omitempty"`
	InstructorEmail string    `gorm:"size:255;not null;index" json:"instructorEmail" validate:"required,email"`
	AvailableSeats  int       `gorm:"not null;default:0" json:"availableSeats" validate:"gte=0"`
	Enrollment      int       `gorm:"not null;default:0" json:"enrollment" validate:"gte=0"`
	Price           float64   `gorm:"not null;default:0" json:"price" validate:"gte=0"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Reason          *string   `gorm:"size:512" json:"reason,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ClassModel) TableName() string {
	return "classes"
}
