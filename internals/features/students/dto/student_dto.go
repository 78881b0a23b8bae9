package dto

import "gorm.io/datatypes"

// CreateStudentRequest is the POST /students body. Anything beyond the
// known fields rides along in Extra untouched.
type CreateStudentRequest struct {
	Name     string         `json:"name"`
	Email    string         `json:"email" validate:"required,email"`
	PhotoURL string         `json:"photoURL"`
	Extra    datatypes.JSON `json:"extra"`
}

// AdminCheckResponse and InstructorCheckResponse answer the whoami routes.
type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}

type InstructorCheckResponse struct {
	Instructor bool `json:"instructor"`
}
