package dto

// CreateClassRequest is the POST /classes body. Status is not accepted
// from the client; every submission starts pending.
type CreateClassRequest struct {
	Name            string  `json:"name" validate:"required"`
	ImageURL        string  `json:"image"`
	InstructorName  string  `json:"instructorName"`
	InstructorEmail string  `json:"instructorEmail" validate:"required,email"`
	AvailableSeats  int     `json:"availableSeats" validate:"gte=0"`
	Price           float64 `json:"price" validate:"gte=0"`
}

// DenyClassRequest carries the denial reason.
type DenyClassRequest struct {
	Reason string `json:"reason"`
}

// UpdateSeatsRequest is the PATCH /classes/:id body.
type UpdateSeatsRequest struct {
	AvailableSeats int `json:"availableSeats" validate:"gte=0"`
	Enrollment     int `json:"enrollment" validate:"gte=0"`
}
