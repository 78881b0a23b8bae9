package constants

// Role values stored on the student record. A record without a role is a
// plain student.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// Guard error messages
const (
	ErrUnauthorized = "Unauthorized Access"
	ErrForbidden    = "Forbidden Access"
)

// AllRoles lists every role a student record may carry.
var AllRoles = []string{
	RoleStudent,
	RoleInstructor,
	RoleAdmin,
}
