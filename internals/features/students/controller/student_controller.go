package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"linguahub_backend/internals/constants"
	"linguahub_backend/internals/features/students/dto"
	"linguahub_backend/internals/features/students/model"
	"linguahub_backend/internals/features/students/repository"
	helper "linguahub_backend/internals/helpers"
)

var validate = validator.New()

type StudentController struct {
	Students repository.StudentRepository
}

func NewStudentController(students repository.StudentRepository) *StudentController {
	return &StudentController{Students: students}
}

// GET /students (admin)
func (sc *StudentController) ListStudents(c *fiber.Ctx) error {
	students, err := sc.Students.FindAll(c.UserContext())
	if err != nil {
		log.Println("[ERROR] ListStudents:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, students)
}

// POST /students
// Idempotent on email: a repeat POST with an existing email is a no-op
// that reports "already exists" instead of erroring.
func (sc *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	existing, err := sc.Students.FindByEmail(c.UserContext(), req.Email)
	if err != nil {
		log.Println("[ERROR] CreateStudent lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if existing != nil {
		return helper.JsonOK(c, fiber.Map{"message": "user already exists"})
	}

	student := model.StudentModel{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
		Extra:    req.Extra,
	}
	if err := sc.Students.Insert(c.UserContext(), &student); err != nil {
		log.Println("[ERROR] CreateStudent insert:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, helper.InsertAck{InsertedID: student.ID.String()})
}

// GET /students/admin/:email (auth + owner)
func (sc *StudentController) CheckAdmin(c *fiber.Ctx) error {
	student, err := sc.Students.FindByEmail(c.UserContext(), c.Params("email"))
	if err != nil {
		log.Println("[ERROR] CheckAdmin:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	isAdmin := student != nil && student.EffectiveRole() == constants.RoleAdmin
	return helper.JsonOK(c, dto.AdminCheckResponse{Admin: isAdmin})
}

// GET /students/instructor/:email (auth + owner)
func (sc *StudentController) CheckInstructor(c *fiber.Ctx) error {
	student, err := sc.Students.FindByEmail(c.UserContext(), c.Params("email"))
	if err != nil {
		log.Println("[ERROR] CheckInstructor:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	isInstructor := student != nil && student.EffectiveRole() == constants.RoleInstructor
	return helper.JsonOK(c, dto.InstructorCheckResponse{Instructor: isInstructor})
}

// PATCH /students/admin/:id (admin)
func (sc *StudentController) PromoteAdmin(c *fiber.Ctx) error {
	return sc.promote(c, constants.RoleAdmin)
}

// PATCH /students/instructor/:id (admin)
func (sc *StudentController) PromoteInstructor(c *fiber.Ctx) error {
	return sc.promote(c, constants.RoleInstructor)
}

func (sc *StudentController) promote(c *fiber.Ctx, role string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	modified, err := sc.Students.UpdateRole(c.UserContext(), id, role)
	if err != nil {
		log.Printf("[ERROR] promote %s: %v", role, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, helper.UpdateAck{MatchedCount: modified, ModifiedCount: modified})
}

// DELETE /students/:id (admin)
func (sc *StudentController) DeleteStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	deleted, err := sc.Students.Delete(c.UserContext(), id)
	if err != nil {
		log.Println("[ERROR] DeleteStudent:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, helper.DeleteAck{DeletedCount: deleted})
}
