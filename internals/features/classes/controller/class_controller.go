package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"linguahub_backend/internals/features/classes/dto"
	"linguahub_backend/internals/features/classes/model"
	"linguahub_backend/internals/features/classes/repository"
	helper "linguahub_backend/internals/helpers"
)

var validate = validator.New()

type ClassController struct {
	Classes repository.ClassRepository
}

func NewClassController(classes repository.ClassRepository) *ClassController {
	return &ClassController{Classes: classes}
}

// GET /classes (admin)
func (cc *ClassController) ListClasses(c *fiber.Ctx) error {
	classes, err := cc.Classes.FindAll(c.UserContext())
	if err != nil {
		log.Println("[ERROR] ListClasses:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, classes)
}

// GET /classes/approved
func (cc *ClassController) ListApproved(c *fiber.Ctx) error {
	return cc.listByStatus(c, model.StatusApproved, false)
}

// GET /classes/approved/sorted returns approved classes, most seats first.
func (cc *ClassController) ListApprovedSorted(c *fiber.Ctx) error {
	return cc.listByStatus(c, model.StatusApproved, true)
}

// GET /classes/pending
func (cc *ClassController) ListPending(c *fiber.Ctx) error {
	return cc.listByStatus(c, model.StatusPending, false)
}

func (cc *ClassController) listByStatus(c *fiber.Ctx, status string, sorted bool) error {
	classes, err := cc.Classes.FindByStatus(c.UserContext(), status, sorted)
	if err != nil {
		log.Printf("[ERROR] listByStatus %s: %v", status, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, classes)
}

// GET /classes/:email (auth + instructor + owner)
func (cc *ClassController) ListByInstructor(c *fiber.Ctx) error {
	classes, err := cc.Classes.FindByInstructor(c.UserContext(), c.Params("email"))
	if err != nil {
		log.Println("[ERROR] ListByInstructor:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, classes)
}

// POST /classes (auth + instructor)
func (cc *ClassController) CreateClass(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	class := model.ClassModel{
		Name:            req.Name,
		ImageURL:        req.ImageURL,
		InstructorName:  req.InstructorName,
		InstructorEmail: req.InstructorEmail,
		AvailableSeats:  req.AvailableSeats,
		Price:           req.Price,
		Status:          model.StatusPending,
	}
	if err := cc.Classes.Insert(c.UserContext(), &class); err != nil {
		log.Println("[ERROR] CreateClass:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, helper.InsertAck{InsertedID: class.ID.String()})
}

// PATCH /classes/approved/:id (admin)
func (cc *ClassController) ApproveClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}
	modified, err := cc.Classes.UpdateStatus(c.UserContext(), id, model.StatusApproved, nil)
	if err != nil {
		log.Println("[ERROR] ApproveClass:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, helper.UpdateAck{MatchedCount: modified, ModifiedCount: modified})
}

// PATCH /classes/denied/:id (admin)
func (cc *ClassController) DenyClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}
	var req dto.DenyClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	modified, err := cc.Classes.UpdateStatus(c.UserContext(), id, model.StatusDenied, &req.Reason)
	if err != nil {
		log.Println("[ERROR] DenyClass:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, helper.UpdateAck{MatchedCount: modified, ModifiedCount: modified})
}

// PATCH /classes/:id (auth), seat/enrollment bookkeeping after checkout.
func (cc *ClassController) UpdateSeats(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}
	var req dto.UpdateSeatsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	modified, err := cc.Classes.UpdateSeats(c.UserContext(), id, req.AvailableSeats, req.Enrollment)
	if err != nil {
		log.Println("[ERROR] UpdateSeats:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if modified == 0 {
		return helper.JsonOK(c, fiber.Map{"success": false, "message": "class not found"})
	}
	return helper.JsonOK(c, fiber.Map{"success": true, "message": "class updated"})
}

// DELETE /classes/:id (admin)
func (cc *ClassController) DeleteClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}
	deleted, err := cc.Classes.Delete(c.UserContext(), id)
	if err != nil {
		log.Println("[ERROR] DeleteClass:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, helper.DeleteAck{DeletedCount: deleted})
}
