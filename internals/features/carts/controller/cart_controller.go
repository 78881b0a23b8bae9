package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"linguahub_backend/internals/features/carts/dto"
	"linguahub_backend/internals/features/carts/model"
	"linguahub_backend/internals/features/carts/repository"
	helper "linguahub_backend/internals/helpers"
)

var validate = validator.New()

type CartController struct {
	Carts repository.CartRepository
}

func NewCartController(carts repository.CartRepository) *CartController {
	return &CartController{Carts: carts}
}

// GET /carts?email= (auth + owner). No email means an empty array, not an
// error.
func (cc *CartController) ListCart(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return helper.JsonOK(c, []model.CartItemModel{})
	}
	items, err := cc.Carts.FindByEmail(c.UserContext(), email)
	if err != nil {
		log.Println("[ERROR] ListCart:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, items)
}

// POST /carts
func (cc *CartController) AddCartItem(c *fiber.Ctx) error {
	var req dto.AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	item := model.CartItemModel{
		ClassID:   req.ClassID,
		Email:     req.Email,
		ClassName: req.ClassName,
		Price:     req.Price,
	}
	if err := cc.Carts.Insert(c.UserContext(), &item); err != nil {
		log.Println("[ERROR] AddCartItem:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, helper.InsertAck{InsertedID: item.ID.String()})
}

// DELETE /carts/:id
func (cc *CartController) DeleteCartItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid cart item id")
	}
	deleted, err := cc.Carts.Delete(c.UserContext(), id)
	if err != nil {
		log.Println("[ERROR] DeleteCartItem:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, helper.DeleteAck{DeletedCount: deleted})
}
