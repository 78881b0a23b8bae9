package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"linguahub_backend/internals/features/tokens/dto"
	"linguahub_backend/internals/features/tokens/service"
	helper "linguahub_backend/internals/helpers"
)

var validate = validator.New()

type TokenController struct {
	Tokens *service.TokenService
}

func NewTokenController(tokens *service.TokenService) *TokenController {
	return &TokenController{Tokens: tokens}
}

// POST /token issues a signed identity token for the given email.
func (tc *TokenController) IssueToken(c *fiber.Ctx) error {
	var req dto.IssueTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	token, err := tc.Tokens.Issue(req.Email)
	if err != nil {
		log.Println("[ERROR] IssueToken:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, dto.IssueTokenResponse{Token: token})
}
