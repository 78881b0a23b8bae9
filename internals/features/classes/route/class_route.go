package route

import (
	"github.com/gofiber/fiber/v2"

	"linguahub_backend/internals/constants"
	classController "linguahub_backend/internals/features/classes/controller"
	"linguahub_backend/internals/features/classes/repository"
	tokenService "linguahub_backend/internals/features/tokens/service"
	authMw "linguahub_backend/internals/middlewares/auth"
)

// ClassRoutes registers the /classes surface. Static segments must be
// registered before /classes/:email and /classes/:id so "approved",
// "pending" and "denied" never bind as params.
func ClassRoutes(app fiber.Router, classes repository.ClassRepository, roles authMw.RoleSource, tokens *tokenService.TokenService) {
	ctrl := classController.NewClassController(classes)

	authed := authMw.AuthJWT(tokens)
	adminOnly := authMw.RequireRole(roles, constants.RoleAdmin)
	instructorOnly := authMw.RequireRole(roles, constants.RoleInstructor)

	app.Get("/classes", authed, adminOnly, ctrl.ListClasses)
	app.Get("/classes/approved", ctrl.ListApproved)
	app.Get("/classes/approved/sorted", ctrl.ListApprovedSorted)
	app.Get("/classes/pending", ctrl.ListPending)
	app.Get("/classes/:email", authed, instructorOnly, authMw.OwnerParam("email"), ctrl.ListByInstructor)

	app.Post("/classes", authed, instructorOnly, ctrl.CreateClass)

	app.Patch("/classes/approved/:id", authed, adminOnly, ctrl.ApproveClass)
	app.Patch("/classes/denied/:id", authed, adminOnly, ctrl.DenyClass)
	app.Patch("/classes/:id", authed, ctrl.UpdateSeats)

	app.Delete("/classes/:id", authed, adminOnly, ctrl.DeleteClass)
}
