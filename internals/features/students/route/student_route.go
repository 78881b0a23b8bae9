package route

import (
	"github.com/gofiber/fiber/v2"

	"linguahub_backend/internals/constants"
	studentController "linguahub_backend/internals/features/students/controller"
	"linguahub_backend/internals/features/students/repository"
	tokenService "linguahub_backend/internals/features/tokens/service"
	authMw "linguahub_backend/internals/middlewares/auth"
)

// StudentRoutes registers the /students surface. Whoami routes must come
// before the param routes so "admin"/"instructor" never bind as :id.
func StudentRoutes(app fiber.Router, students repository.StudentRepository, tokens *tokenService.TokenService) {
	ctrl := studentController.NewStudentController(students)

	authed := authMw.AuthJWT(tokens)
	adminOnly := authMw.RequireRole(students, constants.RoleAdmin)

	app.Get("/students", authed, adminOnly, ctrl.ListStudents)
	app.Post("/students", ctrl.CreateStudent)

	app.Get("/students/admin/:email", authed, authMw.OwnerParam("email"), ctrl.CheckAdmin)
	app.Patch("/students/admin/:id", authed, adminOnly, ctrl.PromoteAdmin)

	app.Get("/students/instructor/:email", authed, authMw.OwnerParam("email"), ctrl.CheckInstructor)
	app.Patch("/students/instructor/:id", authed, adminOnly, ctrl.PromoteInstructor)

	app.Delete("/students/:id", authed, adminOnly, ctrl.DeleteStudent)
}
