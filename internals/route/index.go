package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cartRepo "linguahub_backend/internals/features/carts/repository"
	cartRoute "linguahub_backend/internals/features/carts/route"
	classRepo "linguahub_backend/internals/features/classes/repository"
	classRoute "linguahub_backend/internals/features/classes/route"
	paymentRepo "linguahub_backend/internals/features/payments/repository"
	paymentRoute "linguahub_backend/internals/features/payments/route"
	paymentService "linguahub_backend/internals/features/payments/service"
	studentRepo "linguahub_backend/internals/features/students/repository"
	studentRoute "linguahub_backend/internals/features/students/route"
	tokenRoute "linguahub_backend/internals/features/tokens/route"
	tokenService "linguahub_backend/internals/features/tokens/service"
)

var startTime time.Time

// SetupRoutes builds the repositories on the injected DB handle and wires
// every feature surface. Controllers only ever see the repository
// interfaces, so tests can substitute the store.
func SetupRoutes(app *fiber.App, db *gorm.DB, tokens *tokenService.TokenService, provider paymentService.ChargeProvider) {
	startTime = time.Now()

	students := studentRepo.NewStudentRepository(db)
	classes := classRepo.NewClassRepository(db)
	carts := cartRepo.NewCartRepository(db)
	payments := paymentRepo.NewPaymentRepository(db)

	log.Println("[INFO] Setting up TokenRoutes...")
	tokenRoute.TokenRoutes(app, tokens)

	log.Println("[INFO] Setting up StudentRoutes...")
	studentRoute.StudentRoutes(app, students, tokens)

	log.Println("[INFO] Setting up ClassRoutes...")
	classRoute.ClassRoutes(app, classes, students, tokens)

	log.Println("[INFO] Setting up CartRoutes...")
	cartRoute.CartRoutes(app, carts, tokens)

	log.Println("[INFO] Setting up PaymentRoutes...")
	paymentRoute.PaymentRoutes(app, payments, carts, provider, tokens)

	BaseRoutes(app)
}
