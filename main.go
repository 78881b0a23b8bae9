package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"

	"linguahub_backend/internals/configs"
	database "linguahub_backend/internals/databases"
	cartModel "linguahub_backend/internals/features/carts/model"
	classModel "linguahub_backend/internals/features/classes/model"
	paymentModel "linguahub_backend/internals/features/payments/model"
	paymentService "linguahub_backend/internals/features/payments/service"
	studentModel "linguahub_backend/internals/features/students/model"
	tokenService "linguahub_backend/internals/features/tokens/service"
	middlewares "linguahub_backend/internals/middlewares"
	routes "linguahub_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// request-id + per-request deadline; the deadline bounds every store
	// and provider call made with the request context
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)

		start := time.Now()
		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.TunePool()
	if err := database.DB.AutoMigrate(
		&studentModel.StudentModel{},
		&classModel.ClassModel{},
		&cartModel.CartItemModel{},
		&paymentModel.PaymentModel{},
	); err != nil {
		log.Fatalf("❌ automigrate failed: %v", err)
	}

	tokens := tokenService.NewTokenService(configs.JWTSecret)
	provider := paymentService.NewMidtransProvider(
		configs.MidtransServerKey,
		configs.GetEnv("MIDTRANS_ENV") == "production",
	)

	routes.SetupRoutes(app, database.DB, tokens, provider)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
