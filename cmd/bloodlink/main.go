package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"bloodlink/internal/config"
	"bloodlink/internal/http/handlers"
	applog "bloodlink/internal/log"
	"bloodlink/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	client, err := repos.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	db := client.Database(cfg.DBName)

	deps := handlers.NewDeps(db, cfg)

	app := fiber.New(fiber.Config{
		// Uniform error boundary: fiber errors keep their status, anything
		// else becomes a generic 500 so store failures never leak details.
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok {
				return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
			}
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
		},
	})

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	requireAuth := handlers.RequireAuth(deps.Codec)
	requireAdmin := handlers.RequireAdmin(deps.Roles)
	requireAdminOrVolunteer := handlers.RequireAdminOrVolunteer(deps.Roles)

	// ---------- Routes ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello from BloodLink Server..")
	})
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	// Auth
	app.Post("/jwt", deps.AuthHandler.IssueToken)
	app.Get("/logout", deps.AuthHandler.Logout)

	// Geography
	app.Get("/division", deps.GeoHandler.Divisions)
	app.Get("/district/:id", deps.GeoHandler.Districts)
	app.Get("/upazila/:id", deps.GeoHandler.Upazilas)

	// Users
	app.Post("/user", deps.UserHandler.Create)
	app.Get("/user/:email", requireAuth, deps.UserHandler.Get)
	app.Put("/user/:email", requireAuth, deps.UserHandler.Update)
	app.Get("/users", requireAuth, requireAdmin, deps.UserHandler.List)

	// Blogs
	app.Get("/blogs", deps.BlogHandler.List)
	app.Post("/blogs", requireAuth, requireAdminOrVolunteer, deps.BlogHandler.Create)
	app.Patch("/blogs/:id", requireAuth, requireAdmin, deps.BlogHandler.SetStatus)
	app.Delete("/blogs/:id", requireAuth, requireAdmin, deps.BlogHandler.Delete)

	// Donation requests
	app.Put("/donationReq", requireAuth, deps.DonationHandler.Upsert)
	app.Get("/donationReq/:email", requireAuth, deps.DonationHandler.ByRequester)
	app.Get("/allRequest", deps.DonationHandler.All)
	app.Get("/recent/:email", requireAuth, deps.DonationHandler.Recent)
	app.Get("/pendingReq", deps.DonationHandler.Pending)
	app.Get("/aDonationReq/:id", requireAuth, deps.DonationHandler.One)
	app.Patch("/donationReq/:id", requireAuth, deps.DonationHandler.SetStatus)
	app.Delete("/donationReq/:id", requireAuth, deps.DonationHandler.Delete)

	// Funding & payments
	app.Post("/create-payment-intent", requireAuth, deps.FundHandler.CreateIntent)
	app.Post("/funding", requireAuth, deps.FundHandler.Create)
	app.Get("/funding/:email", requireAuth, deps.FundHandler.ByEmail)
	app.Get("/funding", requireAuth, requireAdmin, deps.FundHandler.All)

	// Panel
	app.Get("/panel", requireAuth, requireAdminOrVolunteer, deps.PanelHandler.Stats)

	log.Fatal(app.Listen(":" + cfg.Port))
}
