package routes

import (
	"strings"

	"invitelink/configs"
	"invitelink/handlers"
	"invitelink/repositories"
	"invitelink/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services and handlers onto the app and
// registers every route and the shared middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())

	sessionStore := configs.SetupSession()

	invitationRepo := repositories.NewInvitationRepository(db)
	rsvpRepo := repositories.NewRSVPRepository(db)

	invitationService := services.NewInvitationService(invitationRepo)
	rsvpService := services.NewRSVPService(rsvpRepo, invitationRepo)

	authHandler := handlers.NewAuthHandler(cfg, sessionStore)
	invitationHandler := handlers.NewInvitationHandler(invitationService)
	rsvpHandler := handlers.NewRSVPHandler(rsvpService)

	registerPublicRoutes(app, invitationHandler, rsvpHandler)
	registerAdminRoutes(app, authHandler, invitationHandler, rsvpHandler)

	// Static frontend; API routes above always win.
	app.Static("/", cfg.PublicDir)

	app.Use(notFoundHandler)
}

// notFoundHandler catches everything unmatched: JSON for API paths, the HTML
// 404 view otherwise.
func notFoundHandler(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "API endpoint not found"})
	}
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Page Not Found"})
}
