package routes

import (
	"invitelink/handlers"

	"github.com/gofiber/fiber/v2"
)

// registerPublicRoutes wires the guest-facing endpoints: invitation lookup
// and RSVP submission need no credentials.
func registerPublicRoutes(app *fiber.App, invitation *handlers.InvitationHandler, rsvp *handlers.RSVPHandler) {
	app.Get("/api/invitation/:slug", invitation.GetBySlug)
	app.Post("/api/rsvp", rsvp.Submit)
	app.Get("/api/rsvp/:slug", rsvp.GetBySlug)
}
