package routes

import (
	"invitelink/handlers"

	"github.com/gofiber/fiber/v2"
)

// registerAdminRoutes wires the login endpoints and the session-guarded
// invitation management and RSVP review APIs.
func registerAdminRoutes(app *fiber.App, auth *handlers.AuthHandler, invitation *handlers.InvitationHandler, rsvp *handlers.RSVPHandler) {
	app.Post("/api/admin/login", auth.Login)
	app.Post("/api/admin/logout", auth.Logout)

	admin := app.Group("/api", auth.RequireAdmin)
	admin.Get("/invitations", invitation.List)
	admin.Get("/invitations/:id", invitation.GetByID)
	admin.Post("/invitations", invitation.Create)
	admin.Put("/invitations/:id", invitation.Update)
	admin.Delete("/invitations/:id", invitation.Delete)
	admin.Get("/rsvps", rsvp.ListWithInvitations)
}
