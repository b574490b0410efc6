package handlers

import (
	"errors"

	"invitelink/configs/configslog"
	"invitelink/models"
	"invitelink/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RSVPHandler exposes the guest submission endpoints and the admin listing.
type RSVPHandler struct {
	service services.IRSVPService
}

// NewRSVPHandler builds the handler on the injected service.
func NewRSVPHandler(service services.IRSVPService) *RSVPHandler {
	return &RSVPHandler{service: service}
}

type rsvpRequest struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Response string `json:"response"`
}

// Submit (POST /api/rsvp) records or overwrites a guest's response.
func (h *RSVPHandler) Submit(c *fiber.Ctx) error {
	var req rsvpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	rsvp, err := h.service.Submit(c.UserContext(), services.RSVPInput{
		Slug:     req.Slug,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Response: models.RSVPAnswer(req.Response),
	})
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "rsvp": rsvp})
}

// GetBySlug (GET /api/rsvp/:slug) returns the guest's current response, used
// by the frontend to pre-fill the form.
func (h *RSVPHandler) GetBySlug(c *fiber.Ctx) error {
	rsvp, err := h.service.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(rsvp)
}

// ListWithInvitations (GET /api/rsvps) is the admin review listing: every
// response joined with its invitation's name and pronoun.
func (h *RSVPHandler) ListWithInvitations(c *fiber.Ctx) error {
	rows, err := h.service.ListWithInvitations(c.UserContext())
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(rows)
}

func (h *RSVPHandler) renderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvitationNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invitation not found"})
	case errors.Is(err, services.ErrRSVPNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "RSVP not found"})
	case errors.Is(err, services.ErrRSVPInvalid):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		configslog.Log.Error("rsvp handler: storage error", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
