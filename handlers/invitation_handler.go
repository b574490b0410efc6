package handlers

import (
	"errors"

	"invitelink/configs/configslog"
	"invitelink/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InvitationHandler exposes the guest-facing invitation lookup and the admin
// CRUD endpoints.
type InvitationHandler struct {
	service services.IInvitationService
}

// NewInvitationHandler builds the handler on the injected service.
func NewInvitationHandler(service services.IInvitationService) *InvitationHandler {
	return &InvitationHandler{service: service}
}

// invitationRequest is the JSON body for create and update. invite_to_party
// is a pointer so an omitted flag falls back to the default (true) instead of
// false.
type invitationRequest struct {
	Name          string `json:"name"`
	Pronoun       string `json:"pronoun"`
	Message       string `json:"message"`
	Slug          string `json:"slug"`
	InviteToParty *bool  `json:"invite_to_party"`
}

func (req invitationRequest) toInput() services.InvitationInput {
	return services.InvitationInput{
		Name:          req.Name,
		Pronoun:       req.Pronoun,
		Message:       req.Message,
		Slug:          req.Slug,
		InviteToParty: req.InviteToParty,
	}
}

// GetBySlug (GET /api/invitation/:slug) is the public lookup a guest's URL
// resolves through.
func (h *InvitationHandler) GetBySlug(c *fiber.Ctx) error {
	invitation, err := h.service.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(invitation)
}

// List (GET /api/invitations?search=) lists or searches invitations.
func (h *InvitationHandler) List(c *fiber.Ctx) error {
	invitations, err := h.service.List(c.UserContext(), c.Query("search"))
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(invitations)
}

// GetByID (GET /api/invitations/:id) fetches one invitation for editing.
func (h *InvitationHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	invitation, err := h.service.GetByID(c.UserContext(), uint(id))
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(invitation)
}

// Create (POST /api/invitations) creates an invitation, allocating a slug
// when the body carries none.
func (h *InvitationHandler) Create(c *fiber.Ctx) error {
	var req invitationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	invitation, err := h.service.Create(c.UserContext(), req.toInput())
	if err != nil {
		return h.renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invitation)
}

// Update (PUT /api/invitations/:id) overwrites the full field set.
func (h *InvitationHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	var req invitationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.service.Update(c.UserContext(), uint(id), req.toInput()); err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Delete (DELETE /api/invitations/:id) removes the invitation; any RSVP for
// its slug is left in place.
func (h *InvitationHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	if err := h.service.Delete(c.UserContext(), uint(id)); err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// renderError maps service errors onto HTTP statuses: not-found → 404, caller
// errors → 400, anything else is a storage failure → 500.
func (h *InvitationHandler) renderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvitationNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invitation not found"})
	case errors.Is(err, services.ErrDuplicateSlug),
		errors.Is(err, services.ErrSlugExhausted),
		errors.Is(err, services.ErrInvitationInvalid):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		configslog.Log.Error("invitation handler: storage error", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
