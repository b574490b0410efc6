package handlers

import (
	"invitelink/configs"
	"invitelink/configs/configslog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const sessionAdminKey = "is_admin"

// AuthHandler implements the single shared admin credential: a bcrypt check
// on login, an is_admin flag in the server-side session afterwards.
type AuthHandler struct {
	cfg   *configs.Config
	store *session.Store
}

// NewAuthHandler builds the handler on the app config and session store.
func NewAuthHandler(cfg *configs.Config, store *session.Store) *AuthHandler {
	return &AuthHandler{cfg: cfg, store: store}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login (POST /api/admin/login) verifies the password and opens a session.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPasswordHash), []byte(req.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid password"})
	}

	sess, err := h.store.Get(c)
	if err != nil {
		configslog.Log.Error("Login: session error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Session error"})
	}
	sess.Set(sessionAdminKey, true)
	if err := sess.Save(); err != nil {
		configslog.Log.Error("Login: session save error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Session error"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// Logout (POST /api/admin/logout) destroys the session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err == nil {
		_ = sess.Destroy()
	}
	return c.JSON(fiber.Map{"success": true})
}

// RequireAdmin guards the admin route group.
func (h *AuthHandler) RequireAdmin(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	if isAdmin, _ := sess.Get(sessionAdminKey).(bool); !isAdmin {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	return c.Next()
}
