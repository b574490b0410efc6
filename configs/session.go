package configs

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession builds the cookie-backed session store used for the admin
// login. Sessions live server-side; the cookie only carries the session ID.
func SetupSession() *session.Store {
	return session.New(session.Config{
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:admin_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}
