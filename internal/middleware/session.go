package middleware

import (
	"tastebook/internal/models"
	"tastebook/internal/session"

	"github.com/gofiber/fiber/v2"
)

// RequireSession returns middleware that resolves the session cookie to a
// logged-in user id and stores it in c.Locals("userID"). Requests without a
// valid session are rejected with 401 and the given message; each route keeps
// its own wording so clients see context-appropriate errors.
func RequireSession(store session.Store, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(session.CookieName)
		if sid == "" {
			SessionLookups.WithLabelValues("miss").Inc()
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthenticatedError(message))
		}

		userID, ok, err := store.Get(c.UserContext(), sid)
		if err != nil {
			SessionLookups.WithLabelValues("error").Inc()
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
		if !ok {
			SessionLookups.WithLabelValues("miss").Inc()
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthenticatedError(message))
		}

		SessionLookups.WithLabelValues("hit").Inc()
		c.Locals("userID", userID)
		return c.Next()
	}
}
