package server

import (
	"time"

	"tastebook/internal/middleware"
	"tastebook/internal/models"
	"tastebook/internal/session"

	"github.com/gofiber/fiber/v2"
)

// setSessionCookie hands the client its opaque session id. The cookie is
// HttpOnly; the id carries no data and all state lives server-side.
func (s *Server) setSessionCookie(c *fiber.Ctx, sessionID string) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   s.config.SessionTTLDays * 24 * 60 * 60,
		HTTPOnly: true,
		Secure:   s.config.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   s.config.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// establishSession mints a fresh session id for the user and sets the cookie.
// A new id is always issued so a login never reuses a pre-auth session id.
func (s *Server) establishSession(c *fiber.Ctx, userID uint) error {
	sid := session.NewID()
	if err := s.sessions.Set(c.UserContext(), sid, userID); err != nil {
		return err
	}
	s.setSessionCookie(c, sid)
	return nil
}

// Signup handles POST /signup: creates an account and logs the new user in.
func (s *Server) Signup(c *fiber.Ctx) error {
	var req struct {
		Username             string  `json:"username"`
		Password             string  `json:"password"`
		PasswordConfirmation *string `json:"password_confirmation"`
		Bio                  string  `json:"bio"`
		ImageURL             string  `json:"image_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		middleware.SignupsTotal.WithLabelValues("invalid").Inc()
		return models.RespondWithError(c, fiber.StatusUnprocessableEntity,
			models.NewValidationError("Username and password are required fields!"))
	}

	// Both fields are required. (The original only rejected a missing
	// username; requiring both closes that gap.)
	if req.Username == "" || req.Password == "" {
		middleware.SignupsTotal.WithLabelValues("invalid").Inc()
		return models.RespondWithError(c, fiber.StatusUnprocessableEntity,
			models.NewValidationError("Username and password are required fields!"))
	}

	// The confirmation is optional, but when sent it must match.
	if req.PasswordConfirmation != nil && *req.PasswordConfirmation != req.Password {
		middleware.SignupsTotal.WithLabelValues("invalid").Inc()
		return models.RespondWithError(c, fiber.StatusUnprocessableEntity,
			models.NewValidationError("Password confirmation does not match password!"))
	}

	user := &models.User{
		Username: req.Username,
		Bio:      req.Bio,
		ImageURL: req.ImageURL,
	}
	if err := user.SetPassword(req.Password); err != nil {
		middleware.SignupsTotal.WithLabelValues("error").Inc()
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	if err := s.userRepo.Create(c.UserContext(), user); err != nil {
		outcome := "error"
		if appErr, isApp := err.(*models.AppError); isApp && appErr.Code == models.CodeConflict {
			outcome = "conflict"
		}
		middleware.SignupsTotal.WithLabelValues(outcome).Inc()
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	if err := s.establishSession(c, user.ID); err != nil {
		middleware.SignupsTotal.WithLabelValues("error").Inc()
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	middleware.SignupsTotal.WithLabelValues("success").Inc()
	return c.Status(fiber.StatusCreated).JSON(user.Serialize())
}

// CheckSession handles GET /check_session: returns the current user, if any.
func (s *Server) CheckSession(c *fiber.Ctx) error {
	unauthenticated := models.NewUnauthenticatedError(msgCheckSession)

	sid := c.Cookies(session.CookieName)
	if sid == "" {
		return models.RespondWithError(c, fiber.StatusUnauthorized, unauthenticated)
	}

	userID, ok, err := s.sessions.Get(c.UserContext(), sid)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized, unauthenticated)
	}

	user, err := s.userRepo.GetByIDWithRecipes(c.UserContext(), userID)
	if err != nil {
		// A session pointing at a vanished user is no session at all.
		if appErr, isApp := err.(*models.AppError); isApp && appErr.Code == models.CodeNotFound {
			return models.RespondWithError(c, fiber.StatusUnauthorized, unauthenticated)
		}
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(user.Serialize())
}

// Login handles POST /login: verifies credentials and establishes a session.
//
// Success is reported with 201 to stay wire-compatible with existing clients
// of the original API. The two failure modes keep their distinct messages for
// the same reason.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		middleware.LoginsTotal.WithLabelValues("invalid").Inc()
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthenticatedError("Invalid username"))
	}

	user, err := s.userRepo.GetByUsername(c.UserContext(), req.Username)
	if err != nil {
		middleware.LoginsTotal.WithLabelValues("error").Inc()
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	if user == nil {
		middleware.LoginsTotal.WithLabelValues("unknown_user").Inc()
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthenticatedError("Invalid username"))
	}

	if !user.Authenticate(req.Password) {
		middleware.LoginsTotal.WithLabelValues("bad_password").Inc()
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthenticatedError("Invalid password."))
	}

	if err := s.establishSession(c, user.ID); err != nil {
		middleware.LoginsTotal.WithLabelValues("error").Inc()
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	full, err := s.userRepo.GetByIDWithRecipes(c.UserContext(), user.ID)
	if err != nil {
		full = user
	}

	middleware.LoginsTotal.WithLabelValues("success").Inc()
	return c.Status(fiber.StatusCreated).JSON(full.Serialize())
}

// Logout handles DELETE /logout: ends the current session.
func (s *Server) Logout(c *fiber.Ctx) error {
	unauthenticated := models.NewUnauthenticatedError(msgLogout)

	sid := c.Cookies(session.CookieName)
	if sid == "" {
		return models.RespondWithError(c, fiber.StatusUnauthorized, unauthenticated)
	}

	_, ok, err := s.sessions.Get(c.UserContext(), sid)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized, unauthenticated)
	}

	if err := s.sessions.Clear(c.UserContext(), sid); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	s.clearSessionCookie(c)

	return c.SendStatus(fiber.StatusNoContent)
}
