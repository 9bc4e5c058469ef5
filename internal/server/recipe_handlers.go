package server

import (
	"tastebook/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListRecipes handles GET /recipes: every recipe with its owner embedded.
func (s *Server) ListRecipes(c *fiber.Ctx) error {
	recipes, err := s.recipeRepo.List(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	out := make([]map[string]any, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.Serialize())
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// CreateRecipe handles POST /recipes. Ownership comes from the session, never
// from the payload.
func (s *Server) CreateRecipe(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthenticatedError(msgPostRecipes))
	}

	owner, err := s.userRepo.GetByID(c.UserContext(), userID)
	if err != nil {
		if appErr, isApp := err.(*models.AppError); isApp && appErr.Code == models.CodeNotFound {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthenticatedError(msgPostRecipes))
		}
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	var req struct {
		Title             string `json:"title"`
		Instructions      string `json:"instructions"`
		MinutesToComplete int    `json:"minutes_to_complete"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusUnprocessableEntity,
			models.NewValidationError(models.RecipeValidationMessage))
	}

	recipe := &models.Recipe{
		Title:             req.Title,
		Instructions:      req.Instructions,
		MinutesToComplete: req.MinutesToComplete,
		UserID:            userID,
	}
	if err := s.recipeRepo.Create(c.UserContext(), recipe); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	// Attach the owner after the insert so the association is not re-saved.
	recipe.User = *owner
	return c.Status(fiber.StatusCreated).JSON(recipe.Serialize())
}
