package repository

import (
	"context"
	"errors"

	"tastebook/internal/models"

	"gorm.io/gorm"
)

// RecipeRepository defines persistence operations for recipes.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	List(ctx context.Context) ([]models.Recipe, error)
}

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository returns a new RecipeRepository implementation.
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// Create persists a new recipe. Content-rule failures, whether caught by the
// BeforeCreate hook or the database check constraint, surface as a
// ValidationError and nothing is written.
func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	if err := r.db.WithContext(ctx).Create(recipe).Error; err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		if isCheckConstraintError(err) {
			return models.NewValidationError(models.RecipeValidationMessage)
		}
		return models.NewInternalError(err)
	}
	return nil
}

// List returns all recipes with their owners preloaded, in storage order.
func (r *recipeRepository) List(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := r.db.WithContext(ctx).Preload("User").Find(&recipes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return recipes, nil
}
