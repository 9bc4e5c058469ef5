package repository

import (
	"context"
	"strings"
	"testing"

	"tastebook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGetByUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Username: "ana", Bio: "home cook"}
	require.NoError(t, user.SetPassword("pw1"))
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	got, err := repo.GetByUsername(ctx, "ana")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "home cook", got.Bio)
	assert.True(t, got.Authenticate("pw1"))
}

func TestUserRepository_GetByUsername_NoMatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	got, err := repo.GetByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_GetByUsername_ExactMatchOnly(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Username: "ana"}))

	got, err := repo.GetByUsername(ctx, "an")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Username: "ana"}))

	err := repo.Create(ctx, &models.User{Username: "ana"})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeConflict, appErr.Code)
	assert.Equal(t, "That username is already taken. Please choose another.", appErr.Message)

	// The failed attempt must not leave a partial row behind.
	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("username = ?", "ana").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Username: "ana"}
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana", got.Username)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestUserRepository_GetByIDWithRecipes(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	recipes := NewRecipeRepository(db)
	ctx := context.Background()

	user := &models.User{Username: "ana"}
	require.NoError(t, users.Create(ctx, user))
	require.NoError(t, recipes.Create(ctx, &models.Recipe{
		Title:             "Slow Toast",
		Instructions:      strings.Repeat("x", 60),
		MinutesToComplete: 30,
		UserID:            user.ID,
	}))

	got, err := users.GetByIDWithRecipes(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, got.Recipes, 1)
	assert.Equal(t, "Slow Toast", got.Recipes[0].Title)
}
