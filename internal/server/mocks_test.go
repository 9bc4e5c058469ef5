package server

import (
	"context"
	"testing"

	"tastebook/internal/config"
	"tastebook/internal/models"
	"tastebook/internal/repository"
	"tastebook/internal/session"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByIDWithRecipes(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockRecipeRepository is a mock of the RecipeRepository interface
type MockRecipeRepository struct {
	mock.Mock
}

var _ repository.RecipeRepository = (*MockRecipeRepository)(nil)

func (m *MockRecipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) List(ctx context.Context) ([]models.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

// newTestServer wires a Server around mocks and an in-process session store.
func newTestServer(t *testing.T) (*Server, *MockUserRepository, *MockRecipeRepository) {
	t.Helper()
	users := new(MockUserRepository)
	recipes := new(MockRecipeRepository)
	s := &Server{
		config:     &config.Config{Env: "test", SessionTTLDays: 7},
		sessions:   session.NewMemoryStore(),
		userRepo:   users,
		recipeRepo: recipes,
	}
	return s, users, recipes
}

// seedSession registers an authenticated session and returns its id.
func seedSession(t *testing.T, s *Server, userID uint) string {
	t.Helper()
	sid := session.NewID()
	if err := s.sessions.Set(context.Background(), sid, userID); err != nil {
		t.Fatalf("seeding session: %v", err)
	}
	return sid
}
