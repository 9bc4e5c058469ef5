// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"tastebook/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeder builds domain entities and persists them to the database.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll deletes all seeded data. Recipes go first to satisfy the
// foreign key.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	if err := s.db.Exec("DELETE FROM recipes").Error; err != nil {
		return fmt.Errorf("clearing recipes: %w", err)
	}
	if err := s.db.Exec("DELETE FROM users").Error; err != nil {
		return fmt.Errorf("clearing users: %w", err)
	}
	return nil
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (s *Seeder) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Bio:      gofakeit.Sentence(12),
		ImageURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hashed)

	for _, override := range overrides {
		override(user)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateRecipe constructs and persists a sample recipe for the given user.
// Generated instructions always clear the 50 character minimum.
func (s *Seeder) CreateRecipe(user *models.User, overrides ...func(*models.Recipe)) (*models.Recipe, error) {
	recipe := &models.Recipe{
		Title:             fmt.Sprintf("%s %s", gofakeit.AdjectiveDescriptive(), gofakeit.Dinner()),
		Instructions:      s.instructions(),
		MinutesToComplete: gofakeit.Number(5, 180),
		UserID:            user.ID,
	}

	for _, override := range overrides {
		override(recipe)
	}

	if err := s.db.Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// Run seeds numUsers users, each with a small spread of recipes.
func (s *Seeder) Run(numUsers, maxRecipesPerUser int) error {
	log.Printf("Seeding %d users...", numUsers)

	for i := 0; i < numUsers; i++ {
		user, err := s.CreateUser()
		if err != nil {
			return fmt.Errorf("creating user %d: %w", i, err)
		}

		for j := 0; j < s.rng.Intn(maxRecipesPerUser+1); j++ {
			if _, err := s.CreateRecipe(user); err != nil {
				return fmt.Errorf("creating recipe for %s: %w", user.Username, err)
			}
		}
	}

	return nil
}

// instructions builds a multi-sentence body guaranteed to be long enough.
func (s *Seeder) instructions() string {
	var b strings.Builder
	for b.Len() < models.MinInstructionsLength {
		b.WriteString(gofakeit.Sentence(10))
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}
