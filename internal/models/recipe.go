package models

import (
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

// MinInstructionsLength is the minimum number of characters a recipe's
// instructions must contain. Enforced both in BeforeCreate and by the
// database check constraint.
const MinInstructionsLength = 50

// RecipeValidationMessage is the generic message covering every recipe
// validation failure.
const RecipeValidationMessage = "All fields are mandatory and instructions must have at least 50 characters."

// Recipe represents a recipe owned by a user.
type Recipe struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Title             string    `gorm:"not null" json:"title"`
	Instructions      string    `gorm:"type:text;not null;check:chk_recipes_instructions_len,length(instructions) >= 50" json:"instructions"`
	MinutesToComplete int       `gorm:"not null" json:"minutes_to_complete"`
	UserID            uint      `gorm:"not null;index" json:"user_id"`
	User              User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// BeforeCreate enforces the content rules at the storage boundary so an
// invalid recipe never reaches the database.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.Title == "" || r.Instructions == "" || r.MinutesToComplete <= 0 || r.UserID == 0 {
		return NewValidationError(RecipeValidationMessage)
	}
	if utf8.RuneCountInString(r.Instructions) < MinInstructionsLength {
		return NewValidationError(RecipeValidationMessage)
	}
	return nil
}

// Serialize converts the recipe to its transmissible form. The nested owner,
// when included, omits its recipes so serialization cannot recurse.
func (r *Recipe) Serialize(omit ...string) map[string]any {
	excluded := newOmitSet(omit)

	out := map[string]any{
		"id":                  r.ID,
		"title":               r.Title,
		"instructions":        r.Instructions,
		"minutes_to_complete": r.MinutesToComplete,
		"user_id":             r.UserID,
	}

	if !excluded.has("user") {
		out["user"] = r.User.Serialize("recipes")
	}

	return out
}
