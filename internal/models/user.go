// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"tastebook/internal/auth"
)

// ErrPasswordAccess is returned on any attempt to read the credential field.
// The password hash is write-only from the caller's perspective.
var ErrPasswordAccess = NewAccessDeniedError("Passwords are off limits!")

// User represents an account that owns recipes.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	Bio          string    `json:"bio"`
	ImageURL     string    `json:"image_url"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Recipes      []Recipe  `gorm:"foreignKey:UserID" json:"recipes,omitempty"`
}

// Password always fails with ErrPasswordAccess; use Authenticate to verify a
// plaintext instead.
func (u *User) Password() (string, error) {
	return "", ErrPasswordAccess
}

// SetPassword hashes the plaintext and stores the result. The hash never
// leaves the entity.
func (u *User) SetPassword(plaintext string) error {
	hash, err := auth.HashPassword(plaintext)
	if err != nil {
		return NewInternalError(err)
	}
	u.PasswordHash = hash
	return nil
}

// Authenticate reports whether plaintext matches the stored credential.
func (u *User) Authenticate(plaintext string) bool {
	return auth.CheckPassword(u.PasswordHash, plaintext)
}

// Serialize converts the user to its transmissible form. The password hash is
// always excluded; relationship names passed in omit are skipped, and nested
// recipes never re-embed their owner.
func (u *User) Serialize(omit ...string) map[string]any {
	excluded := newOmitSet(omit)

	out := map[string]any{
		"id":        u.ID,
		"username":  u.Username,
		"bio":       u.Bio,
		"image_url": u.ImageURL,
	}

	if !excluded.has("recipes") {
		recipes := make([]map[string]any, 0, len(u.Recipes))
		for i := range u.Recipes {
			recipes = append(recipes, u.Recipes[i].Serialize("user"))
		}
		out["recipes"] = recipes
	}

	return out
}
