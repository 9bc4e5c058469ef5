package repository

import (
	"context"
	"errors"
	"testing"

	"tastebook/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestIsUniqueConstraintError(t *testing.T) {
	assert.False(t, isUniqueConstraintError(nil))
	assert.True(t, isUniqueConstraintError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueConstraintError(&pgconn.PgError{Code: "23514"}))
	// sqlite fallback
	assert.True(t, isUniqueConstraintError(errors.New("UNIQUE constraint failed: users.username")))
	assert.True(t, isUniqueConstraintError(errors.New(`duplicate key value violates unique constraint "uni_users_username"`)))
	assert.False(t, isUniqueConstraintError(errors.New("connection refused")))
}

func TestIsCheckConstraintError(t *testing.T) {
	assert.False(t, isCheckConstraintError(nil))
	assert.True(t, isCheckConstraintError(&pgconn.PgError{Code: "23514"}))
	assert.False(t, isCheckConstraintError(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isCheckConstraintError(errors.New("CHECK constraint failed: chk_recipes_instructions_len")))
	assert.False(t, isCheckConstraintError(errors.New("connection refused")))
}

// newMockDB opens a gorm connection over sqlmock so driver-level errors can be
// injected without a running Postgres.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestUserRepository_Create_MapsDriverErrors(t *testing.T) {
	tests := []struct {
		name         string
		driverErr    error
		expectedCode string
	}{
		{"unique violation", &pgconn.PgError{Code: "23505"}, models.CodeConflict},
		{"unrelated failure", errors.New("connection reset"), models.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserRepository(db)

			mock.ExpectQuery("INSERT INTO \"users\"").WillReturnError(tt.driverErr)

			err := repo.Create(context.Background(), &models.User{Username: "ana"})
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.expectedCode, appErr.Code)
		})
	}
}
