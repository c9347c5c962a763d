package repositories_test

import (
	"fmt"
	"testing"

	"katalog/internal/database"
	domainerrors "katalog/internal/errors"
	"katalog/internal/models"
	"katalog/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestGORMUserRepository_CreateDuplicateEmail(t *testing.T) {
	repo := repositories.NewGORMUserRepository(openTestDB(t))

	require.NoError(t, repo.Create(&models.User{Email: "dup@example.com", Password: "hash", IsActive: true}))

	err := repo.Create(&models.User{Email: "dup@example.com", Password: "hash", IsActive: true})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestGORMUserRepository_GetByIDNotFound(t *testing.T) {
	repo := repositories.NewGORMUserRepository(openTestDB(t))

	_, err := repo.GetByID(uuid.NewString())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
