package repositories_test

import (
	"testing"

	"recipeshare/internal/models"
	"recipeshare/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupUserRepo opens a named in-memory SQLite database and returns a GORM
// user repository backed by it.
func setupUserRepo(t *testing.T, name string) *repositories.GORMUserRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.User{}))
	return repositories.NewGORMUserRepository(db)
}

func TestGORMUserRepository_AppendSavedRecipe(t *testing.T) {
	repo := setupUserRepo(t, "append_saved")

	user := &models.User{FullName: "Jane Doe", Email: "jane@example.com", SavedRecipes: []string{}}
	assert.NoError(t, repo.Create(user))

	saved, err := repo.AppendSavedRecipe(user.ID, "recipe-1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"recipe-1"}, saved)

	// The row must stay readable after an append: the saved list is a
	// JSON-serialized column, so the write has to go through the serializer.
	loaded, err := repo.GetByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"recipe-1"}, loaded.SavedRecipes)

	// Appending the same id again is a no-op
	saved, err = repo.AppendSavedRecipe(user.ID, "recipe-1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"recipe-1"}, saved)

	saved, err = repo.AppendSavedRecipe(user.ID, "recipe-2")
	assert.NoError(t, err)
	assert.Equal(t, []string{"recipe-1", "recipe-2"}, saved)

	loaded, err = repo.GetByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"recipe-1", "recipe-2"}, loaded.SavedRecipes)

	// Unknown user
	_, err = repo.AppendSavedRecipe("ghost", "recipe-1")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGORMUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo := setupUserRepo(t, "dup_email")

	first := &models.User{FullName: "Jane Doe", Email: "jane@example.com"}
	assert.NoError(t, repo.Create(first))

	// The unique index is the backstop for a racing registration that slips
	// past the service-level check.
	second := &models.User{FullName: "Jane Smith", Email: "jane@example.com"}
	assert.ErrorIs(t, repo.Create(second), models.ErrDuplicateEmail)
}
