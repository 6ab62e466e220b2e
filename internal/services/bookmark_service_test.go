package services_test

import (
	"testing"

	"recipeshare/internal/models"
	"recipeshare/internal/repositories"
	"recipeshare/internal/services"

	"github.com/stretchr/testify/assert"
)

// The bookmark tests run against the in-memory repositories so the
// check-and-append behaviour is exercised for real rather than mocked.
func setupBookmarkService(t *testing.T) (*services.BookmarkService, *repositories.MockUserRepository, *repositories.MockRecipeRepository) {
	t.Helper()
	userRepo := repositories.NewMockUserRepository()
	recipeRepo := repositories.NewMockRecipeRepository()
	return services.NewBookmarkService(userRepo, recipeRepo), userRepo, recipeRepo
}

func TestBookmarkService_SaveRecipe_Idempotent(t *testing.T) {
	service, userRepo, _ := setupBookmarkService(t)

	user := &models.User{Email: "jane@example.com", SavedRecipes: []string{}}
	assert.NoError(t, userRepo.Create(user))

	saved, err := service.SaveRecipe(user.ID, "recipe-1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"recipe-1"}, saved)

	// Saving the same recipe again is a no-op
	saved, err = service.SaveRecipe(user.ID, "recipe-1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"recipe-1"}, saved)

	saved, err = service.SaveRecipe(user.ID, "recipe-2")
	assert.NoError(t, err)
	assert.Equal(t, []string{"recipe-1", "recipe-2"}, saved)
}

func TestBookmarkService_SaveRecipe_UserNotFound(t *testing.T) {
	service, _, _ := setupBookmarkService(t)

	_, err := service.SaveRecipe("ghost", "recipe-1")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestBookmarkService_ListSaved_FiltersDanglingIDs(t *testing.T) {
	service, userRepo, recipeRepo := setupBookmarkService(t)

	recipe := &models.Recipe{Title: "Shakshuka"}
	assert.NoError(t, recipeRepo.Create(recipe))

	// One saved id resolves, the other points to nothing.
	user := &models.User{
		Email:        "jane@example.com",
		SavedRecipes: []string{recipe.ID, "deleted-recipe"},
	}
	assert.NoError(t, userRepo.Create(user))

	recipes, err := service.ListSaved(user.ID)
	assert.NoError(t, err)
	if assert.Len(t, recipes, 1) {
		assert.Equal(t, recipe.ID, recipes[0].ID)
	}
}

func TestBookmarkService_ListSaved_UserNotFound(t *testing.T) {
	service, _, _ := setupBookmarkService(t)

	_, err := service.ListSaved("ghost")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestBookmarkService_ListSaved_Empty(t *testing.T) {
	service, userRepo, _ := setupBookmarkService(t)

	user := &models.User{Email: "jane@example.com", SavedRecipes: []string{}}
	assert.NoError(t, userRepo.Create(user))

	recipes, err := service.ListSaved(user.ID)
	assert.NoError(t, err)
	assert.Empty(t, recipes)
}
