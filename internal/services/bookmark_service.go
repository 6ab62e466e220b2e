package services

import (
	"fmt"

	"recipeshare/internal/models"
	"recipeshare/internal/repositories"
)

// BookmarkService maintains the per-user saved-recipe relation. It joins the
// user store (which owns the list of saved ids) against the recipe store.
type BookmarkService struct {
	userRepo   repositories.UserRepository
	recipeRepo repositories.RecipeRepository
}

// NewBookmarkService creates a new BookmarkService.
func NewBookmarkService(userRepo repositories.UserRepository, recipeRepo repositories.RecipeRepository) *BookmarkService {
	return &BookmarkService{
		userRepo:   userRepo,
		recipeRepo: recipeRepo,
	}
}

// ListSaved resolves the user's saved recipe ids against the recipe store.
// Ids that no longer resolve are silently omitted; a dangling reference is not
// an error condition on the read path.
func (s *BookmarkService) ListSaved(userID string) ([]models.Recipe, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	recipes, err := s.recipeRepo.GetByIDs(user.SavedRecipes)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve saved recipes for user %s: %w", userID, err)
	}
	return recipes, nil
}

// SaveRecipe appends recipeID to the user's saved list and returns the list
// after the call. Saving an already-saved recipe is a no-op, so the call is
// idempotent. The recipe id is deliberately not validated against the recipe
// store; the read path tolerates references that point to nothing.
func (s *BookmarkService) SaveRecipe(userID, recipeID string) ([]string, error) {
	saved, err := s.userRepo.AppendSavedRecipe(userID, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to save recipe %s for user %s: %w", recipeID, userID, err)
	}
	return saved, nil
}
