package repositories

import "recipeshare/internal/models"

// RecipeRepository defines the interface for recipe data access.
//
// GetByIDs resolves a set of recipe ids in one query and silently drops ids
// with no matching record, which keeps the saved-recipes read path total even
// when the list holds dangling references. GetTrending returns at most limit
// recipes ordered by trend score then likes, both descending; ordering beyond
// those two keys is store-native and undefined.
type RecipeRepository interface {
	Create(recipe *models.Recipe) error
	GetByID(id string) (*models.Recipe, error)
	GetByIDs(ids []string) ([]models.Recipe, error)
	GetByUserID(userID string) ([]models.Recipe, error)
	GetTrending(limit int) ([]models.Recipe, error)
	Update(recipe *models.Recipe) error
}
