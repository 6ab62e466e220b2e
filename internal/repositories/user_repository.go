package repositories

import "recipeshare/internal/models"

// UserRepository defines the interface for user data access.
//
// AppendSavedRecipe is the atomic set-membership-safe update the bookmark
// relation relies on: the membership check and the append must happen inside
// one store-level transaction so that concurrent saves of the same recipe can
// never produce a duplicate entry.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	Update(user *models.User) error
	AppendSavedRecipe(userID, recipeID string) ([]string, error)
}
