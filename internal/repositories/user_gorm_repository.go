package repositories

import (
	"errors"
	"fmt"
	"slices"

	"recipeshare/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create creates a new user in the database. A unique-index violation on the
// email column surfaces as models.ErrDuplicateEmail so a racing registration
// cannot slip past the service-level check.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("user with email %s: %w", user.Email, models.ErrDuplicateEmail)
		}
		return fmt.Errorf("failed to create user: %w: %w", models.ErrStoreUnavailable, err)
	}
	return nil
}

// GetByEmail retrieves a user by their email from the database. The lookup is
// an exact match; emails are not case-normalized.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with email %s: %w", email, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w: %w", email, models.ErrStoreUnavailable, err)
	}
	return &user, nil
}

// GetByID retrieves a user by their ID from the database.
func (r *GORMUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with ID %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w: %w", id, models.ErrStoreUnavailable, err)
	}
	return &user, nil
}

// Update persists an existing user record.
func (r *GORMUserRepository) Update(user *models.User) error {
	res := r.db.Save(user) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update user: %w: %w", models.ErrStoreUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user with ID %s not found for update: %w", user.ID, models.ErrNotFound)
	}
	return nil
}

// AppendSavedRecipe appends recipeID to the user's saved list unless it is
// already present, inside a single transaction. The returned slice is the
// saved list after the call, whether or not anything was appended.
func (r *GORMUserRepository) AppendSavedRecipe(userID, recipeID string) ([]string, error) {
	var saved []string
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Postgres needs the row lock so two concurrent appends of different
		// recipes cannot lose one; SQLite serializes writers and its grammar
		// has no FOR UPDATE.
		query := tx
		if tx.Dialector.Name() == "postgres" {
			query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var user models.User
		if err := query.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("user with ID %s: %w", userID, models.ErrNotFound)
			}
			return fmt.Errorf("failed to get user by ID %s: %w: %w", userID, models.ErrStoreUnavailable, err)
		}
		if slices.Contains(user.SavedRecipes, recipeID) {
			saved = user.SavedRecipes
			return nil
		}
		user.SavedRecipes = append(user.SavedRecipes, recipeID)
		// Save runs the slice through the field's JSON serializer; a raw
		// column update would not.
		if err := tx.Save(&user).Error; err != nil {
			return fmt.Errorf("failed to append saved recipe for user %s: %w: %w", userID, models.ErrStoreUnavailable, err)
		}
		saved = user.SavedRecipes
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}
