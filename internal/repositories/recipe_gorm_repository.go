package repositories

import (
	"errors"
	"fmt"

	"recipeshare/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMRecipeRepository is a GORM implementation of RecipeRepository.
type GORMRecipeRepository struct {
	db *gorm.DB
}

// NewGORMRecipeRepository creates a new instance of GORMRecipeRepository.
func NewGORMRecipeRepository(db *gorm.DB) *GORMRecipeRepository {
	return &GORMRecipeRepository{
		db: db,
	}
}

// Create creates a new recipe in the database.
func (r *GORMRecipeRepository) Create(recipe *models.Recipe) error {
	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	if err := r.db.Create(recipe).Error; err != nil {
		return fmt.Errorf("failed to create recipe: %w: %w", models.ErrStoreUnavailable, err)
	}
	return nil
}

// GetByID retrieves a single recipe by its ID from the database.
func (r *GORMRecipeRepository) GetByID(id string) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("recipe with ID %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get recipe by ID %s: %w: %w", id, models.ErrStoreUnavailable, err)
	}
	return &recipe, nil
}

// GetByIDs retrieves the recipes matching the given ids. Ids with no matching
// record are simply absent from the result.
func (r *GORMRecipeRepository) GetByIDs(ids []string) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	if len(ids) == 0 {
		return recipes, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to get recipes by IDs: %w: %w", models.ErrStoreUnavailable, err)
	}
	return recipes, nil
}

// GetByUserID retrieves all recipes published by the given user.
func (r *GORMRecipeRepository) GetByUserID(userID string) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	if err := r.db.Where("user_id = ?", userID).Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to get recipes for user %s: %w: %w", userID, models.ErrStoreUnavailable, err)
	}
	return recipes, nil
}

// GetTrending retrieves at most limit recipes ranked by trend score then likes.
func (r *GORMRecipeRepository) GetTrending(limit int) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	if err := r.db.Order("trend_score DESC, likes DESC").Limit(limit).Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to get trending recipes: %w: %w", models.ErrStoreUnavailable, err)
	}
	return recipes, nil
}

// Update updates an existing recipe in the database.
func (r *GORMRecipeRepository) Update(recipe *models.Recipe) error {
	res := r.db.Save(recipe) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update recipe: %w: %w", models.ErrStoreUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		// GORM's Save doesn't return ErrRecordNotFound for an update that
		// matched nothing, so we check RowsAffected.
		return fmt.Errorf("recipe with ID %s not found for update: %w", recipe.ID, models.ErrNotFound)
	}
	return nil
}
