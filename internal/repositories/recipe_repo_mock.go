package repositories

import (
	"fmt"
	"sort"
	"sync"

	"recipeshare/internal/models"

	"github.com/google/uuid"
)

// MockRecipeRepository is an in-memory implementation of RecipeRepository.
type MockRecipeRepository struct {
	recipes map[string]models.Recipe
	order   []string // insertion order, the mock's store-native ordering
	mu      sync.RWMutex
}

// NewMockRecipeRepository creates a new instance of MockRecipeRepository.
func NewMockRecipeRepository() *MockRecipeRepository {
	return &MockRecipeRepository{
		recipes: make(map[string]models.Recipe),
	}
}

// Create adds a new recipe.
func (r *MockRecipeRepository) Create(recipe *models.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	if _, ok := r.recipes[recipe.ID]; !ok {
		r.order = append(r.order, recipe.ID)
	}
	r.recipes[recipe.ID] = *recipe
	return nil
}

// GetByID returns a recipe by its ID.
func (r *MockRecipeRepository) GetByID(id string) (*models.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipe, ok := r.recipes[id]
	if !ok {
		return nil, fmt.Errorf("recipe with ID %s: %w", id, models.ErrNotFound)
	}
	return &recipe, nil
}

// GetByIDs returns the recipes matching the given ids, skipping unknown ones.
func (r *MockRecipeRepository) GetByIDs(ids []string) ([]models.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipes := make([]models.Recipe, 0, len(ids))
	for _, id := range ids {
		if recipe, ok := r.recipes[id]; ok {
			recipes = append(recipes, recipe)
		}
	}
	return recipes, nil
}

// GetByUserID returns all recipes published by the given user.
func (r *MockRecipeRepository) GetByUserID(userID string) ([]models.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipes := []models.Recipe{}
	for _, id := range r.order {
		if recipe := r.recipes[id]; recipe.UserID == userID {
			recipes = append(recipes, recipe)
		}
	}
	return recipes, nil
}

// GetTrending returns at most limit recipes ranked by trend score then likes,
// both descending; ties keep insertion order.
func (r *MockRecipeRepository) GetTrending(limit int) ([]models.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipes := make([]models.Recipe, 0, len(r.order))
	for _, id := range r.order {
		recipes = append(recipes, r.recipes[id])
	}
	sort.SliceStable(recipes, func(i, j int) bool {
		if recipes[i].TrendScore != recipes[j].TrendScore {
			return recipes[i].TrendScore > recipes[j].TrendScore
		}
		return recipes[i].Likes > recipes[j].Likes
	})
	if limit > 0 && len(recipes) > limit {
		recipes = recipes[:limit]
	}
	return recipes, nil
}

// Update modifies an existing recipe.
func (r *MockRecipeRepository) Update(recipe *models.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.recipes[recipe.ID]
	if !ok {
		return fmt.Errorf("recipe with ID %s not found for update: %w", recipe.ID, models.ErrNotFound)
	}
	r.recipes[recipe.ID] = *recipe
	return nil
}
