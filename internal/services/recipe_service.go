package services

import (
	"encoding/json"
	"fmt"
	"log"

	"recipeshare/internal/models"
	"recipeshare/internal/repositories"
	"recipeshare/pkg/rabbitmq"
)

// DefaultTrendingLimit is the number of recipes returned when the caller does
// not supply a positive limit.
const DefaultTrendingLimit = 10

// RecipeService handles business logic related to recipes.
type RecipeService struct {
	recipeRepo repositories.RecipeRepository
	mqClient   *rabbitmq.Client // RabbitMQ client, may be nil
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(recipeRepo repositories.RecipeRepository, mqClient *rabbitmq.Client) *RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
		mqClient:   mqClient,
	}
}

// Publish stores a new recipe verbatim under a fresh identifier. The userId on
// the payload is taken as supplied and is not checked against the user store.
// A recipe.published event is emitted after a successful create; publishing
// failures are logged, never surfaced to the caller.
func (s *RecipeService) Publish(recipe *models.Recipe) (*models.Recipe, error) {
	if err := s.recipeRepo.Create(recipe); err != nil {
		return nil, fmt.Errorf("failed to publish recipe: %w", err)
	}

	if s.mqClient != nil {
		event := map[string]interface{}{
			"recipeId": recipe.ID,
			"userId":   recipe.UserID,
			"title":    recipe.Title,
		}
		body, err := json.Marshal(event)
		if err != nil {
			log.Printf("Failed to marshal recipe event to JSON: %v", err)
		} else if err := s.mqClient.Publish("recipe.published", body); err != nil {
			log.Printf("Warning: Failed to publish recipe.published event for recipe %s: %v", recipe.ID, err)
		}
	}

	return recipe, nil
}

// GetRecipeByID retrieves a single recipe by its ID.
func (s *RecipeService) GetRecipeByID(id string) (*models.Recipe, error) {
	return s.recipeRepo.GetByID(id)
}

// GetPublishedBy retrieves all recipes published by the given user, in
// store-native order. An unknown user yields an empty slice, not an error.
func (s *RecipeService) GetPublishedBy(userID string) ([]models.Recipe, error) {
	return s.recipeRepo.GetByUserID(userID)
}

// UpdateRecipe merges the provided top-level fields into the recipe and
// persists it. Fields absent from the input are left unchanged; unknown fields
// land in the recipe's extension map.
func (s *RecipeService) UpdateRecipe(id string, fields map[string]interface{}) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	recipe.ApplyPartial(fields)
	if err := s.recipeRepo.Update(recipe); err != nil {
		return nil, fmt.Errorf("failed to update recipe %s: %w", id, err)
	}
	return recipe, nil
}

// Trending returns recipes ordered by trend score then likes, both descending,
// truncated to limit. A non-positive limit falls back to DefaultTrendingLimit.
// The ranking is recomputed on every call; nothing is cached.
func (s *RecipeService) Trending(limit int) ([]models.Recipe, error) {
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}
	return s.recipeRepo.GetTrending(limit)
}
