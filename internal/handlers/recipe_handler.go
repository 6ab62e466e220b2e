package handlers

import (
	"errors"
	"log"

	"recipeshare/internal/models"
	"recipeshare/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RecipeHandler handles HTTP requests for the recipe catalog.
type RecipeHandler struct {
	service *services.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(service *services.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		service: service,
	}
}

// RegisterRoutes registers the recipe routes with the Fiber app.
func (h *RecipeHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/recipes/:id", h.HandleGetRecipeByID)
	router.Get("/trending", h.HandleGetTrending)
	router.Get("/published", h.HandleGetPublished)
	router.Post("/published", h.HandlePublish)
	router.Put("/published/:id", h.HandleUpdateRecipe)
}

// HandleGetRecipeByID retrieves a single recipe by its ID.
func (h *RecipeHandler) HandleGetRecipeByID(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	recipe, err := h.service.GetRecipeByID(recipeID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Recipe not found",
			})
		}
		log.Printf("Error getting recipe by ID %s: %v", recipeID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal Server Error",
		})
	}
	return c.JSON(recipe)
}

// HandleGetTrending returns the trending ranking, ten recipes unless a
// positive limit query parameter narrows it.
func (h *RecipeHandler) HandleGetTrending(c *fiber.Ctx) error {
	recipes, err := h.service.Trending(c.QueryInt("limit"))
	if err != nil {
		log.Printf("Error getting trending recipes: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal Server Error",
		})
	}
	return c.JSON(recipes)
}

// HandleGetPublished lists all recipes published by the user named in the
// userId query parameter. No match is an empty list, never an error.
func (h *RecipeHandler) HandleGetPublished(c *fiber.Ctx) error {
	userID := c.Query("userId")
	recipes, err := h.service.GetPublishedBy(userID)
	if err != nil {
		log.Printf("Error getting published recipes for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal Server Error",
		})
	}
	return c.JSON(recipes)
}

// HandlePublish stores the request body as a new recipe. The payload is taken
// as-is: known fields map onto the recipe, anything else is kept in the
// extension map, and no field is required.
func (h *RecipeHandler) HandlePublish(c *fiber.Ctx) error {
	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		log.Printf("Error parsing publish request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	var recipe models.Recipe
	recipe.ApplyPartial(fields)

	created, err := h.service.Publish(&recipe)
	if err != nil {
		log.Printf("Error publishing recipe: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal Server Error",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateRecipe merges the request body's top-level fields into an
// existing recipe and returns the updated record.
func (h *RecipeHandler) HandleUpdateRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		log.Printf("Error parsing recipe update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	recipe, err := h.service.UpdateRecipe(recipeID, fields)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Recipe not found",
			})
		}
		log.Printf("Error updating recipe %s: %v", recipeID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal Server Error",
		})
	}
	return c.JSON(recipe)
}
