package handlers

import (
	"errors"
	"log"

	"recipeshare/internal/models"
	"recipeshare/internal/services"

	"github.com/gofiber/fiber/v2"
)

// BookmarkHandler handles HTTP requests for saved recipes.
type BookmarkHandler struct {
	service *services.BookmarkService
}

// NewBookmarkHandler creates a new BookmarkHandler.
func NewBookmarkHandler(service *services.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{
		service: service,
	}
}

// RegisterRoutes registers the saved-recipe routes with the Fiber app.
func (h *BookmarkHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/saved/:userId", h.HandleListSaved)
	router.Post("/saved/:userId", h.HandleSaveRecipe)
}

// HandleListSaved returns the recipes the user has saved. Saved ids that no
// longer resolve to a recipe are omitted from the response.
func (h *BookmarkHandler) HandleListSaved(c *fiber.Ctx) error {
	userID := c.Params("userId")
	recipes, err := h.service.ListSaved(userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		log.Printf("Error listing saved recipes for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal Server Error",
		})
	}
	return c.JSON(recipes)
}

// SaveRecipeRequest represents the request body for saving a recipe.
type SaveRecipeRequest struct {
	RecipeID string `json:"recipeId"`
}

// HandleSaveRecipe adds a recipe to the user's saved list and returns the
// updated list of saved ids. Saving the same recipe twice is a no-op.
func (h *BookmarkHandler) HandleSaveRecipe(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var req SaveRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing save recipe body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	saved, err := h.service.SaveRecipe(userID, req.RecipeID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		log.Printf("Error saving recipe %s for user %s: %v", req.RecipeID, userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal Server Error",
		})
	}
	return c.JSON(saved)
}
