package handlers

import "github.com/gofiber/fiber/v2"

// Dish is an entry in the curated dish showcase. This is process-wide
// read-only reference data for the landing page, not user data; nothing
// mutates it and it never touches the stores.
type Dish struct {
	Title string `json:"title"`
	Time  string `json:"time"`
	Likes int    `json:"likes"`
	Image string `json:"image"`
}

var dishesData = map[string][]Dish{
	"allTimeBest": {
		{Title: "Spaghetti Bolognese", Time: "45 mins", Likes: 300, Image: "/dish7.jpg"},
		{Title: "Pizza Margherita", Time: "30 mins", Likes: 450, Image: "/dish8.jpg"},
		{Title: "Butter Chicken", Time: "50 mins", Likes: 275, Image: "/dish9.jpg"},
		{Title: "Chocolate Cake", Time: "1 hr", Likes: 320, Image: "/dish10.jpg"},
		{Title: "Caesar Salad", Time: "15 mins", Likes: 180, Image: "/dish11.jpg"},
		{Title: "Sushi Rolls", Time: "40 mins", Likes: 210, Image: "/dish12.jpg"},
	},
	"todaySpecials": {
		{Title: "Fish Curry", Time: "40 mins", Likes: 130, Image: "/dish19.jpg"},
		{Title: "Steak Fries", Time: "45 mins", Likes: 220, Image: "/dish20.jpg"},
		{Title: "Quinoa Salad", Time: "20 mins", Likes: 95, Image: "/dish21.jpg"},
		{Title: "Pancakes", Time: "25 mins", Likes: 310, Image: "/dish22.jpg"},
		{Title: "Lamb Chops", Time: "50 mins", Likes: 160, Image: "/dish23.jpg"},
		{Title: "Mango Sorbet", Time: "30 mins", Likes: 140, Image: "/dish24.jpg"},
	},
}

// DishesHandler serves the static dish showcase.
type DishesHandler struct{}

// NewDishesHandler creates a new DishesHandler.
func NewDishesHandler() *DishesHandler {
	return &DishesHandler{}
}

// RegisterRoutes registers the dishes route with the Fiber app.
func (h *DishesHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/dishes", h.HandleGetDishes)
}

// HandleGetDishes returns the curated dish lists.
func (h *DishesHandler) HandleGetDishes(c *fiber.Ctx) error {
	return c.JSON(dishesData)
}
