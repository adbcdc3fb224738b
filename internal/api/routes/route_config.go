package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rubeenavs/foodwise/internal/api/handlers"
	"github.com/rubeenavs/foodwise/internal/middleware"
	"github.com/rubeenavs/foodwise/pkg/jwt"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	GroceryHandler handlers.GroceryHandler
	RecipeHandler  handlers.RecipeHandler
	CookHandler    handlers.CookHandler
	WasteHandler   handlers.WasteHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Groceries()
	c.Recipes()
	c.Cook()
	c.FoodWaste()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Get("", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.OnlyAdmin, c.UserHandler.GetUsers)
		user.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.OnlyAdmin, c.UserHandler.DeleteUser)
		user.Patch("/:id/role", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.OnlyAdmin, c.UserHandler.UpdateRole)
	}
}

func (c *Config) Groceries() {
	groceries := c.App.Group("/api/v1/groceries", c.Middleware.AuthMiddleware(c.JWTService))

	groceries.Get("", c.GroceryHandler.GetGroceries)
	groceries.Post("", c.GroceryHandler.AddGrocery)
	groceries.Get("/expiring", c.GroceryHandler.GetUpcomingExpiries)
	groceries.Post("/bill-scan", c.GroceryHandler.UploadBill)
	groceries.Get("/bill-scan/:id", c.GroceryHandler.GetBillScan)
	groceries.Put("/:id", c.GroceryHandler.UpdateGrocery)
	groceries.Delete("/:id", c.GroceryHandler.DeleteGrocery)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/recommended", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.GetRecommendations)
	recipes.Get("/:id/leftovers", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.GetLeftovers)
	recipes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.OnlyAdmin, c.RecipeHandler.CreateRecipe)
	recipes.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.OnlyAdmin, c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.OnlyAdmin, c.RecipeHandler.DeleteRecipe)
}

func (c *Config) Cook() {
	cook := c.App.Group("/api/v1/cook", c.Middleware.AuthMiddleware(c.JWTService))

	cook.Post("", c.CookHandler.Cook)
	cook.Put("/waste/:id", c.CookHandler.RecordWaste)
}

func (c *Config) FoodWaste() {
	foodWaste := c.App.Group("/api/v1/food-waste", c.Middleware.AuthMiddleware(c.JWTService))

	foodWaste.Get("/summary", c.WasteHandler.GetWasteSummary)
	foodWaste.Get("/weekly", c.WasteHandler.GetWeeklyWaste)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
