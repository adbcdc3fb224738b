package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rubeenavs/foodwise/internal/api/handlers"
	"github.com/rubeenavs/foodwise/internal/api/routes"
	"github.com/rubeenavs/foodwise/internal/middleware"
	"github.com/rubeenavs/foodwise/internal/utils"
	"github.com/rubeenavs/foodwise/internal/utils/storage"
	"github.com/rubeenavs/foodwise/pkg/cooking"
	"github.com/rubeenavs/foodwise/pkg/grocery"
	"github.com/rubeenavs/foodwise/pkg/jwt"
	"github.com/rubeenavs/foodwise/pkg/recipe"
	"github.com/rubeenavs/foodwise/pkg/recommendation"
	"github.com/rubeenavs/foodwise/pkg/user"
	"github.com/rubeenavs/foodwise/pkg/waste"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	groceryRepository := grocery.NewGroceryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	cookingRepository := cooking.NewCookingRepository(db)
	wasteRepository := waste.NewWasteRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	groceryService := grocery.NewGroceryService(groceryRepository, s3)
	recipeService := recipe.NewRecipeService(recipeRepository)
	recommendationService := recommendation.NewRecommendationService(recipeRepository, groceryRepository)
	cookingService := cooking.NewCookingService(cookingRepository)
	wasteService := waste.NewWasteService(wasteRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	groceryHandler := handlers.NewGroceryHandler(groceryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, recommendationService, validator)
	cookHandler := handlers.NewCookHandler(cookingService, validator)
	wasteHandler := handlers.NewWasteHandler(wasteService)

	// scheduled jobs
	waste.StartWeeklyRollup(wasteService)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		GroceryHandler: groceryHandler,
		RecipeHandler:  recipeHandler,
		CookHandler:    cookHandler,
		WasteHandler:   wasteHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
