package config

import (
	"Planta-Backend/internal/api/handlers"
	"Planta-Backend/internal/api/routes"
	"Planta-Backend/internal/localstore"
	"Planta-Backend/internal/middleware"
	"Planta-Backend/internal/utils"
	"Planta-Backend/internal/utils/storage"
	"Planta-Backend/internal/ws"
	"Planta-Backend/pkg/assistant"
	"Planta-Backend/pkg/games"
	"Planta-Backend/pkg/jwt"
	"Planta-Backend/pkg/plant"
	"Planta-Backend/pkg/reminder"
	"Planta-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// NewApp wires repositories, services and handlers into a fiber app.
// db may be nil when STORAGE_DRIVER is "jsonfile"; collections are then
// persisted as JSON files under DATA_DIR.
func NewApp(db *gorm.DB) (*fiber.App, *ws.Hub, *reminder.Engine, error) {
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
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	var (
		userRepository     user.UserRepository
		plantRepository    plant.PlantRepository
		reminderRepository reminder.ReminderRepository
	)
	if utils.GetConfig("STORAGE_DRIVER") == "postgres" {
		userRepository = user.NewUserRepository(db)
		plantRepository = plant.NewPlantRepository(db)
		reminderRepository = reminder.NewReminderRepository(db)
	} else {
		store, err := localstore.New(utils.GetConfig("DATA_DIR"))
		if err != nil {
			return nil, nil, nil, err
		}
		userRepository = user.NewFileRepository(store)
		plantRepository = plant.NewFileRepository(store)
		reminderRepository = reminder.NewFileRepository(store)
	}

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	plantService := plant.NewPlantService(plantRepository, s3)
	reminderService := reminder.NewReminderService(reminderRepository)
	geminiClient := assistant.NewGeminiClient(assistant.GeminiConfig{
		APIKey: utils.GetConfig("GEMINI_API_KEY"),
		Model:  utils.GetConfig("GEMINI_MODEL"),
	})
	assistantService := assistant.NewAssistantService(geminiClient, plantRepository)
	gamesService := games.NewGamesService()

	// Reminder delivery
	hub := ws.NewHub()
	engine := reminder.NewEngine(reminderRepository, plantRepository, hub, reminder.DefaultCheckInterval)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	plantHandler := handlers.NewPlantHandler(plantService, validator)
	reminderHandler := handlers.NewReminderHandler(reminderService, engine, validator)
	assistantHandler := handlers.NewAssistantHandler(assistantService, validator)
	gameHandler := handlers.NewGameHandler(gamesService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		PlantHandler:     plantHandler,
		ReminderHandler:  reminderHandler,
		AssistantHandler: assistantHandler,
		GameHandler:      gameHandler,
		Hub:              hub,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, hub, engine, nil
}
