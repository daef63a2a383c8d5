package routes

import (
	"Planta-Backend/internal/api/handlers"
	"Planta-Backend/internal/middleware"
	"Planta-Backend/internal/ws"
	"Planta-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	PlantHandler     handlers.PlantHandler
	ReminderHandler  handlers.ReminderHandler
	AssistantHandler handlers.AssistantHandler
	GameHandler      handlers.GameHandler
	Hub              *ws.Hub
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Plants()
	c.Reminders()
	c.Assistant()
	c.Games()
	c.Websocket()
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
	}
}

func (c *Config) Plants() {
	plants := c.App.Group("/api/v1/plants", c.Middleware.AuthMiddleware(c.JWTService))

	plants.Post("", c.PlantHandler.AddPlant)
	plants.Get("", c.PlantHandler.GetPlants)
	plants.Get("/:id", c.PlantHandler.GetPlantDetails)
	plants.Put("/:id", c.PlantHandler.UpdatePlant)
	plants.Delete("/:id", c.PlantHandler.DeletePlant)
	plants.Post("/image", c.PlantHandler.UploadPlantImage)

	plants.Post("/:id/care-logs", c.PlantHandler.AddCareLog)
	plants.Get("/:id/care-logs", c.PlantHandler.GetCareLogs)
	plants.Put("/:id/care-logs/:logId", c.PlantHandler.UpdateCareLog)
	plants.Delete("/:id/care-logs/:logId", c.PlantHandler.DeleteCareLog)
}

func (c *Config) Reminders() {
	reminders := c.App.Group("/api/v1/reminders", c.Middleware.AuthMiddleware(c.JWTService))

	reminders.Post("", c.ReminderHandler.AddReminder)
	reminders.Get("", c.ReminderHandler.GetReminders)
	reminders.Get("/active", c.ReminderHandler.GetActiveReminder)
	reminders.Post("/active/dismiss", c.ReminderHandler.DismissReminder)
	reminders.Put("/:id", c.ReminderHandler.UpdateReminder)
	reminders.Delete("/:id", c.ReminderHandler.DeleteReminder)
}

func (c *Config) Assistant() {
	assistant := c.App.Group("/api/v1/assistant", c.Middleware.AuthMiddleware(c.JWTService))

	assistant.Post("/identify", c.AssistantHandler.IdentifyPlant)
	assistant.Get("/search", c.AssistantHandler.SearchPlant)
	assistant.Get("/weather", c.AssistantHandler.GetWeather)
	assistant.Get("/tip", c.AssistantHandler.GetCareTip)
	assistant.Post("/sessions/:sessionId/growth-logs", c.AssistantHandler.AddGrowthLog)
	assistant.Get("/sessions/:sessionId/growth-logs", c.AssistantHandler.GetGrowthLog)
}

func (c *Config) Games() {
	games := c.App.Group("/api/v1/games", c.Middleware.AuthMiddleware(c.JWTService))

	games.Get("", c.GameHandler.ListGames)
	games.Get("/:kind", c.GameHandler.GetGame)
	games.Post("/:kind/answer", c.GameHandler.CheckAnswer)
}

func (c *Config) Websocket() {
	c.App.Use("/ws/reminders", ws.UpgradeRequired)
	c.App.Get("/ws/reminders", c.Hub.HandleWS())
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
