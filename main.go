package main

import (
	"log"

	"gyangrit/config"
	"gyangrit/database"
	"gyangrit/routers/adminRoutes"
	"gyangrit/routers/analyticsRoutes"
	"gyangrit/routers/assessmentRoutes"
	"gyangrit/routers/authRoutes"
	"gyangrit/routers/contentRoutes"
	"gyangrit/routers/learningRoutes"
	"gyangrit/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "gyangrit-backend"})
	})

	authRoutes.SetupAuthRoutes(app)
	contentRoutes.SetupContentRoutes(app)
	assessmentRoutes.SetupAssessmentRoutes(app)
	learningRoutes.SetupLearningRoutes(app)
	analyticsRoutes.SetupAnalyticsRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	utils.StartReminderScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
