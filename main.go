package main

import (
	"log"
	"os"

	"github.com/appleman9709/bcb-with-db/config"
	"github.com/appleman9709/bcb-with-db/controllers"
	"github.com/appleman9709/bcb-with-db/middlewares"
	"github.com/appleman9709/bcb-with-db/repositories/impl"
	"github.com/appleman9709/bcb-with-db/routes"
	"github.com/appleman9709/bcb-with-db/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	logger, err := config.NewLogger(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	if err != nil {
		log.Fatal("failed to build logger:", err)
	}
	defer logger.Sync()

	db, err := config.OpenDatabase()
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	logger.Info("connected to database")

	// Initialize repositories
	familyRepo := impl.NewFamilyRepository(db)
	eventRepo := impl.NewEventRepository(db)
	sleepRepo := impl.NewSleepRepository(db)
	settingsRepo := impl.NewSettingsRepository(db)

	// Initialize services
	familyService := services.NewFamilyService(familyRepo)
	dashboardService := services.NewDashboardService(familyRepo, settingsRepo, eventRepo, sleepRepo)
	historyService := services.NewHistoryService(familyRepo, eventRepo)
	eventService := services.NewEventService(eventRepo)
	sleepService := services.NewSleepService(sleepRepo)
	settingsService := services.NewSettingsService(familyRepo, settingsRepo)

	handlers := &controllers.Handlers{
		Health:    controllers.NewHealthController(),
		Family:    controllers.NewFamilyController(familyService),
		Dashboard: controllers.NewDashboardController(dashboardService),
		History:   controllers.NewHistoryController(historyService),
		Events:    controllers.NewEventController(eventService),
		Sleep:     controllers.NewSleepController(sleepService),
		Settings:  controllers.NewSettingsController(settingsService),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(logger))
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, handlers)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	logger.Info("starting server", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
