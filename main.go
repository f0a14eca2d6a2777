package main

import (
	"bat-go/internal/config"
	"bat-go/internal/database"
	logger "bat-go/internal/logging"
	"bat-go/internal/models"
	"bat-go/internal/router"
	"bat-go/internal/services"

	"go.uber.org/zap"
)

func main() {
	// Initialize Logger
	log, err := logger.Init(".")
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// Load configuration
	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize Database
	database.Init(log)

	// Load the BAT instrument definition at startup
	instrument, err := models.LoadInstrument(config.Conf.Server.InstrumentFile)
	if err != nil {
		log.Fatal("Failed to load instrument", zap.Error(err))
	}

	// Start the reminder scheduler
	emailService := services.NewEmailService(log)
	scheduler := services.NewScheduler(log, emailService)
	scheduler.Start()

	// Setup router, passing the logger to it
	r := router.Setup(log, instrument)

	// Start the Gin server
	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
