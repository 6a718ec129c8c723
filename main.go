package main

import (
	"log"

	"vehicle-leasing/cmd"
	"vehicle-leasing/internal/data/repository"
	"vehicle-leasing/internal/jobs"
	"vehicle-leasing/internal/notifier"
	"vehicle-leasing/internal/wire"
	"vehicle-leasing/pkg/database"
	"vehicle-leasing/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Welcome emails go through Brevo when a key is configured
	var notif notifier.Notifier = notifier.Noop{}
	if config.Email.APIKey != "" {
		notif = notifier.NewBrevoNotifier(config.Email, logger)
	} else {
		logger.Warn("No email API key configured, welcome emails disabled")
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, notif, logger)

	// Background jobs
	scheduler, err := jobs.NewScheduler(repos, config, logger)
	if err != nil {
		logger.Fatal("Failed to set up job scheduler", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
