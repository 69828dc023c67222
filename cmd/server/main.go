package main

import (
	"os"

	"github.com/Azz3m90/LandPage/internal/config"
	"github.com/Azz3m90/LandPage/internal/logging"
	"github.com/Azz3m90/LandPage/internal/server"
	"github.com/Azz3m90/LandPage/internal/version"
)

func main() {
	// Set development environment variables
	if os.Getenv("ENV") != "production" {
		os.Setenv("ENV", "development")
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize logger configuration
	logConfig := &logging.LogConfig{
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}

	// Configure and get logger
	if err := logging.InitLogger(logConfig); err != nil {
		panic(err)
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	logger.Info("Starting %s in %s mode", version.Info(), cfg.Environment)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration: %v", err)
		os.Exit(1)
	}

	// Create and start server
	srv := server.NewServer(cfg)

	logger.Info("Listening on port %s", cfg.Port)
	if err := srv.Start(); err != nil {
		logger.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}
