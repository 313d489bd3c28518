package main

import (
	"context"
	"os"

	"orgbook-backend/internal/cli"
	"orgbook-backend/internal/config"
	"orgbook-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

//	@title			OrgBook API
//	@version		1.0
//	@description	Directory of employees, the topics they know and the teams they belong to.

//	@host		localhost:7008
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stderr)
	logger.SetLevel(cfg.LogLevel)

	if err := cli.NewRootCmd(cfg).ExecuteContext(context.Background()); err != nil {
		logrus.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}
