package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"file-gateway/interfaces/api/handlers"
	"file-gateway/interfaces/api/middleware"
	"file-gateway/interfaces/api/routes"
	"file-gateway/pkg/di"
	"file-gateway/pkg/logger"
)

func main() {
	container := di.NewContainer()

	if err := container.Initialize(); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	setupGracefulShutdown(container)

	app := fiber.New(fiber.Config{
		ErrorHandler:      middleware.ErrorHandler(),
		AppName:           container.Config.App.Name,
		BodyLimit:         int(container.Config.File.MaxFileSize) + 1024*1024,
		StreamRequestBody: true,
	})

	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CorsMiddleware())

	h := handlers.NewHandlers(container.FileService)
	routes.SetupRoutes(app, h, container.Config.JWT.Secret)

	port := container.Config.App.Port
	logger.Info("Server starting",
		"port", port,
		"env", container.Config.App.Env,
		"bucket", container.Config.Storage.Bucket,
	)

	if err := app.Listen(":" + port); err != nil {
		logger.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

func setupGracefulShutdown(container *di.Container) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Gracefully shutting down...")

		if err := container.Cleanup(); err != nil {
			logger.Error("Error during cleanup", "error", err)
		}

		logger.Info("Shutdown complete")
		os.Exit(0)
	}()
}
