package routes

import (
	"github.com/gofiber/fiber/v2"

	"file-gateway/interfaces/api/handlers"
)

// SetupRoutes registers every route on the app.
func SetupRoutes(app *fiber.App, h *handlers.Handlers, jwtSecret string) {
	SetupHealthRoutes(app)
	SetupFileRoutes(app, h, jwtSecret)
}
