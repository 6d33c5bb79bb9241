package routes

import (
	"github.com/gofiber/fiber/v2"

	"file-gateway/interfaces/api/handlers"
	"file-gateway/interfaces/api/middleware"
)

func SetupFileRoutes(app *fiber.App, h *handlers.Handlers, jwtSecret string) {
	files := app.Group("/files")
	files.Use(middleware.Protected(jwtSecret))

	// Static paths before the :id wildcard.
	files.Get("/my", h.FileHandler.GetMyFiles)
	files.Post("/presigned/upload", h.FileHandler.GetPresignedUploadURL)

	files.Post("/", h.FileHandler.UploadFile)
	files.Get("/", h.FileHandler.ListFiles)
	files.Get("/:id", h.FileHandler.GetFileInfo)
	files.Get("/:id/download", h.FileHandler.DownloadFile)
	files.Get("/:id/presigned", h.FileHandler.GetPresignedDownloadURL)
	files.Delete("/:id", h.FileHandler.DeleteFile)
}
