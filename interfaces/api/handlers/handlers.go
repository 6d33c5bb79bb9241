package handlers

import (
	"file-gateway/domain/services"
)

// Handlers bundles every HTTP handler for route registration.
type Handlers struct {
	FileHandler *FileHandler
}

func NewHandlers(fileService services.FileService) *Handlers {
	return &Handlers{
		FileHandler: NewFileHandler(fileService),
	}
}
