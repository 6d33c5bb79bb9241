package dto

import (
	"file-gateway/domain/models"
)

// FileToFileResponse maps a metadata row to its API shape. The download URL
// is synthesized, not stored: /files/{id}/download.
func FileToFileResponse(m *models.FileMetadata) *FileResponse {
	return &FileResponse{
		ID:           m.ID,
		OriginalName: m.OriginalName,
		ContentType:  m.ContentType,
		Size:         m.Size,
		Extension:    m.Extension,
		UploadedBy:   m.UploadedBy,
		DownloadURL:  "/files/" + m.ID + "/download",
		CreatedAt:    m.CreatedAt,
	}
}

func FilesToFileResponses(files []*models.FileMetadata) []FileResponse {
	responses := make([]FileResponse, len(files))
	for i, f := range files {
		responses[i] = *FileToFileResponse(f)
	}
	return responses
}
