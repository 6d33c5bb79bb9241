package dto

import (
	"io"
	"time"
)

// UploadInput carries one multipart upload into the file service. Size and
// ContentType are the uploader's declarations; Size must match the actual
// byte count for the stored object to be served correctly.
type UploadInput struct {
	Content      io.Reader
	OriginalName string
	ContentType  string
	Size         int64
	UploadedBy   string
}

type FileResponse struct {
	ID           string    `json:"id"`
	OriginalName string    `json:"originalName"`
	ContentType  string    `json:"contentType"`
	Size         int64     `json:"size"`
	Extension    string    `json:"extension"`
	UploadedBy   string    `json:"uploadedBy"`
	DownloadURL  string    `json:"downloadUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

type PresignedURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// PresignedUploadRequest is the query surface of POST /files/presigned/upload.
type PresignedUploadRequest struct {
	FileName      string `query:"fileName" validate:"required,min=1,max=255"`
	ExpiryMinutes int    `query:"expiryMinutes" validate:"omitempty,min=1,max=10080"`
}
