package services

import (
	"context"
	"io"

	"file-gateway/domain/dto"
	"file-gateway/domain/models"
)

// FileService holds the gateway's business rules: upload validation, the
// fixed object-write-before-row-write ordering, and access URL generation.
type FileService interface {
	// Upload validates the input, writes the payload to the object store and
	// then persists the metadata row.
	Upload(ctx context.Context, input *dto.UploadInput) (*models.FileMetadata, error)

	// Download opens the stored payload. The caller closes the stream.
	Download(ctx context.Context, id string) (io.ReadCloser, *models.FileMetadata, error)

	GetInfo(ctx context.Context, id string) (*models.FileMetadata, error)
	ListByUploader(ctx context.Context, uploadedBy string) ([]*models.FileMetadata, error)
	ListAll(ctx context.Context) ([]*models.FileMetadata, error)

	// Delete removes the object first, then the metadata row.
	Delete(ctx context.Context, id string) error

	// PresignedDownloadURL issues a time-limited GET URL for an existing file.
	PresignedDownloadURL(ctx context.Context, id string, expiryMinutes int) (*dto.PresignedURLResponse, error)

	// PresignedUploadURL issues a time-limited PUT URL for a freshly generated
	// stored name. No metadata row is created; a file uploaded through the
	// URL is not visible to lookup or listing.
	PresignedUploadURL(ctx context.Context, fileName string, expiryMinutes int) (*dto.PresignedURLResponse, error)
}
