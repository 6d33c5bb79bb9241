package repositories

import (
	"context"
	"errors"

	"file-gateway/domain/models"
)

// ErrNotFound is returned by GetByID when no row matches the identifier.
// Infrastructure failures are returned as-is so callers can tell an unknown
// id apart from an unreachable store.
var ErrNotFound = errors.New("file metadata not found")

// FileMetadataRepository is the metadata store, keyed by file identifier.
// Listing methods return rows in the store's natural (insertion) order.
type FileMetadataRepository interface {
	Create(ctx context.Context, file *models.FileMetadata) error
	GetByID(ctx context.Context, id string) (*models.FileMetadata, error)
	ListByUploader(ctx context.Context, uploadedBy string) ([]*models.FileMetadata, error)
	ListAll(ctx context.Context) ([]*models.FileMetadata, error)
	Delete(ctx context.Context, id string) error
}
