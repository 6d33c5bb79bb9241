package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"file-gateway/domain/dto"
	"file-gateway/domain/models"
	"file-gateway/domain/ports"
	"file-gateway/domain/repositories"
	"file-gateway/domain/services"
	"file-gateway/pkg/config"
	"file-gateway/pkg/logger"
	"file-gateway/pkg/utils"
)

type FileServiceImpl struct {
	fileRepo    repositories.FileMetadataRepository
	storage     ports.ObjectStorage
	bucket      string
	allowedExts map[string]struct{}
	maxFileSize int64
}

func NewFileService(
	fileRepo repositories.FileMetadataRepository,
	storage ports.ObjectStorage,
	bucket string,
	fileCfg config.FileConfig,
) services.FileService {
	allowed := make(map[string]struct{}, len(fileCfg.AllowedExtensions))
	for _, ext := range fileCfg.AllowedExtensions {
		allowed[strings.ToLower(ext)] = struct{}{}
	}

	return &FileServiceImpl{
		fileRepo:    fileRepo,
		storage:     storage,
		bucket:      bucket,
		allowedExts: allowed,
		maxFileSize: fileCfg.MaxFileSize,
	}
}

func (s *FileServiceImpl) Upload(ctx context.Context, input *dto.UploadInput) (*models.FileMetadata, error) {
	if input == nil || input.Content == nil || input.Size == 0 {
		return nil, ErrEmptyFile
	}

	if input.Size > s.maxFileSize {
		return nil, fmt.Errorf("%w (max: %dMB)", ErrFileTooLarge, s.maxFileSize/1024/1024)
	}

	extension := strings.ToLower(utils.FileExtension(input.OriginalName))
	if err := s.validateExtension(extension); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	storedName := generateStoredName(id, extension)

	logger.InfoContext(ctx, "Uploading file to storage",
		"uploaded_by", input.UploadedBy, "stored_name", storedName, "size", input.Size)

	// Object write before metadata write. A crash between the two leaves an
	// orphaned object; there is no automatic cleanup.
	err := s.storage.Put(ctx, s.bucket, storedName, input.Content, input.Size, input.ContentType)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to write object", "stored_name", storedName, "error", err)
		return nil, ErrStorageWrite
	}

	metadata := &models.FileMetadata{
		ID:           id,
		OriginalName: input.OriginalName,
		StoredName:   storedName,
		ContentType:  input.ContentType,
		Size:         input.Size,
		Extension:    extension,
		UploadedBy:   input.UploadedBy,
		BucketName:   s.bucket,
	}

	if err := s.fileRepo.Create(ctx, metadata); err != nil {
		logger.ErrorContext(ctx, "Failed to save file metadata, object is orphaned",
			"file_id", id, "stored_name", storedName, "error", err)
		return nil, fmt.Errorf("save file metadata: %w", err)
	}

	logger.InfoContext(ctx, "File uploaded",
		"file_id", id, "original_name", input.OriginalName, "stored_name", storedName)

	return metadata, nil
}

func (s *FileServiceImpl) Download(ctx context.Context, id string) (io.ReadCloser, *models.FileMetadata, error) {
	metadata, err := s.getMetadata(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, metadata.BucketName, metadata.StoredName)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to open object",
			"file_id", id, "stored_name", metadata.StoredName, "error", err)
		return nil, nil, ErrStorageRead
	}

	return stream, metadata, nil
}

func (s *FileServiceImpl) GetInfo(ctx context.Context, id string) (*models.FileMetadata, error) {
	return s.getMetadata(ctx, id)
}

func (s *FileServiceImpl) ListByUploader(ctx context.Context, uploadedBy string) ([]*models.FileMetadata, error) {
	files, err := s.fileRepo.ListByUploader(ctx, uploadedBy)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list files by uploader", "uploaded_by", uploadedBy, "error", err)
		return nil, err
	}
	return files, nil
}

func (s *FileServiceImpl) ListAll(ctx context.Context) ([]*models.FileMetadata, error) {
	files, err := s.fileRepo.ListAll(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list files", "error", err)
		return nil, err
	}
	return files, nil
}

func (s *FileServiceImpl) Delete(ctx context.Context, id string) error {
	metadata, err := s.getMetadata(ctx, id)
	if err != nil {
		return err
	}

	// Object delete before row delete. On failure the row stays so the
	// inconsistency is visible instead of silently losing the pointer.
	err = s.storage.Remove(ctx, metadata.BucketName, metadata.StoredName)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to remove object",
			"file_id", id, "stored_name", metadata.StoredName, "error", err)
		return ErrStorageDelete
	}

	if err := s.fileRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete metadata row, object already removed",
			"file_id", id, "stored_name", metadata.StoredName, "error", err)
		return fmt.Errorf("delete file metadata: %w", err)
	}

	logger.InfoContext(ctx, "File deleted", "file_id", id, "stored_name", metadata.StoredName)
	return nil
}

func (s *FileServiceImpl) PresignedDownloadURL(ctx context.Context, id string, expiryMinutes int) (*dto.PresignedURLResponse, error) {
	metadata, err := s.getMetadata(ctx, id)
	if err != nil {
		return nil, err
	}

	expiry := time.Duration(expiryMinutes) * time.Minute
	url, err := s.storage.PresignedGetURL(ctx, metadata.BucketName, metadata.StoredName, expiry)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to presign download URL",
			"file_id", id, "stored_name", metadata.StoredName, "error", err)
		return nil, ErrPresign
	}

	// Computed locally, not read back from the store. Assumes clock
	// agreement between the gateway and the object store.
	return &dto.PresignedURLResponse{
		URL:       url,
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}

func (s *FileServiceImpl) PresignedUploadURL(ctx context.Context, fileName string, expiryMinutes int) (*dto.PresignedURLResponse, error) {
	extension := strings.ToLower(utils.FileExtension(fileName))
	if err := s.validateExtension(extension); err != nil {
		return nil, err
	}

	storedName := generateStoredName(uuid.New().String(), extension)

	expiry := time.Duration(expiryMinutes) * time.Minute
	url, err := s.storage.PresignedPutURL(ctx, s.bucket, storedName, expiry)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to presign upload URL",
			"stored_name", storedName, "error", err)
		return nil, ErrPresign
	}

	// No metadata row is created here. A file pushed through this URL stays
	// invisible to lookup and listing until registered separately.
	logger.InfoContext(ctx, "Presigned upload URL issued",
		"file_name", fileName, "stored_name", storedName, "expiry_minutes", expiryMinutes)

	return &dto.PresignedURLResponse{
		URL:       url,
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}

// getMetadata loads a row, keeping an unknown id distinct from a failing
// store: only the repository's not-found sentinel becomes ErrFileNotFound,
// everything else propagates as an uncategorized failure.
func (s *FileServiceImpl) getMetadata(ctx context.Context, id string) (*models.FileMetadata, error) {
	metadata, err := s.fileRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		logger.WarnContext(ctx, "File not found", "file_id", id)
		return nil, ErrFileNotFound
	}
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load file metadata", "file_id", id, "error", err)
		return nil, fmt.Errorf("get file metadata: %w", err)
	}
	return metadata, nil
}

func (s *FileServiceImpl) validateExtension(extension string) error {
	if _, ok := s.allowedExts[extension]; !ok {
		return fmt.Errorf("%w: %s", ErrExtensionNotAllowed, extension)
	}
	return nil
}

func generateStoredName(id, extension string) string {
	if extension == "" {
		return id
	}
	return id + "." + extension
}
