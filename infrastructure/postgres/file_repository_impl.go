package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"file-gateway/domain/models"
	"file-gateway/domain/repositories"
)

type FileMetadataRepositoryImpl struct {
	db *gorm.DB
}

func NewFileMetadataRepository(db *gorm.DB) repositories.FileMetadataRepository {
	return &FileMetadataRepositoryImpl{db: db}
}

func (r *FileMetadataRepositoryImpl) Create(ctx context.Context, file *models.FileMetadata) error {
	return r.db.WithContext(ctx).Create(file).Error
}

func (r *FileMetadataRepositoryImpl) GetByID(ctx context.Context, id string) (*models.FileMetadata, error) {
	var file models.FileMetadata
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&file).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *FileMetadataRepositoryImpl) ListByUploader(ctx context.Context, uploadedBy string) ([]*models.FileMetadata, error) {
	var files []*models.FileMetadata
	err := r.db.WithContext(ctx).Where("uploaded_by = ?", uploadedBy).Find(&files).Error
	return files, err
}

func (r *FileMetadataRepositoryImpl) ListAll(ctx context.Context) ([]*models.FileMetadata, error) {
	var files []*models.FileMetadata
	err := r.db.WithContext(ctx).Find(&files).Error
	return files, err
}

func (r *FileMetadataRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.FileMetadata{}).Error
}
