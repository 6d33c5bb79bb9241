package models

import (
	"time"
)

// FileMetadata is the record of one uploaded file. Every row has a matching
// object at (BucketName, StoredName); the two are created and destroyed
// together, without a cross-store transaction.
type FileMetadata struct {
	ID           string `gorm:"primaryKey;size:36"`
	OriginalName string `gorm:"not null"`
	StoredName   string `gorm:"not null;uniqueIndex"`
	ContentType  string
	Size         int64
	Extension    string
	UploadedBy   string `gorm:"not null;index"`
	BucketName   string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (FileMetadata) TableName() string {
	return "file_metadata"
}
