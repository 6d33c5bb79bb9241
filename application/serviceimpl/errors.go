package serviceimpl

import "errors"

// Validation failures are raised before any store is touched and propagate
// unmodified to the HTTP boundary. Storage failures are logged with their
// cause and surfaced as these generic sentinels; the low-level error text
// never reaches the caller.
var (
	ErrEmptyFile           = errors.New("file is empty")
	ErrFileTooLarge        = errors.New("file size exceeds the limit")
	ErrExtensionNotAllowed = errors.New("file extension is not allowed")
	ErrFileNotFound        = errors.New("file not found")

	ErrStorageWrite  = errors.New("failed to store file")
	ErrStorageRead   = errors.New("failed to read file from storage")
	ErrStorageDelete = errors.New("failed to delete file from storage")
	ErrPresign       = errors.New("failed to generate presigned URL")
)

// IsStorageError reports whether err is one of the object-store failure
// sentinels.
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorageWrite) ||
		errors.Is(err, ErrStorageRead) ||
		errors.Is(err, ErrStorageDelete) ||
		errors.Is(err, ErrPresign)
}
