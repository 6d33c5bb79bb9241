package ports

import (
	"context"
	"io"
	"time"
)

// ObjectStorage is the capability facade over the object store. Objects are
// addressed by bucket and key; everything else about the store is opaque.
type ObjectStorage interface {
	// Put writes an object. size is the exact byte count of reader.
	Put(ctx context.Context, bucket, key string, reader io.Reader, size int64, contentType string) error

	// Get opens a read stream for an object. The caller closes it.
	Get(ctx context.Context, bucket, key string) (io.ReadCloser, error)

	// Remove deletes an object.
	Remove(ctx context.Context, bucket, key string) error

	// PresignedGetURL returns a time-limited URL for direct GET access.
	PresignedGetURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)

	// PresignedPutURL returns a time-limited URL for direct PUT access.
	PresignedPutURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)

	// EnsureBucket creates the bucket if it does not exist. Idempotent.
	EnsureBucket(ctx context.Context, bucket string) error
}
