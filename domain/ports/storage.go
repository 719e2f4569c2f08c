package ports

import (
	"context"
	"time"
)

// StoragePort abstracts the blob store behind the two-step logo upload:
// the caller gets a presigned PUT target, uploads out-of-band, then
// registers the key. Retrieval resolves a key to a fetchable URL.
type StoragePort interface {
	// PresignedPutURL returns a one-time upload target for the key.
	PresignedPutURL(ctx context.Context, key string, expiry time.Duration) (string, error)

	// PresignedGetURL resolves a stored key to a fetchable URL.
	PresignedGetURL(ctx context.Context, key string, expiry time.Duration) (string, error)

	// StatObject returns metadata for an uploaded blob. Used to verify an
	// upload actually happened before registration.
	StatObject(ctx context.Context, key string) (ObjectInfo, error)

	// ListObjects returns every object under the prefix.
	ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error)

	// RemoveObject deletes a blob. Used by the orphan sweep.
	RemoveObject(ctx context.Context, key string) error

	// GetProviderName names the backing provider (s3, minio, r2).
	GetProviderName() string
}

// ObjectInfo is the subset of blob metadata the application cares about.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}
