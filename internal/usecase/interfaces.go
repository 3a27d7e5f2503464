package usecase

import (
	"context"
	"io"
	"time"
)

// CacheStore is the key-value cache the catalog reads through. The cache is
// an optimization, not a correctness dependency: adapters swallow read/write
// failures (a failed read is a miss), while delete operations report errors
// so the invalidation path can log them.
type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, keys ...string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// ImageUploader resolves raw image bytes into a serving URL.
type ImageUploader interface {
	UploadProductImage(ctx context.Context, file io.Reader, contentType string) (string, error)
}
