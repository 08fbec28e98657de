package storage

import (
	"context"
	"time"
)

type ObjectStore interface {
	Upload(ctx context.Context, bucket, path string, data []byte, contentType string) error
	CreateSignedURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, error)
}

var _ ObjectStore = (*SupabaseStore)(nil)
