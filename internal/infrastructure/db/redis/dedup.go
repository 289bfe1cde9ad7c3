package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Weekly statistics files stay flagged for two report cycles.
const uploadMarkTTL = 14 * 24 * time.Hour

// UploadDedup flags repeated statistics uploads backed by Redis.
// Key format: upload:<sha256-of-csv-body>
type UploadDedup struct {
	client *redis.Client
}

// NewUploadDedup creates an UploadDedup wrapping the given Redis client.
func NewUploadDedup(client *redis.Client) *UploadDedup {
	return &UploadDedup{client: client}
}

// IsDuplicate reports whether a CSV with this digest was already submitted.
func (d *UploadDedup) IsDuplicate(ctx context.Context, digest string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(digest)).Result()
	if err != nil {
		return false, fmt.Errorf("upload dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records the digest as seen (expires after uploadMarkTTL).
func (d *UploadDedup) Mark(ctx context.Context, digest string) error {
	return d.client.Set(ctx, d.key(digest), "1", uploadMarkTTL).Err()
}

func (d *UploadDedup) key(digest string) string {
	return "upload:" + digest
}
