package publish

import (
	"bytes"
	"context"
	"fmt"

	"search-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// MirrorTarget uploads the index document to an S3-compatible bucket.
type MirrorTarget struct {
	client storage.Client
	bucket string
	object string
}

// NewMirrorTarget creates an object-storage mirror target.
func NewMirrorTarget(client storage.Client, bucket, object string) *MirrorTarget {
	return &MirrorTarget{
		client: client,
		bucket: bucket,
		object: object,
	}
}

func (t *MirrorTarget) Name() string {
	return fmt.Sprintf("s3:%s/%s", t.bucket, t.object)
}

// Ensure verifies the mirror bucket is reachable, creating it if needed.
func (t *MirrorTarget) Ensure(ctx context.Context) error {
	exists, err := t.client.BucketExists(ctx, t.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", t.bucket, err)
	}
	if exists {
		return nil
	}
	if err := t.client.MakeBucket(ctx, t.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", t.bucket, err)
	}
	return nil
}

func (t *MirrorTarget) Publish(ctx context.Context, data []byte) error {
	_, err := t.client.PutObject(ctx, t.bucket, t.object,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("put object %s: %w", t.object, err)
	}
	return nil
}
