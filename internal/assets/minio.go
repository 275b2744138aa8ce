package assets

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"inkwell/internal/domain"
)

// MinioStore keeps assets in an S3-compatible bucket via minio-go.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// MinioConfig holds the connection settings for an S3-compatible endpoint
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// NewMinioStore connects to the endpoint and ensures the bucket exists
func NewMinioStore(ctx context.Context, cfg MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect object storage: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
	}

	return &MinioStore{client: client, bucket: cfg.Bucket}, nil
}

// Put stores an object under name
func (s *MinioStore) Put(ctx context.Context, name, contentType string, r io.Reader, size int64) error {
	_, err := s.client.PutObject(ctx, s.bucket, name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put asset %s: %w", name, err)
	}
	return nil
}

// Open returns a reader over the named object, or domain.ErrNotFound
func (s *MinioStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get asset %s: %w", name, err)
	}

	// GetObject is lazy; Stat surfaces missing keys before the first read
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("asset %s: %w", name, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("stat asset %s: %w", name, err)
	}

	return obj, nil
}
