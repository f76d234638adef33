package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yanqian/outfitter/internal/domain/wardrobe"
)

const singlePartLimit = 5 * 1024 * 1024

// R2Storage keeps garment photos in Cloudflare R2 through its S3-compatible API.
type R2Storage struct {
	client *minio.Client
	bucket string
	logger *slog.Logger
}

// NewR2Storage constructs the storage adapter.
func NewR2Storage(endpoint, accessKey, secretKey, bucket, region string, logger *slog.Logger) (*R2Storage, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client, err := minio.New(sanitizeEndpoint(endpoint), &minio.Options{
		Creds:        credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure:       !strings.HasPrefix(strings.ToLower(strings.TrimSpace(endpoint)), "http://"),
		Region:       region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init r2 client: %w", err)
	}
	return &R2Storage{client: client, bucket: bucket, logger: logger.With("component", "storage.r2")}, nil
}

func (s *R2Storage) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err == nil && exists {
		return nil
	}
	err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
	if err != nil && minio.ToErrorResponse(err).Code != "BucketAlreadyOwnedByYou" {
		return err
	}
	s.logger.Info("created bucket", "bucket", s.bucket)
	return nil
}

// Put uploads a photo.
func (s *R2Storage) Put(ctx context.Context, key string, data []byte, mimeType string) (wardrobe.StoredObject, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return wardrobe.StoredObject{}, err
	}
	info, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:      mimeType,
		DisableMultipart: len(data) < singlePartLimit,
	})
	if err != nil {
		return wardrobe.StoredObject{}, err
	}
	return wardrobe.StoredObject{
		Key:      key,
		Size:     info.Size,
		MimeType: mimeType,
		ETag:     info.ETag,
	}, nil
}

// Get opens a photo for streaming. Missing keys fail before a reader is returned.
func (s *R2Storage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, translateGetError(key, err)
	}
	if _, statErr := obj.Stat(); statErr != nil {
		_ = obj.Close()
		return nil, translateGetError(key, statErr)
	}
	return obj, nil
}

// translateGetError folds S3 missing-object responses into os.ErrNotExist.
func translateGetError(key string, err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return fmt.Errorf("object %q: %w", key, os.ErrNotExist)
	default:
		return fmt.Errorf("get object %q: %w", key, err)
	}
}

// Delete removes a photo.
func (s *R2Storage) Delete(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

var _ wardrobe.ObjectStorage = (*R2Storage)(nil)

// sanitizeEndpoint strips scheme and path, which minio.New rejects.
func sanitizeEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	host, _, _ := strings.Cut(raw, "/")
	return host
}
