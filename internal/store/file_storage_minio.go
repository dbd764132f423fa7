package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/voy/internal/config"
	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/models"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const minioSetupTimeout = 10 * time.Second

// minioFileStorage keeps document files in an S3-compatible bucket.
type minioFileStorage struct {
	client *minio.Client
	bucket string
	logger *logger.Logger
}

// NewMinIOFileStorage connects to the configured endpoint and makes sure the
// bucket exists.
func NewMinIOFileStorage(ctx context.Context, cfg config.MinIO, logger *logger.Logger) (FileStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	s := &minioFileStorage{
		client: client,
		bucket: cfg.Bucket,
		logger: logger,
	}

	ctx, cancel := context.WithTimeout(ctx, minioSetupTimeout)
	defer cancel()

	if err = s.ensureBucket(ctx, cfg.Region); err != nil {
		return nil, err
	}

	logger.Debug().Str("bucket", cfg.Bucket).Msg("creating minio file storage")
	return s, nil
}

func (s *minioFileStorage) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check if bucket exists: %w", err)
	}

	if !exists {
		err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

func (s *minioFileStorage) PutObject(ctx context.Context, key string, content io.Reader, size int64, contentType string) error {
	log := logger.FromContext(ctx)

	_, err := s.client.PutObject(ctx, s.bucket, key, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		log.Err(err).Str("func", "*minioFileStorage.PutObject").Str("key", key).Msg("failed to upload object")
		return fmt.Errorf("upload object: %w", err)
	}

	return nil
}

func (s *minioFileStorage) GetObject(ctx context.Context, key string) (models.StoredObject, error) {
	object, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return models.StoredObject{}, s.mapError(err)
	}

	// GetObject is lazy; Stat issues the request.
	info, err := object.Stat()
	if err != nil {
		object.Close()
		return models.StoredObject{}, s.mapError(err)
	}

	return models.StoredObject{
		Content:     object,
		ContentType: info.ContentType,
		Size:        info.Size,
	}, nil
}

// RemoveObject deletes the object. S3 treats a missing key as success.
func (s *minioFileStorage) RemoveObject(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *minioFileStorage) mapError(err error) error {
	var errResp minio.ErrorResponse
	if errors.As(err, &errResp) && (errResp.Code == "NoSuchKey" || errResp.Code == "NotFound") {
		return ErrObjectNotFound
	}
	return fmt.Errorf("object storage: %w", err)
}
