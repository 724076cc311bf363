package objstore

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

func (s *objStoreImpl) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.client.ListBuckets(ctx); err != nil {
		s.connected = false
		return handleError(err, "connect")
	}
	s.connected = true
	return nil
}

func (s *objStoreImpl) ConnectWithRetry(ctx context.Context, maxRetries int) error {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if err := s.Connect(ctx); err == nil {
			return nil
		} else {
			lastErr = err
		}
		backoff := time.Duration(1<<uint(i)) * time.Second
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("objstore: connect after %d retries: %w", maxRetries, lastErr)
}

func (s *objStoreImpl) HealthCheck(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.connected {
		return NewConnectionError(fmt.Errorf("not connected"))
	}
	if _, err := s.client.ListBuckets(ctx); err != nil {
		return handleError(err, "health_check")
	}
	return nil
}

// Bucket returns the configured bucket name.
func (s *objStoreImpl) Bucket() string {
	return s.config.Bucket
}

// EnsureBucket creates the configured bucket when it does not exist yet.
func (s *objStoreImpl) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.config.Bucket)
	if err != nil {
		return handleError(err, "bucket_exists")
	}
	if exists {
		return nil
	}
	opts := minio.MakeBucketOptions{Region: s.config.Region}
	if err := s.client.MakeBucket(ctx, s.config.Bucket, opts); err != nil {
		return handleError(err, "make_bucket")
	}
	return nil
}

func (s *objStoreImpl) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (*ObjectInfo, error) {
	if err := validateObjectName(objectName); err != nil {
		return nil, err
	}
	if reader == nil {
		return nil, NewInvalidInputError("reader is required")
	}
	if size <= 0 || size > MaxObjectSizeBytes {
		return nil, NewInvalidInputError("size must be positive and within the 5GB limit")
	}

	info, err := s.client.PutObject(ctx, s.config.Bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, handleError(err, "upload")
	}
	return &ObjectInfo{
		Key:          objectName,
		Size:         info.Size,
		ContentType:  contentType,
		ETag:         info.ETag,
		LastModified: time.Now(),
	}, nil
}

// Download stats the object first so a missing key fails here instead of on
// the first read.
func (s *objStoreImpl) Download(ctx context.Context, objectName string) (io.ReadCloser, *ObjectInfo, error) {
	if err := validateObjectName(objectName); err != nil {
		return nil, nil, err
	}

	stat, err := s.client.StatObject(ctx, s.config.Bucket, objectName, minio.StatObjectOptions{})
	if err != nil {
		return nil, nil, handleError(err, "stat")
	}
	object, err := s.client.GetObject(ctx, s.config.Bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, handleError(err, "download")
	}
	return object, &ObjectInfo{
		Key:          objectName,
		Size:         stat.Size,
		ContentType:  stat.ContentType,
		ETag:         stat.ETag,
		LastModified: stat.LastModified,
		Metadata:     stat.UserMetadata,
	}, nil
}

func (s *objStoreImpl) Exists(ctx context.Context, objectName string) (bool, error) {
	if err := validateObjectName(objectName); err != nil {
		return false, err
	}
	_, err := s.client.StatObject(ctx, s.config.Bucket, objectName, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if mapped := handleError(err, "stat"); IsNotFound(mapped) {
		return false, nil
	} else {
		return false, mapped
	}
}

func (s *objStoreImpl) Delete(ctx context.Context, objectName string) error {
	if err := validateObjectName(objectName); err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.config.Bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return handleError(err, "delete")
	}
	return nil
}

func (s *objStoreImpl) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = false
	return nil
}
