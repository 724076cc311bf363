package objstore

import (
	"context"
	"io"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// IObjStore is a bucket-scoped object store. All object operations work
// against the configured bucket.
type IObjStore interface {
	Connect(ctx context.Context) error
	ConnectWithRetry(ctx context.Context, maxRetries int) error
	HealthCheck(ctx context.Context) error
	Bucket() string
	EnsureBucket(ctx context.Context) error
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (*ObjectInfo, error)
	Download(ctx context.Context, objectName string) (io.ReadCloser, *ObjectInfo, error)
	Exists(ctx context.Context, objectName string) (bool, error)
	Delete(ctx context.Context, objectName string) error
	Close() error
}

// NewObjStore creates an object store client. Returns the interface.
func NewObjStore(cfg ObjStoreConfig) (IObjStore, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	transport := &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
		DisableCompression:  true,
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, NewConnectionError(err)
	}

	return &objStoreImpl{
		client: client,
		config: cfg,
	}, nil
}
