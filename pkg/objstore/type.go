package objstore

import (
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
)

// ObjStoreConfig holds object store connection settings.
type ObjStoreConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	Bucket    string
	UseSSL    bool
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key          string            `json:"key"`
	Size         int64             `json:"size"`
	ContentType  string            `json:"content_type"`
	ETag         string            `json:"etag"`
	LastModified time.Time         `json:"last_modified"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// objStoreImpl implements IObjStore.
type objStoreImpl struct {
	client    *minio.Client
	config    ObjStoreConfig
	mu        sync.RWMutex
	connected bool
}
