package objstore

import (
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
)

func TestValidateConfig(t *testing.T) {
	valid := func() ObjStoreConfig {
		return ObjStoreConfig{
			Endpoint:  "localhost:9000",
			AccessKey: "minio",
			SecretKey: "minio123",
			Bucket:    "batches",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*ObjStoreConfig)
		wantErr bool
	}{
		{"ok", func(c *ObjStoreConfig) {}, false},
		{"no endpoint", func(c *ObjStoreConfig) { c.Endpoint = "" }, true},
		{"no access key", func(c *ObjStoreConfig) { c.AccessKey = "" }, true},
		{"no secret key", func(c *ObjStoreConfig) { c.SecretKey = "" }, true},
		{"no bucket", func(c *ObjStoreConfig) { c.Bucket = "" }, true},
		{"bucket too short", func(c *ObjStoreConfig) { c.Bucket = "ab" }, true},
		{"bucket uppercase", func(c *ObjStoreConfig) { c.Bucket = "Batches" }, true},
		{"bucket leading hyphen", func(c *ObjStoreConfig) { c.Bucket = "-batches" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := validateConfig(&cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfig(%+v) = %v, wantErr %v", cfg, err, tt.wantErr)
			}
		})
	}
}

func TestValidateConfigAppendsDefaultPort(t *testing.T) {
	cfg := ObjStoreConfig{Endpoint: "minio.internal", AccessKey: "k", SecretKey: "s", Bucket: "batches"}
	if err := validateConfig(&cfg); err != nil {
		t.Fatalf("validateConfig: %v", err)
	}
	if cfg.Endpoint != "minio.internal:9000" {
		t.Errorf("endpoint = %q, want default port appended", cfg.Endpoint)
	}
}

func TestValidateObjectName(t *testing.T) {
	tests := []struct {
		name    string
		object  string
		wantErr bool
	}{
		{"ok", "batches/2026/08/b-1.jsonl", false},
		{"empty", "", true},
		{"leading slash", "/b-1.jsonl", true},
		{"trailing slash", "batches/", true},
		{"backslash", `batches\b-1`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateObjectName(tt.object)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateObjectName(%q) = %v, wantErr %v", tt.object, err, tt.wantErr)
			}
		})
	}
}

func TestHandleErrorMapsCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"missing key", minio.ErrorResponse{Code: "NoSuchKey", Message: "key does not exist"}, ErrCodeNotFound},
		{"missing bucket", minio.ErrorResponse{Code: "NoSuchBucket", Message: "bucket does not exist"}, ErrCodeNotFound},
		{"access denied", minio.ErrorResponse{Code: "AccessDenied"}, ErrCodePermission},
		{"other backend code", minio.ErrorResponse{Code: "SlowDown"}, ErrCodeConnection},
		{"transport error", errors.New("connection refused"), ErrCodeConnection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := handleError(tt.err, "stat")
			var se *StorageError
			if !errors.As(mapped, &se) {
				t.Fatalf("handleError returned %T, want *StorageError", mapped)
			}
			if se.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", se.Code, tt.wantCode)
			}
			if !errors.Is(mapped, tt.err) {
				t.Errorf("mapped error should wrap the cause")
			}
		})
	}
}

func TestHandleErrorNil(t *testing.T) {
	if err := handleError(nil, "stat"); err != nil {
		t.Errorf("handleError(nil) = %v, want nil", err)
	}
}

func TestIsNotFound(t *testing.T) {
	notFound := handleError(minio.ErrorResponse{Code: "NoSuchKey"}, "stat")
	if !IsNotFound(notFound) {
		t.Error("IsNotFound(NoSuchKey) = false, want true")
	}
	if IsNotFound(errors.New("boom")) {
		t.Error("IsNotFound(plain error) = true, want false")
	}
	if IsNotFound(nil) {
		t.Error("IsNotFound(nil) = true, want false")
	}
}

func TestStorageErrorMessage(t *testing.T) {
	err := &StorageError{Code: ErrCodeNotFound, Message: "not found: b-1.jsonl", Operation: "stat"}
	if got, want := err.Error(), "objstore: stat: not found: b-1.jsonl"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
