package objstore

import (
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
)

// Error codes carried by StorageError.
const (
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeConnection   = "CONNECTION"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodePermission   = "PERMISSION"
)

// StorageError describes a failed object store operation.
type StorageError struct {
	Code      string
	Message   string
	Operation string
	Cause     error
}

func (e *StorageError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("objstore: %s: %s", e.Operation, e.Message)
	}
	return fmt.Sprintf("objstore: %s", e.Message)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewInvalidInputError reports a rejected argument.
func NewInvalidInputError(message string) *StorageError {
	return &StorageError{Code: ErrCodeInvalidInput, Message: message}
}

// NewConnectionError reports a transport or backend failure.
func NewConnectionError(cause error) *StorageError {
	return &StorageError{Code: ErrCodeConnection, Message: cause.Error(), Cause: cause}
}

// NewNotFoundError reports a missing object or bucket.
func NewNotFoundError(name string) *StorageError {
	return &StorageError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not found: %s", name)}
}

// IsNotFound reports whether err is a missing object or bucket.
func IsNotFound(err error) bool {
	var se *StorageError
	if errors.As(err, &se) {
		return se.Code == ErrCodeNotFound
	}
	return false
}

// handleError maps backend errors onto StorageError codes.
func handleError(err error, operation string) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchBucket", "NoSuchKey":
		return &StorageError{Code: ErrCodeNotFound, Message: resp.Message, Operation: operation, Cause: err}
	case "AccessDenied":
		return &StorageError{Code: ErrCodePermission, Message: "access denied", Operation: operation, Cause: err}
	case "":
		return &StorageError{Code: ErrCodeConnection, Message: err.Error(), Operation: operation, Cause: err}
	default:
		return &StorageError{Code: ErrCodeConnection, Message: fmt.Sprintf("operation failed: %s", resp.Code), Operation: operation, Cause: err}
	}
}
