package endee

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidConfig        = errors.New("invalid configuration")
	ErrEmptyIndexName       = errors.New("index name cannot be empty")
	ErrInvalidDimension     = errors.New("invalid index dimension")
	ErrIndexNotFound        = errors.New("index not found")
	ErrInvalidVector        = errors.New("invalid vector")
	ErrBatchTooLarge        = errors.New("upsert batch too large")
	ErrEmptyQuery           = errors.New("query needs a dense or sparse vector")
	ErrInvalidTopK          = errors.New("topK must be greater than zero")
	ErrInvalidEF            = errors.New("ef must be greater than zero")
	ErrSparseLengthMismatch = errors.New("sparseIndices and sparseValues must have equal length")
	ErrInvalidThreshold     = errors.New("prefilterCardinalityThreshold out of range")
	ErrInvalidBoost         = errors.New("filterBoostPercentage out of range")
	ErrInvalidFilter        = errors.New("malformed filter clause")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrRateLimited          = errors.New("rate limited")
	ErrServer               = errors.New("server error")
)

// APIError is a non-2xx response from the Endee API. It unwraps to one of
// the package sentinels so callers can branch with errors.Is.
type APIError struct {
	StatusCode int
	Code       string
	Message    string

	sentinel error
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("endee: server returned %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("endee: server returned %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.sentinel
}

// mapStatusToError turns a non-2xx response into an *APIError, extracting
// the message from the {"error": "...", "code": "..."} envelope when present.
func mapStatusToError(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status}

	var envelope struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		apiErr.Message = envelope.Error
		apiErr.Code = envelope.Code
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		apiErr.sentinel = ErrUnauthorized
	case status == http.StatusNotFound:
		apiErr.sentinel = ErrIndexNotFound
	case status == http.StatusTooManyRequests:
		apiErr.sentinel = ErrRateLimited
	case status >= 500:
		apiErr.sentinel = ErrServer
	}
	return apiErr
}

// validationSentinels are the errors Validate methods in this package can
// return. Transport and server errors are never among them.
var validationSentinels = []error{
	ErrInvalidConfig,
	ErrEmptyIndexName,
	ErrInvalidDimension,
	ErrInvalidVector,
	ErrBatchTooLarge,
	ErrEmptyQuery,
	ErrInvalidTopK,
	ErrInvalidEF,
	ErrSparseLengthMismatch,
	ErrInvalidThreshold,
	ErrInvalidBoost,
	ErrInvalidFilter,
}

// IsValidationError reports whether err is a client-side validation failure,
// as opposed to a transport or server error. Useful for mapping errors to
// HTTP 400 at an API boundary.
func IsValidationError(err error) bool {
	for _, sentinel := range validationSentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// WrapError wraps an error with additional context
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
