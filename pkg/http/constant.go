package http

import "time"

const (
	// DefaultTimeout bounds a whole request, body read included.
	DefaultTimeout = 30 * time.Second
	// DefaultRetries is how many times a failed request is retried.
	DefaultRetries = 3
	// DefaultRetryWait is the base wait before the first retry.
	DefaultRetryWait = 1 * time.Second
	// MaxRetryWait caps the exponential backoff delay.
	MaxRetryWait = 30 * time.Second
)

// jitterFactor spreads each retry delay by plus or minus 20 percent.
const jitterFactor = 0.2

// DefaultConfig returns the ClientConfig used when callers pass zero values.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	}
}
