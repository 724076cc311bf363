package http

import "context"

// IClient is a JSON-speaking HTTP client with timeout, retry, and backoff
// built in. Calls return the raw body and status code so callers keep
// control of decoding and error mapping.
// Implementations are safe for concurrent use.
type IClient interface {
	Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error)
	Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error)
	Delete(ctx context.Context, url string, headers map[string]string) ([]byte, int, error)
	CloseIdleConnections()
}

// NewClient creates a client. Zero config values fall back to the package
// defaults; a negative retry count disables retries.
func NewClient(cfg ClientConfig) IClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RetryWait <= 0 {
		cfg.RetryWait = DefaultRetryWait
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	return &clientImpl{
		client: defaultHTTPClient(cfg.Timeout),
		config: cfg,
	}
}
