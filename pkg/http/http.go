package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func defaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Get performs a GET request.
func (c *clientImpl) Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error) {
	return c.do(ctx, http.MethodGet, url, nil, headers)
}

// Post performs a POST request with JSON body.
func (c *clientImpl) Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error) {
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal body: %w", err)
		}
	}
	return c.do(ctx, http.MethodPost, url, raw, headers)
}

// Delete performs a DELETE request.
func (c *clientImpl) Delete(ctx context.Context, url string, headers map[string]string) ([]byte, int, error) {
	return c.do(ctx, http.MethodDelete, url, nil, headers)
}

// CloseIdleConnections drops the keep-alive connections of the underlying
// transport.
func (c *clientImpl) CloseIdleConnections() {
	c.client.CloseIdleConnections()
}

// do sends the request, retrying transport errors and retryable statuses.
// A fresh request is built for every attempt so the body can be resent.
func (c *clientImpl) do(ctx context.Context, method, url string, body []byte, headers map[string]string) ([]byte, int, error) {
	var (
		lastStatus int
		lastBody   []byte
		lastErr    error
		retryAfter time.Duration
	)

	for attempt := 0; attempt <= c.config.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, 0, ctx.Err()
			case <-time.After(c.retryDelay(attempt-1, retryAfter)):
			}
		}

		req, err := c.newRequest(ctx, method, url, body, headers)
		if err != nil {
			return nil, 0, err
		}

		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, 0, ctx.Err()
			}
			lastErr = err
			continue
		}

		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastStatus = resp.StatusCode
			lastErr = fmt.Errorf("failed to read response body: %w", readErr)
			continue
		}

		if isRetryable(resp.StatusCode) {
			lastStatus = resp.StatusCode
			lastBody = respBody
			lastErr = nil
			retryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
			continue
		}

		return respBody, resp.StatusCode, nil
	}

	if lastErr != nil {
		return nil, lastStatus, fmt.Errorf("request failed after %d retries: %w", c.config.Retries, lastErr)
	}
	// Retryable status on every attempt: hand the final response back so the
	// caller can map the status.
	return lastBody, lastStatus, nil
}

func (c *clientImpl) newRequest(ctx context.Context, method, url string, body []byte, headers map[string]string) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req, nil
}
