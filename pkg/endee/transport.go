package endee

import (
	"context"
	"encoding/json"
	"fmt"
)

func (c *endeeImpl) headers() map[string]string {
	return map[string]string{
		HeaderAPIKey: c.apiKey,
		"User-Agent": userAgent,
	}
}

func (c *endeeImpl) get(ctx context.Context, path string, out interface{}) error {
	body, status, err := c.httpClient.Get(ctx, c.baseURL+path, c.headers())
	return c.finish(ctx, "GET", path, body, status, err, out)
}

func (c *endeeImpl) post(ctx context.Context, path string, in, out interface{}) error {
	body, status, err := c.httpClient.Post(ctx, c.baseURL+path, in, c.headers())
	return c.finish(ctx, "POST", path, body, status, err, out)
}

func (c *endeeImpl) del(ctx context.Context, path string) error {
	body, status, err := c.httpClient.Delete(ctx, c.baseURL+path, c.headers())
	return c.finish(ctx, "DELETE", path, body, status, err, nil)
}

// finish turns the raw response into a decoded result or a mapped error.
func (c *endeeImpl) finish(ctx context.Context, method, path string, body []byte, status int, err error, out interface{}) error {
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	c.l.Debugf(ctx, "endee.transport: %s %s -> %d", method, path, status)
	if status < 200 || status >= 300 {
		return mapStatusToError(status, body)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
