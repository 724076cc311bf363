package endee

import (
	"context"
	"net/url"
)

// CreateIndex creates a new index.
func (c *endeeImpl) CreateIndex(ctx context.Context, input CreateIndexInput) error {
	if input.Name == "" {
		return ErrEmptyIndexName
	}
	if input.Dimension <= 0 {
		return ErrInvalidDimension
	}
	input.SpaceType = NormalizeSpaceType(input.SpaceType)
	if err := c.post(ctx, apiPrefix+"/index/create", input, nil); err != nil {
		return WrapError(err, "failed to create index")
	}
	return nil
}

// DeleteIndex deletes an index and all its vectors.
func (c *endeeImpl) DeleteIndex(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyIndexName
	}
	if err := c.del(ctx, apiPrefix+"/index/"+url.PathEscape(name)); err != nil {
		return WrapError(err, "failed to delete index")
	}
	return nil
}

// ListIndexes lists all indexes visible to the API key.
func (c *endeeImpl) ListIndexes(ctx context.Context) ([]IndexInfo, error) {
	var resp struct {
		Indexes []IndexInfo `json:"indexes"`
	}
	if err := c.get(ctx, apiPrefix+"/index/list", &resp); err != nil {
		return nil, WrapError(err, "failed to list indexes")
	}
	return resp.Indexes, nil
}

// DescribeIndex retrieves metadata for one index.
func (c *endeeImpl) DescribeIndex(ctx context.Context, name string) (*IndexInfo, error) {
	if name == "" {
		return nil, ErrEmptyIndexName
	}
	var info IndexInfo
	if err := c.get(ctx, apiPrefix+"/index/"+url.PathEscape(name), &info); err != nil {
		return nil, WrapError(err, "failed to describe index")
	}
	return &info, nil
}

// Index returns a handle bound to the named index. The handle does not
// check that the index exists; the first operation on it will.
func (c *endeeImpl) Index(name string) IIndex {
	return &indexImpl{name: name, client: c}
}

// Ping checks if the Endee API is reachable with the configured key.
func (c *endeeImpl) Ping(ctx context.Context) error {
	if _, err := c.ListIndexes(ctx); err != nil {
		return WrapError(err, "ping failed")
	}
	return nil
}

// Close releases the client's idle connections. The client holds no other
// state, so it stays usable after Close.
func (c *endeeImpl) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
