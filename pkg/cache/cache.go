package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/endee-io/endee-go/pkg/endee"
	pkgRedis "github.com/endee-io/endee-go/pkg/redis"
)

// Name returns the wrapped index name.
func (c *queryCacheImpl) Name() string {
	return c.index.Name()
}

// Query serves the result from Redis when an identical request was answered
// within the TTL, otherwise delegates to the wrapped index and stores the
// response. Cache failures never fail the query.
func (c *queryCacheImpl) Query(ctx context.Context, opts *endee.QueryOptions) (*endee.QueryResponse, error) {
	key, err := c.key(opts)
	if err != nil {
		c.l.Errorf(ctx, "cache.Query.key: %v", err)
		return c.index.Query(ctx, opts)
	}

	if val, err := c.redis.Get(ctx, key); err == nil {
		var cached endee.QueryResponse
		if err := json.Unmarshal([]byte(val), &cached); err != nil {
			c.l.Errorf(ctx, "cache.Query.Unmarshal: %v", err)
		} else {
			return &cached, nil
		}
	}

	resp, err := c.index.Query(ctx, opts)
	if err != nil {
		return nil, err
	}

	if buf, err := json.Marshal(resp); err == nil {
		if err := c.redis.Set(ctx, key, buf, c.config.TTL); err != nil {
			c.l.Errorf(ctx, "cache.Query.Set: %v", err)
		}
	}

	return resp, nil
}

// Upsert writes through the wrapped index and drops the cached queries of
// the index.
func (c *queryCacheImpl) Upsert(ctx context.Context, vectors []endee.Vector) error {
	if err := c.index.Upsert(ctx, vectors); err != nil {
		return err
	}
	if err := c.Invalidate(ctx); err != nil {
		c.l.Errorf(ctx, "cache.Upsert.Invalidate: %v", err)
	}
	return nil
}

// Delete removes vectors through the wrapped index and drops the cached
// queries of the index.
func (c *queryCacheImpl) Delete(ctx context.Context, ids []string) error {
	if err := c.index.Delete(ctx, ids); err != nil {
		return err
	}
	if err := c.Invalidate(ctx); err != nil {
		c.l.Errorf(ctx, "cache.Delete.Invalidate: %v", err)
	}
	return nil
}

// Fetch bypasses the cache and reads through the wrapped index.
func (c *queryCacheImpl) Fetch(ctx context.Context, ids []string) ([]endee.Vector, error) {
	return c.index.Fetch(ctx, ids)
}

// Invalidate deletes every cached query result of the wrapped index.
func (c *queryCacheImpl) Invalidate(ctx context.Context) error {
	return InvalidateIndex(ctx, c.redis, c.config.Prefix, c.index.Name())
}

// InvalidateIndex deletes every cached query result of the named index.
// Callers that write outside a cache handle use it to keep readers fresh.
func InvalidateIndex(ctx context.Context, redis pkgRedis.IRedis, prefix, index string) error {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return redis.DeleteByPattern(ctx, prefix+index+":*")
}

// key derives the cache key from the wire form of the request. Requests
// that resolve to the same defaults share a key, so a literal options
// struct and one built through the option helpers hit the same entry.
func (c *queryCacheImpl) key(opts *endee.QueryOptions) (string, error) {
	var req endee.QueryOptions
	if opts != nil {
		req = *opts
	}
	if req.EF == 0 {
		req.EF = endee.DefaultEF
	}
	if req.PrefilterCardinalityThreshold == 0 {
		req.PrefilterCardinalityThreshold = endee.DefaultPrefilterCardinalityThreshold
	}

	buf, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(buf)
	return c.config.Prefix + c.index.Name() + ":" + hex.EncodeToString(sum[:]), nil
}
