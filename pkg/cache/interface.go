package cache

import (
	"context"

	"github.com/endee-io/endee-go/pkg/endee"
	"github.com/endee-io/endee-go/pkg/log"
	pkgRedis "github.com/endee-io/endee-go/pkg/redis"
)

// IQueryCache is an index handle with a read-through Redis cache for query
// results. Writes through the handle invalidate the cached queries of the
// wrapped index; Invalidate drops them explicitly.
type IQueryCache interface {
	endee.IIndex
	Invalidate(ctx context.Context) error
}

// NewQueryCache wraps an index handle with a query result cache. The
// returned handle is a drop-in endee.IIndex.
func NewQueryCache(index endee.IIndex, redis pkgRedis.IRedis, l log.Logger, cfg CacheConfig) IQueryCache {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}
	if l == nil {
		l = log.NewNop()
	}
	return &queryCacheImpl{
		index:  index,
		redis:  redis,
		l:      l,
		config: cfg,
	}
}
