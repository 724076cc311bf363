package cache

import (
	"time"

	"github.com/endee-io/endee-go/pkg/endee"
	"github.com/endee-io/endee-go/pkg/log"
	pkgRedis "github.com/endee-io/endee-go/pkg/redis"
)

// CacheConfig holds query cache configuration.
type CacheConfig struct {
	TTL    time.Duration
	Prefix string
}

// queryCacheImpl implements endee.IIndex with a Redis cache in front of
// Query and write-through invalidation.
type queryCacheImpl struct {
	index  endee.IIndex
	redis  pkgRedis.IRedis
	l      log.Logger
	config CacheConfig
}
