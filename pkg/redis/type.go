package redis

import goredis "github.com/redis/go-redis/v9"

// RedisConfig locates the Redis that backs the query cache. Password may be
// empty for unauthenticated deployments.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Validate reports whether the config can be dialed.
func (cfg RedisConfig) Validate() error {
	if cfg.Host == "" {
		return ErrHostRequired
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return ErrInvalidPort
	}
	return nil
}

type redisImpl struct {
	client *goredis.Client
}
