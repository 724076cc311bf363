package cache

import "time"

const (
	// DefaultTTL is how long cached query results live.
	DefaultTTL = 5 * time.Minute

	// DefaultPrefix namespaces cache keys in Redis.
	DefaultPrefix = "endee:query:"
)
