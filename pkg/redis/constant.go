package redis

import "time"

const (
	// DefaultConnectTimeout bounds the connection ping in NewRedis.
	DefaultConnectTimeout = 5 * time.Second

	// ScanBatchSize is the COUNT hint for SCAN during pattern deletes.
	ScanBatchSize = 100
)
