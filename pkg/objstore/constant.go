package objstore

import "time"

const (
	// HTTP transport for the object store client
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
)

const (
	// DefaultEndpointPort is appended to the endpoint if no port is given.
	DefaultEndpointPort = ":9000"
	// MaxObjectSizeBytes is the maximum upload size (5GB).
	MaxObjectSizeBytes = 5 * 1024 * 1024 * 1024
)
