package http

import (
	"net/http"
	"time"
)

// ClientConfig tunes the client. Retries counts retries, not total attempts,
// so Retries of 3 means up to four requests on the wire. RetryWait is the
// backoff base that doubles per attempt.
type ClientConfig struct {
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
}

type clientImpl struct {
	client *http.Client
	config ClientConfig
}
