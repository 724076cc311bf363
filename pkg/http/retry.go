package http

import (
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// retryableStatuses maps HTTP status codes that should trigger a retry.
var retryableStatuses = map[int]bool{
	429: true,
	500: true,
	502: true,
	503: true,
	504: true,
}

func isRetryable(status int) bool {
	return retryableStatuses[status]
}

// lockedRand provides thread-safe random number generation for jitter.
type lockedRand struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

var jitterRand = &lockedRand{
	rand: rand.New(rand.NewSource(time.Now().UnixNano())),
}

// retryDelay returns the wait before the next attempt: the server-provided
// Retry-After when present, otherwise exponential backoff from RetryWait
// capped at MaxRetryWait with ±jitterFactor jitter applied.
func (c *clientImpl) retryDelay(attempt int, retryAfter time.Duration) time.Duration {
	if retryAfter > 0 {
		return retryAfter
	}
	delay := c.config.RetryWait * time.Duration(1<<uint(attempt))
	if delay > MaxRetryWait {
		delay = MaxRetryWait
	}
	jitter := (jitterRand.Float64()*2 - 1) * jitterFactor
	return time.Duration(float64(delay) * (1 + jitter))
}

// parseRetryAfter parses a Retry-After header value in seconds form.
// HTTP-date form is not supported and yields 0.
func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	seconds, err := strconv.Atoi(header)
	if err != nil {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
