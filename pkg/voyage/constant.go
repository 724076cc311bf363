package voyage

import "time"

const (
	// DefaultEndpoint is the Voyage AI embeddings endpoint.
	DefaultEndpoint = "https://api.voyageai.com/v1/embeddings"

	// DefaultModel is the embedding model used when none is configured.
	DefaultModel = "voyage-3"

	// DefaultTimeout is the HTTP timeout for embedding calls.
	DefaultTimeout = 30 * time.Second
	// DefaultRetries is the number of transport retries.
	DefaultRetries = 3
	// DefaultRetryWait is the backoff base between retries.
	DefaultRetryWait = 1 * time.Second
)
