package voyage

import (
	"context"

	pkghttp "github.com/endee-io/endee-go/pkg/http"
)

// IVoyage produces embeddings for the loader pipeline.
// Implementations are safe for concurrent use.
type IVoyage interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// NewVoyage creates an embeddings client. The API key is checked at Embed
// time, not here, so a client built from incomplete config fails on use
// rather than on construction.
func NewVoyage(cfg VoyageConfig) IVoyage {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	return &voyageImpl{
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		endpoint: cfg.Endpoint,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   DefaultTimeout,
			Retries:   DefaultRetries,
			RetryWait: DefaultRetryWait,
		}),
	}
}
