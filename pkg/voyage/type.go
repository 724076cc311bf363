package voyage

import pkghttp "github.com/endee-io/endee-go/pkg/http"

// VoyageConfig configures the embeddings client. Endpoint and Model fall
// back to the package defaults when empty, which covers everything but
// tests and self-hosted gateways.
type VoyageConfig struct {
	APIKey   string
	Model    string
	Endpoint string
}

type voyageImpl struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient pkghttp.IClient
}

// Request is the embeddings API request body.
type Request struct {
	Input []string `json:"input"`
	Model string   `json:"model"`
}

// Response is the embeddings API response body.
type Response struct {
	Object string      `json:"object"`
	Data   []Embedding `json:"data"`
	Model  string      `json:"model"`
	Usage  Usage       `json:"usage"`
}

// Embedding is one vector of the response. Index ties it back to the input
// position.
type Embedding struct {
	Object    string    `json:"object"`
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"`
}

// Usage reports token consumption for the call.
type Usage struct {
	TotalTokens int `json:"total_tokens"`
}
