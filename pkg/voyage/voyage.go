package voyage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Embed turns texts into embedding vectors, one per input and in input
// order. The API reports an index for each embedding, so results are placed
// by that index rather than by response position.
func (v *voyageImpl) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if v.apiKey == "" {
		return nil, fmt.Errorf("voyage: API key is required")
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("voyage: at least one text is required")
	}

	headers := map[string]string{"Authorization": "Bearer " + v.apiKey}
	body, status, err := v.httpClient.Post(ctx, v.endpoint, Request{Input: texts, Model: v.model}, headers)
	if err != nil {
		return nil, fmt.Errorf("voyage: embed request: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("voyage: embed returned status %d: %s", status, string(body))
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("voyage: decode embed response: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("voyage: got %d embeddings for %d texts", len(resp.Data), len(texts))
	}

	embeddings := make([][]float32, len(texts))
	for _, item := range resp.Data {
		if item.Index < 0 || item.Index >= len(embeddings) {
			return nil, fmt.Errorf("voyage: embedding index %d out of range", item.Index)
		}
		embeddings[item.Index] = item.Embedding
	}
	return embeddings, nil
}
