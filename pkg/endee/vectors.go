package endee

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
)

type upsertRequest struct {
	Vectors []Vector `json:"vectors"`
}

type idsRequest struct {
	IDs []string `json:"ids"`
}

type fetchResponse struct {
	Vectors []Vector `json:"vectors"`
}

// Name returns the index name the handle is bound to.
func (i *indexImpl) Name() string {
	return i.name
}

// path builds a route under this index.
func (i *indexImpl) path(suffix string) string {
	return apiPrefix + "/index/" + url.PathEscape(i.name) + suffix
}

// Upsert inserts or updates vectors. Entries without an ID get a generated
// UUID. An empty batch is a no-op.
func (i *indexImpl) Upsert(ctx context.Context, vectors []Vector) error {
	if i.name == "" {
		return ErrEmptyIndexName
	}
	if len(vectors) == 0 {
		return nil
	}
	if len(vectors) > MaxUpsertBatchSize {
		return fmt.Errorf("%w: %d vectors, limit %d", ErrBatchTooLarge, len(vectors), MaxUpsertBatchSize)
	}

	batch := make([]Vector, len(vectors))
	copy(batch, vectors)
	for idx := range batch {
		if batch[idx].ID == "" {
			batch[idx].ID = uuid.NewString()
		}
		if len(batch[idx].Values) == 0 && len(batch[idx].SparseIndices) == 0 {
			return fmt.Errorf("%w: vector %q has neither dense nor sparse values", ErrInvalidVector, batch[idx].ID)
		}
		if len(batch[idx].SparseIndices) != len(batch[idx].SparseValues) {
			return fmt.Errorf("%w: vector %q", ErrSparseLengthMismatch, batch[idx].ID)
		}
	}

	if err := i.client.post(ctx, i.path("/vector/upsert"), upsertRequest{Vectors: batch}, nil); err != nil {
		return WrapError(err, "failed to upsert vectors")
	}
	return nil
}

// Delete removes vectors by ID. An empty ID list is a no-op.
func (i *indexImpl) Delete(ctx context.Context, ids []string) error {
	if i.name == "" {
		return ErrEmptyIndexName
	}
	if len(ids) == 0 {
		return nil
	}
	if err := i.client.post(ctx, i.path("/vector/delete"), idsRequest{IDs: ids}, nil); err != nil {
		return WrapError(err, "failed to delete vectors")
	}
	return nil
}

// Fetch retrieves vectors by ID. Missing IDs are absent from the result
// rather than an error.
func (i *indexImpl) Fetch(ctx context.Context, ids []string) ([]Vector, error) {
	if i.name == "" {
		return nil, ErrEmptyIndexName
	}
	if len(ids) == 0 {
		return nil, nil
	}
	var resp fetchResponse
	if err := i.client.post(ctx, i.path("/vector/fetch"), idsRequest{IDs: ids}, &resp); err != nil {
		return nil, WrapError(err, "failed to fetch vectors")
	}
	return resp.Vectors, nil
}
