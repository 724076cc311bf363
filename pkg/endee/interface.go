package endee

import (
	"context"
	"os"
	"strings"

	pkghttp "github.com/endee-io/endee-go/pkg/http"
	"github.com/endee-io/endee-go/pkg/log"
)

// IEndee aggregates all Endee vector database operations.
type IEndee interface {
	IndexOps
	Ping(ctx context.Context) error
	Close() error
}

// IndexOps defines interface for index-level operations.
type IndexOps interface {
	CreateIndex(ctx context.Context, input CreateIndexInput) error
	DeleteIndex(ctx context.Context, name string) error
	ListIndexes(ctx context.Context) ([]IndexInfo, error)
	DescribeIndex(ctx context.Context, name string) (*IndexInfo, error)
	Index(name string) IIndex
}

// IIndex is a handle bound to one index. Handles are cheap to create and
// safe for concurrent use.
type IIndex interface {
	VectorOps
	SearchOps
	Name() string
}

// VectorOps defines interface for vector-level operations on an index.
type VectorOps interface {
	Upsert(ctx context.Context, vectors []Vector) error
	Delete(ctx context.Context, ids []string) error
	Fetch(ctx context.Context, ids []string) ([]Vector, error)
}

// SearchOps defines interface for similarity search.
type SearchOps interface {
	Query(ctx context.Context, opts *QueryOptions) (*QueryResponse, error)
}

// NewEndee creates a new Endee client. An empty APIKey falls back to the
// ENDEE_API_KEY environment variable; an empty BaseURL falls back to the
// hosted endpoint. Returns an implementation of IEndee.
func NewEndee(cfg Config) (IEndee, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(EnvAPIKey)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retries == 0 {
		cfg.Retries = DefaultRetries
	}
	if cfg.RetryWait == 0 {
		cfg.RetryWait = DefaultRetryWait
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &endeeImpl{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   cfg.Timeout,
			Retries:   cfg.Retries,
			RetryWait: cfg.RetryWait,
		}),
		l: cfg.Logger,
	}, nil
}
