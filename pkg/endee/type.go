package endee

import (
	"time"

	pkghttp "github.com/endee-io/endee-go/pkg/http"
	"github.com/endee-io/endee-go/pkg/log"
)

// Config holds Endee client configuration.
type Config struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
	Logger    log.Logger
}

// Vector is a single entry in an index. Values carries the dense embedding;
// SparseIndices and SparseValues carry the parallel sparse representation.
// Filter holds the attributes filter clauses match against; Meta is an
// opaque payload returned with query results.
type Vector struct {
	ID            string                 `json:"id"`
	Values        []float32              `json:"values,omitempty"`
	SparseIndices []int                  `json:"sparseIndices,omitempty"`
	SparseValues  []float32              `json:"sparseValues,omitempty"`
	Filter        map[string]interface{} `json:"filter,omitempty"`
	Meta          map[string]interface{} `json:"meta,omitempty"`
}

// IndexInfo represents index metadata.
type IndexInfo struct {
	Name        string `json:"name"`
	Dimension   int    `json:"dimension"`
	SpaceType   string `json:"spaceType"`
	Precision   string `json:"precision,omitempty"`
	VectorCount int64  `json:"vectorCount"`
	Status      string `json:"status,omitempty"`
}

// CreateIndexInput describes a new index. M and EFConstruction tune the
// underlying graph; zero values let the server choose.
type CreateIndexInput struct {
	Name           string `json:"name"`
	Dimension      int    `json:"dimension"`
	SpaceType      string `json:"spaceType,omitempty"`
	M              int    `json:"m,omitempty"`
	EFConstruction int    `json:"efConstruction,omitempty"`
	Precision      string `json:"precision,omitempty"`
}

// QueryMatch is a single search hit. Vector and the sparse fields are only
// populated when the query asked for includeVectors.
type QueryMatch struct {
	ID            string                 `json:"id"`
	Similarity    float32                `json:"similarity"`
	Vector        []float32              `json:"vector,omitempty"`
	SparseIndices []int                  `json:"sparseIndices,omitempty"`
	SparseValues  []float32              `json:"sparseValues,omitempty"`
	Filter        map[string]interface{} `json:"filter,omitempty"`
	Meta          map[string]interface{} `json:"meta,omitempty"`
}

// QueryResponse is the result of a similarity search. Strategy reports the
// filtering path the engine chose, "prefilter" or "postfilter";
// FilteredCount is how many entries matched the filter before ranking.
type QueryResponse struct {
	Matches       []QueryMatch `json:"matches"`
	FilteredCount int64        `json:"filteredCount,omitempty"`
	Strategy      string       `json:"strategy,omitempty"`
}

// endeeImpl implements IEndee.
type endeeImpl struct {
	baseURL    string
	apiKey     string
	httpClient pkghttp.IClient
	l          log.Logger
}

// indexImpl is an IIndex handle bound to one index name.
type indexImpl struct {
	name   string
	client *endeeImpl
}
