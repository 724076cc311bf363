package endee

import "time"

// Version is the client library version reported in the User-Agent header.
const Version = "0.3.1"

const (
	// DefaultBaseURL is the hosted Endee endpoint.
	DefaultBaseURL = "https://api.endee.io"

	// EnvAPIKey is the environment variable read when Config.APIKey is empty.
	EnvAPIKey = "ENDEE_API_KEY"

	// HeaderAPIKey carries the API key on every request.
	HeaderAPIKey = "Api-Key"

	// DefaultTimeout is the default timeout for Endee operations.
	DefaultTimeout = 30 * time.Second

	// DefaultRetries is the default number of transport retries.
	DefaultRetries = 3

	// DefaultRetryWait is the default backoff base between retries.
	DefaultRetryWait = 1 * time.Second
)

const (
	// DefaultEF is the search breadth used when ef is never set.
	DefaultEF = 128

	// DefaultPrefilterCardinalityThreshold is the filter cardinality above
	// which the engine switches from prefiltering to postfiltering.
	DefaultPrefilterCardinalityThreshold = 10_000

	// MinPrefilterCardinalityThreshold is the lowest accepted threshold.
	MinPrefilterCardinalityThreshold = 1_000

	// MaxPrefilterCardinalityThreshold is the highest accepted threshold.
	MaxPrefilterCardinalityThreshold = 1_000_000

	// MaxFilterBoostPercentage is the highest accepted filter boost.
	MaxFilterBoostPercentage = 100

	// MaxUpsertBatchSize is the largest vector batch a single upsert accepts.
	MaxUpsertBatchSize = 1000
)

// Filter operators understood by the engine. Unknown operators are
// forwarded untouched.
const (
	OpEq    = "$eq"
	OpNe    = "$ne"
	OpGt    = "$gt"
	OpGte   = "$gte"
	OpLt    = "$lt"
	OpLte   = "$lte"
	OpIn    = "$in"
	OpRange = "$range"
)

// Space type names (for CreateIndexInput and config).
const (
	SpaceCosine = "cosine"
	SpaceL2     = "l2"
	SpaceIP     = "ip"
)

// Index precision profiles.
const (
	PrecisionHigh   = "high"
	PrecisionMedium = "medium"
	PrecisionLow    = "low"
)

// apiPrefix prefixes every route on the wire.
const apiPrefix = "/api/v1"

const userAgent = "endee-go/" + Version
