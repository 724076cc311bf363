package endee

import "fmt"

// QueryOptions describes a similarity-search request against an index: a
// dense vector and/or a sparse vector, the result count, filter predicates,
// and tuning knobs. The struct maps one-to-one onto the wire request.
//
// Build it with NewQueryOptions or as a literal; setters never validate, so
// any combination of values can be expressed. The engine contract is checked
// once, when the request is submitted (see Validate). A built value is never
// mutated by the client and is safe for concurrent reads.
type QueryOptions struct {
	// Vector is the dense query vector. Its length must match the index
	// dimension, which the server checks.
	Vector []float32 `json:"vector,omitempty"`

	// TopK is the number of results to return. The engine rejects
	// requests where it is not positive.
	TopK int `json:"topK"`

	// Filter is the ordered list of filter clauses. Clause order is
	// preserved end to end.
	Filter Filter `json:"filter,omitempty"`

	// EF is the search breadth of the approximate nearest-neighbor walk.
	// Higher values trade speed for accuracy.
	EF int `json:"ef"`

	// IncludeVectors asks the engine to return raw vectors with each match.
	IncludeVectors bool `json:"includeVectors"`

	// SparseIndices and SparseValues carry the sparse query vector as
	// parallel arrays. They must have equal length and unique indices.
	SparseIndices []int     `json:"sparseIndices,omitempty"`
	SparseValues  []float32 `json:"sparseValues,omitempty"`

	// PrefilterCardinalityThreshold bounds the prefilter path: when the
	// engine estimates that more index entries match the filter, it scores
	// first and filters after instead. Valid range 1,000 to 1,000,000.
	PrefilterCardinalityThreshold int `json:"prefilterCardinalityThreshold"`

	// FilterBoostPercentage biases ranked results toward filter-matching
	// entries. 0 means no boost; 100 is the strongest bias.
	FilterBoostPercentage int `json:"filterBoostPercentage"`
}

// QueryOption sets one field on a QueryOptions under construction.
type QueryOption func(*QueryOptions)

// DefaultQueryOptions returns options carrying the documented defaults:
// ef 128, includeVectors false, prefilterCardinalityThreshold 10,000 and
// filterBoostPercentage 0.
func DefaultQueryOptions() QueryOptions {
	return QueryOptions{
		EF:                            DefaultEF,
		IncludeVectors:                false,
		PrefilterCardinalityThreshold: DefaultPrefilterCardinalityThreshold,
		FilterBoostPercentage:         0,
	}
}

// NewQueryOptions builds a request from the defaults plus the given options,
// applied in order. A later option overwrites an earlier one. No validation
// happens here.
func NewQueryOptions(opts ...QueryOption) *QueryOptions {
	o := DefaultQueryOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &o
}

// WithVector sets the dense query vector.
func WithVector(vector []float32) QueryOption {
	return func(o *QueryOptions) { o.Vector = vector }
}

// WithTopK sets the requested result count.
func WithTopK(topK int) QueryOption {
	return func(o *QueryOptions) { o.TopK = topK }
}

// WithFilter sets the ordered filter clauses, replacing any previous value.
func WithFilter(filter Filter) QueryOption {
	return func(o *QueryOptions) { o.Filter = filter }
}

// WithEF sets the search breadth.
func WithEF(ef int) QueryOption {
	return func(o *QueryOptions) { o.EF = ef }
}

// WithIncludeVectors toggles returning raw vectors with each match.
func WithIncludeVectors(include bool) QueryOption {
	return func(o *QueryOptions) { o.IncludeVectors = include }
}

// WithSparseIndices sets the sparse vector indices.
func WithSparseIndices(indices []int) QueryOption {
	return func(o *QueryOptions) { o.SparseIndices = indices }
}

// WithSparseValues sets the sparse vector values.
func WithSparseValues(values []float32) QueryOption {
	return func(o *QueryOptions) { o.SparseValues = values }
}

// WithSparseVector sets both sparse arrays in one call.
func WithSparseVector(indices []int, values []float32) QueryOption {
	return func(o *QueryOptions) {
		o.SparseIndices = indices
		o.SparseValues = values
	}
}

// WithPrefilterCardinalityThreshold sets the prefilter/postfilter switch point.
func WithPrefilterCardinalityThreshold(threshold int) QueryOption {
	return func(o *QueryOptions) { o.PrefilterCardinalityThreshold = threshold }
}

// WithFilterBoostPercentage sets the filter ranking bias.
func WithFilterBoostPercentage(boost int) QueryOption {
	return func(o *QueryOptions) { o.FilterBoostPercentage = boost }
}

// withDefaults fills zero-valued tuning knobs so a literal QueryOptions{}
// behaves like NewQueryOptions(). Zero is outside the valid range of both
// knobs, so it always means unset.
func (o QueryOptions) withDefaults() QueryOptions {
	if o.EF == 0 {
		o.EF = DefaultEF
	}
	if o.PrefilterCardinalityThreshold == 0 {
		o.PrefilterCardinalityThreshold = DefaultPrefilterCardinalityThreshold
	}
	return o
}

// Validate checks the request against the engine contract and returns the
// first violation found. The client runs it on submit; setters stay
// permissive so partially built requests are always expressible.
func (o *QueryOptions) Validate() error {
	if len(o.Vector) == 0 && len(o.SparseIndices) == 0 && len(o.SparseValues) == 0 {
		return ErrEmptyQuery
	}
	if o.TopK <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTopK, o.TopK)
	}
	if o.EF <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidEF, o.EF)
	}
	if len(o.SparseIndices) != len(o.SparseValues) {
		return fmt.Errorf("%w: %d indices, %d values",
			ErrSparseLengthMismatch, len(o.SparseIndices), len(o.SparseValues))
	}
	if o.PrefilterCardinalityThreshold < MinPrefilterCardinalityThreshold ||
		o.PrefilterCardinalityThreshold > MaxPrefilterCardinalityThreshold {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidThreshold,
			o.PrefilterCardinalityThreshold,
			MinPrefilterCardinalityThreshold, MaxPrefilterCardinalityThreshold)
	}
	if o.FilterBoostPercentage < 0 || o.FilterBoostPercentage > MaxFilterBoostPercentage {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidBoost,
			o.FilterBoostPercentage, MaxFilterBoostPercentage)
	}
	for i, clause := range o.Filter {
		if err := clause.validate(); err != nil {
			return fmt.Errorf("%w: clause %d: %v", ErrInvalidFilter, i, err)
		}
	}
	return nil
}
