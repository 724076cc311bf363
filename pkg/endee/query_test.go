package endee

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestDefaultQueryOptions(t *testing.T) {
	opts := DefaultQueryOptions()
	if opts.EF != 128 {
		t.Errorf("EF = %d, want 128", opts.EF)
	}
	if opts.IncludeVectors {
		t.Error("IncludeVectors should be false by default")
	}
	if opts.PrefilterCardinalityThreshold != 10_000 {
		t.Errorf("PrefilterCardinalityThreshold = %d, want 10000", opts.PrefilterCardinalityThreshold)
	}
	if opts.FilterBoostPercentage != 0 {
		t.Errorf("FilterBoostPercentage = %d, want 0", opts.FilterBoostPercentage)
	}
	if opts.Vector != nil {
		t.Errorf("Vector = %v, want nil", opts.Vector)
	}
	if opts.TopK != 0 {
		t.Errorf("TopK = %d, want 0 (unset)", opts.TopK)
	}
}

func TestWithVector(t *testing.T) {
	v := []float32{0.1, 0.2, 0.3}
	opts := NewQueryOptions(WithVector(v))
	if !reflect.DeepEqual(opts.Vector, v) {
		t.Errorf("Vector = %v, want %v", opts.Vector, v)
	}
}

func TestWithTopK(t *testing.T) {
	opts := NewQueryOptions(WithTopK(25))
	if opts.TopK != 25 {
		t.Errorf("TopK = %d, want 25", opts.TopK)
	}
}

func TestWithEF(t *testing.T) {
	opts := NewQueryOptions(WithEF(256))
	if opts.EF != 256 {
		t.Errorf("EF = %d, want 256", opts.EF)
	}
}

func TestWithIncludeVectors(t *testing.T) {
	opts := NewQueryOptions(WithIncludeVectors(true))
	if !opts.IncludeVectors {
		t.Error("IncludeVectors should be true")
	}
}

func TestWithSparseVector(t *testing.T) {
	opts := NewQueryOptions(WithSparseVector([]int{1, 5, 9}, []float32{0.5, 0.2, 0.1}))
	if !reflect.DeepEqual(opts.SparseIndices, []int{1, 5, 9}) {
		t.Errorf("SparseIndices = %v", opts.SparseIndices)
	}
	if !reflect.DeepEqual(opts.SparseValues, []float32{0.5, 0.2, 0.1}) {
		t.Errorf("SparseValues = %v", opts.SparseValues)
	}
}

func TestWithPrefilterCardinalityThreshold(t *testing.T) {
	opts := NewQueryOptions(WithPrefilterCardinalityThreshold(50_000))
	if opts.PrefilterCardinalityThreshold != 50_000 {
		t.Errorf("PrefilterCardinalityThreshold = %d, want 50000", opts.PrefilterCardinalityThreshold)
	}
}

func TestWithFilterBoostPercentage(t *testing.T) {
	opts := NewQueryOptions(WithFilterBoostPercentage(40))
	if opts.FilterBoostPercentage != 40 {
		t.Errorf("FilterBoostPercentage = %d, want 40", opts.FilterBoostPercentage)
	}
}

func TestLastOptionWins(t *testing.T) {
	opts := NewQueryOptions(
		WithTopK(5),
		WithEF(64),
		WithVector([]float32{1}),
		WithTopK(25),
		WithEF(256),
		WithVector([]float32{2, 3}),
		WithIncludeVectors(true),
		WithIncludeVectors(false),
	)
	if opts.TopK != 25 {
		t.Errorf("TopK = %d, want 25 (last write)", opts.TopK)
	}
	if opts.EF != 256 {
		t.Errorf("EF = %d, want 256 (last write)", opts.EF)
	}
	if !reflect.DeepEqual(opts.Vector, []float32{2, 3}) {
		t.Errorf("Vector = %v, want [2 3] (last write)", opts.Vector)
	}
	if opts.IncludeVectors {
		t.Error("IncludeVectors = true, want false (last write)")
	}
}

// Setters accept any value; the engine contract is only checked on submit.
func TestOptionsArePermissive(t *testing.T) {
	opts := NewQueryOptions(
		WithTopK(-5),
		WithEF(-1),
		WithPrefilterCardinalityThreshold(3),
		WithFilterBoostPercentage(250),
		WithSparseIndices([]int{1, 2}),
		WithSparseValues([]float32{0.5}),
	)
	if opts.TopK != -5 {
		t.Errorf("TopK = %d, want -5 stored as given", opts.TopK)
	}
	if opts.EF != -1 {
		t.Errorf("EF = %d, want -1 stored as given", opts.EF)
	}
	if opts.PrefilterCardinalityThreshold != 3 {
		t.Errorf("PrefilterCardinalityThreshold = %d, want 3 stored as given", opts.PrefilterCardinalityThreshold)
	}
	if opts.FilterBoostPercentage != 250 {
		t.Errorf("FilterBoostPercentage = %d, want 250 stored as given", opts.FilterBoostPercentage)
	}
	if len(opts.SparseIndices) != 2 || len(opts.SparseValues) != 1 {
		t.Error("mismatched sparse arrays must be stored as given")
	}
}

func TestBuildDenseQueryWithFilters(t *testing.T) {
	opts := NewQueryOptions(
		WithVector([]float32{0.1, 0.2, 0.3}),
		WithTopK(10),
		WithFilter(Filter{
			Eq("category", "tech"),
			Range("score", 80, 100),
		}),
	)
	if opts.TopK != 10 {
		t.Errorf("TopK = %d, want 10", opts.TopK)
	}
	if len(opts.Filter) != 2 {
		t.Fatalf("filter clauses = %d, want 2", len(opts.Filter))
	}
	if _, ok := opts.Filter[0]["category"]; !ok {
		t.Error("first clause must target category")
	}
	if _, ok := opts.Filter[1]["score"]; !ok {
		t.Error("second clause must target score")
	}
	if opts.EF != 128 {
		t.Errorf("EF = %d, want default 128", opts.EF)
	}
	if opts.IncludeVectors {
		t.Error("IncludeVectors should stay false")
	}
}

func TestBuildSparseOnlyQuery(t *testing.T) {
	opts := NewQueryOptions(
		WithSparseIndices([]int{1, 5, 9}),
		WithSparseValues([]float32{0.5, 0.2, 0.1}),
	)
	if len(opts.Vector) != 0 {
		t.Errorf("Vector = %v, want unset", opts.Vector)
	}
	if len(opts.SparseIndices) != len(opts.SparseValues) {
		t.Errorf("sparse lengths differ: %d vs %d", len(opts.SparseIndices), len(opts.SparseValues))
	}
	if !reflect.DeepEqual(opts.SparseIndices, []int{1, 5, 9}) {
		t.Errorf("SparseIndices = %v, want [1 5 9]", opts.SparseIndices)
	}
	if !reflect.DeepEqual(opts.SparseValues, []float32{0.5, 0.2, 0.1}) {
		t.Errorf("SparseValues = %v, want [0.5 0.2 0.1]", opts.SparseValues)
	}
}

func TestSparseRoundTripThroughJSON(t *testing.T) {
	opts := NewQueryOptions(
		WithTopK(3),
		WithSparseVector([]int{7, 2, 42}, []float32{0.9, 0.1, 0.4}),
	)
	raw, err := json.Marshal(opts)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got QueryOptions
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got.SparseIndices, opts.SparseIndices) {
		t.Errorf("SparseIndices round trip = %v, want %v", got.SparseIndices, opts.SparseIndices)
	}
	if !reflect.DeepEqual(got.SparseValues, opts.SparseValues) {
		t.Errorf("SparseValues round trip = %v, want %v", got.SparseValues, opts.SparseValues)
	}
}

func TestWireShape(t *testing.T) {
	opts := NewQueryOptions(
		WithVector([]float32{0.5}),
		WithTopK(10),
		WithFilter(Filter{Eq("category", "tech")}),
	)
	raw, err := json.Marshal(opts)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var wire map[string]interface{}
	if err := json.Unmarshal(raw, &wire); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	for _, key := range []string{"vector", "topK", "filter", "ef", "includeVectors", "prefilterCardinalityThreshold", "filterBoostPercentage"} {
		if _, ok := wire[key]; !ok {
			t.Errorf("wire request missing key %q", key)
		}
	}
	for _, key := range []string{"sparseIndices", "sparseValues"} {
		if _, ok := wire[key]; ok {
			t.Errorf("wire request should omit unset key %q", key)
		}
	}
	if wire["ef"].(float64) != 128 {
		t.Errorf("wire ef = %v, want 128", wire["ef"])
	}
	if wire["topK"].(float64) != 10 {
		t.Errorf("wire topK = %v, want 10", wire["topK"])
	}
}

func TestWireOmitsVectorWhenSparseOnly(t *testing.T) {
	opts := NewQueryOptions(WithTopK(5), WithSparseVector([]int{1}, []float32{0.3}))
	raw, err := json.Marshal(opts)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var wire map[string]interface{}
	if err := json.Unmarshal(raw, &wire); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if _, ok := wire["vector"]; ok {
		t.Error("wire request should omit vector when unset")
	}
	if _, ok := wire["sparseIndices"]; !ok {
		t.Error("wire request missing sparseIndices")
	}
}

func TestWithDefaultsFillsZeroKnobs(t *testing.T) {
	o := QueryOptions{Vector: []float32{0.1}, TopK: 2}
	d := o.withDefaults()
	if d.EF != DefaultEF {
		t.Errorf("EF = %d, want %d", d.EF, DefaultEF)
	}
	if d.PrefilterCardinalityThreshold != DefaultPrefilterCardinalityThreshold {
		t.Errorf("PrefilterCardinalityThreshold = %d, want %d",
			d.PrefilterCardinalityThreshold, DefaultPrefilterCardinalityThreshold)
	}
	if o.EF != 0 {
		t.Error("withDefaults must not mutate the receiver")
	}
}

func TestWithDefaultsKeepsExplicitValues(t *testing.T) {
	o := QueryOptions{Vector: []float32{0.1}, TopK: 2, EF: 300, PrefilterCardinalityThreshold: 2_000}
	d := o.withDefaults()
	if d.EF != 300 {
		t.Errorf("EF = %d, want 300", d.EF)
	}
	if d.PrefilterCardinalityThreshold != 2_000 {
		t.Errorf("PrefilterCardinalityThreshold = %d, want 2000", d.PrefilterCardinalityThreshold)
	}
}

func TestValidate(t *testing.T) {
	valid := func() QueryOptions {
		return QueryOptions{
			Vector:                        []float32{0.1, 0.2},
			TopK:                          5,
			EF:                            128,
			PrefilterCardinalityThreshold: 10_000,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*QueryOptions)
		wantErr error
	}{
		{"valid dense", func(o *QueryOptions) {}, nil},
		{"valid sparse only", func(o *QueryOptions) {
			o.Vector = nil
			o.SparseIndices = []int{1, 2}
			o.SparseValues = []float32{0.1, 0.2}
		}, nil},
		{"no vectors at all", func(o *QueryOptions) { o.Vector = nil }, ErrEmptyQuery},
		{"zero topK", func(o *QueryOptions) { o.TopK = 0 }, ErrInvalidTopK},
		{"negative topK", func(o *QueryOptions) { o.TopK = -1 }, ErrInvalidTopK},
		{"negative ef", func(o *QueryOptions) { o.EF = -1 }, ErrInvalidEF},
		{"sparse length mismatch", func(o *QueryOptions) {
			o.SparseIndices = []int{1, 2}
			o.SparseValues = []float32{0.1}
		}, ErrSparseLengthMismatch},
		{"threshold below min", func(o *QueryOptions) { o.PrefilterCardinalityThreshold = 999 }, ErrInvalidThreshold},
		{"threshold at min", func(o *QueryOptions) { o.PrefilterCardinalityThreshold = 1_000 }, nil},
		{"threshold at max", func(o *QueryOptions) { o.PrefilterCardinalityThreshold = 1_000_000 }, nil},
		{"threshold above max", func(o *QueryOptions) { o.PrefilterCardinalityThreshold = 1_000_001 }, ErrInvalidThreshold},
		{"boost at max", func(o *QueryOptions) { o.FilterBoostPercentage = 100 }, nil},
		{"boost above max", func(o *QueryOptions) { o.FilterBoostPercentage = 101 }, ErrInvalidBoost},
		{"boost negative", func(o *QueryOptions) { o.FilterBoostPercentage = -1 }, ErrInvalidBoost},
		{"empty filter clause", func(o *QueryOptions) { o.Filter = Filter{FilterClause{}} }, ErrInvalidFilter},
		{"clause without operator map", func(o *QueryOptions) {
			o.Filter = Filter{FilterClause{"category": "tech"}}
		}, ErrInvalidFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := valid()
			tt.mutate(&o)
			err := o.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
