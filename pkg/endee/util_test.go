package endee

import (
	"errors"
	"testing"
)

func TestNormalizeSpaceType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cosine", SpaceCosine},
		{"Cosine", SpaceCosine},
		{"", SpaceCosine},
		{"l2", SpaceL2},
		{"euclidean", SpaceL2},
		{"ip", SpaceIP},
		{"dot", SpaceIP},
		{"dotproduct", SpaceIP},
		{"something-else", SpaceCosine},
	}
	for _, tt := range tests {
		if got := NormalizeSpaceType(tt.in); got != tt.want {
			t.Errorf("NormalizeSpaceType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateVector(t *testing.T) {
	if err := ValidateVector(nil, 3); !errors.Is(err, ErrInvalidVector) {
		t.Errorf("nil vector: error = %v, want ErrInvalidVector", err)
	}
	if err := ValidateVector([]float32{1, 2}, 3); !errors.Is(err, ErrInvalidVector) {
		t.Errorf("wrong dimension: error = %v, want ErrInvalidVector", err)
	}
	if err := ValidateVector([]float32{1, 2, 3}, 3); err != nil {
		t.Errorf("matching dimension: error = %v, want nil", err)
	}
	if err := ValidateVector([]float32{1, 2, 3}, 0); err != nil {
		t.Errorf("zero dimension skips length check: error = %v, want nil", err)
	}
}

func TestValidateVectors(t *testing.T) {
	vectors := [][]float32{{1, 2}, {3}}
	if err := ValidateVectors(vectors, 2); err == nil {
		t.Error("expected error for mismatched vector at index 1")
	}
	if err := ValidateVectors([][]float32{{1, 2}, {3, 4}}, 2); err != nil {
		t.Errorf("error = %v, want nil", err)
	}
	if err := ValidateVectors(nil, 2); !errors.Is(err, ErrInvalidVector) {
		t.Errorf("empty input: error = %v, want ErrInvalidVector", err)
	}
}

func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"empty query", ErrEmptyQuery, true},
		{"wrapped topK", WrapError(ErrInvalidTopK, "failed to query index"), true},
		{"threshold", ErrInvalidThreshold, true},
		{"server", ErrServer, false},
		{"unauthorized", ErrUnauthorized, false},
		{"plain", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		if got := IsValidationError(tt.err); got != tt.want {
			t.Errorf("IsValidationError(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.APIKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	cfg.APIKey = ""
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
	}

	cfg = Config{APIKey: "k"}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Validate() without base URL = %v, want ErrInvalidConfig", err)
	}
}
