package endee

import (
	"fmt"
	"strings"
)

// Validate validates the Endee client configuration
func (cfg Config) Validate() error {
	if cfg.BaseURL == "" {
		return fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("%w: API key is required (set %s)", ErrInvalidConfig, EnvAPIKey)
	}
	return nil
}

// GetDefaultConfig returns a default Endee client configuration
func GetDefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	}
}

// NormalizeSpaceType maps common distance metric aliases onto the space
// type names the server accepts. Unknown names fall back to cosine.
func NormalizeSpaceType(spaceType string) string {
	switch strings.ToLower(spaceType) {
	case SpaceL2, "euclidean":
		return SpaceL2
	case SpaceIP, "dot", "dotproduct":
		return SpaceIP
	case SpaceCosine, "":
		return SpaceCosine
	default:
		return SpaceCosine
	}
}

// ValidateVector checks a dense vector against the index dimension. A zero
// dimension skips the length check.
func ValidateVector(vector []float32, dimension int) error {
	if len(vector) == 0 {
		return ErrInvalidVector
	}
	if dimension > 0 && len(vector) != dimension {
		return fmt.Errorf("%w: expected dimension %d, got %d", ErrInvalidVector, dimension, len(vector))
	}
	return nil
}

// ValidateVectors validates multiple dense vectors against the index dimension.
func ValidateVectors(vectors [][]float32, dimension int) error {
	if len(vectors) == 0 {
		return ErrInvalidVector
	}
	for i, vector := range vectors {
		if err := ValidateVector(vector, dimension); err != nil {
			return fmt.Errorf("invalid vector at index %d: %w", i, err)
		}
	}
	return nil
}
