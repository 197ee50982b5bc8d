package scoring

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Weights maps each category to its share of the pulse score. The table
// is renormalized over the available categories at aggregation time.
type Weights map[Category]float64

// DefaultWeights returns the standard category weight table. The seven
// entries sum to 1.00.
func DefaultWeights() Weights {
	return Weights{
		CategoryVerification: 0.25,
		CategoryMaturity:     0.15,
		CategoryListings:     0.15,
		CategoryActivity:     0.10,
		CategoryEngagement:   0.10,
		CategoryCommunity:    0.10,
		CategoryRedFlags:     0.15,
	}
}

// Default gate thresholds. Values exactly at a threshold pass the gate.
const (
	DefaultMinConfidence = 0.35
	DefaultMinCoverage   = 0.40
)

const weightSumTolerance = 1e-9

// GateConfig holds the insufficient-data gate thresholds.
type GateConfig struct {
	MinConfidence float64 `json:"min_confidence" toml:"min_confidence" yaml:"min_confidence"`
	MinCoverage   float64 `json:"min_coverage" toml:"min_coverage" yaml:"min_coverage"`
}

// Config is the injectable engine configuration: the category weight
// table and the gate thresholds.
type Config struct {
	Weights Weights    `json:"weights" toml:"weights" yaml:"weights"`
	Gate    GateConfig `json:"gate" toml:"gate" yaml:"gate"`
}

// NewDefaultConfig returns the standard engine configuration.
func NewDefaultConfig() Config {
	return Config{
		Weights: DefaultWeights(),
		Gate: GateConfig{
			MinConfidence: DefaultMinConfidence,
			MinCoverage:   DefaultMinCoverage,
		},
	}
}

// Validate checks that the weight table covers every category exactly
// once, carries no negative weight and sums to 1.0, and that the gate
// thresholds sit within [0,1].
func (c Config) Validate() error {
	sum := 0.0
	for _, category := range CategoryOrder {
		weight, ok := c.Weights[category]
		if !ok {
			return fmt.Errorf("weight table is missing category %s", category)
		}
		if weight < 0 {
			return fmt.Errorf("weight for category %s is negative: %v", category, weight)
		}
		sum += weight
	}
	if len(c.Weights) != len(CategoryOrder) {
		return fmt.Errorf("weight table has %d entries, want %d", len(c.Weights), len(CategoryOrder))
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("category weights must sum to 1.0, got %v", sum)
	}
	if c.Gate.MinConfidence < 0 || c.Gate.MinConfidence > 1 {
		return fmt.Errorf("gate min_confidence must be within [0,1], got %v", c.Gate.MinConfidence)
	}
	if c.Gate.MinCoverage < 0 || c.Gate.MinCoverage > 1 {
		return fmt.Errorf("gate min_coverage must be within [0,1], got %v", c.Gate.MinCoverage)
	}
	return nil
}

// LoadConfigFromFile loads a configuration file over the defaults, so a
// partial file overrides only the values it names. The format follows the
// file extension: .toml, .yaml/.yml or .json.
func LoadConfigFromFile(path string) (Config, error) {
	config := NewDefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &config)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	case ".json":
		err = json.Unmarshal(data, &config)
	default:
		return Config{}, fmt.Errorf("unsupported config format %q for %s", filepath.Ext(path), path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config in %s: %w", path, err)
	}
	return config, nil
}
