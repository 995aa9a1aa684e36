// Package config loads and validates the YAML run configuration the
// CLI consumes. The engine itself never sees this: it takes plain
// structs, so library users can wire it however they like.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrConfig indicates an unreadable or invalid run configuration.
var ErrConfig = errors.New("config: invalid run configuration")

// Run is one optimization run as described by a YAML file.
type Run struct {
	// Input and Output are GeoJSON feature-collection paths.
	Input  string `yaml:"input" validate:"required"`
	Output string `yaml:"output" validate:"required"`

	// Weights is the scorer checkpoint path (.npz or .json).
	Weights string `yaml:"weights" validate:"required"`

	// LabelField and SlopeField name the feature properties to read.
	// AreaField is optional; empty means planar area.
	LabelField string `yaml:"label_field" validate:"required"`
	SlopeField string `yaml:"slope_field" validate:"required"`
	AreaField  string `yaml:"area_field"`

	// FarmlandLabels and ForestLabels drive classification. Overlap is
	// rejected at read time.
	FarmlandLabels []string `yaml:"farmland_labels" validate:"min=1"`
	ForestLabels   []string `yaml:"forest_labels" validate:"min=1"`

	// Pairs is the requested number of swap rounds.
	Pairs int `yaml:"pairs" validate:"gt=0"`

	// Adjacency selects the construction strategy: "auto" (default),
	// "pairs" (requires NeighborPairs), or "geometry".
	Adjacency string `yaml:"adjacency" validate:"omitempty,oneof=auto pairs geometry"`

	// NeighborPairs is an optional path to a precomputed neighbor-pair
	// table (CSV of "src,nbr" index pairs) for the fast path.
	NeighborPairs string `yaml:"neighbor_pairs"`
}

// Load reads and validates a run configuration file.
func Load(path string) (*Run, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	return Parse(raw)
}

// Parse decodes and validates YAML bytes.
func Parse(raw []byte) (*Run, error) {
	var r Run
	if err := yaml.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if r.Adjacency == "" {
		r.Adjacency = "auto"
	}
	if err := validator.New().Struct(&r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if r.Adjacency == "pairs" && r.NeighborPairs == "" {
		return nil, fmt.Errorf("%w: adjacency=pairs requires neighbor_pairs", ErrConfig)
	}

	return &r, nil
}
