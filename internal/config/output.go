package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies how positions are written (text, json, fen)
	Format OutputFormat `yaml:"format"`

	// Coordinates prints file and rank labels around the diagram
	Coordinates bool `yaml:"coordinates"`

	// Highlight marks the selected square and its destinations
	Highlight bool `yaml:"highlight"`

	// Indent is the JSON indentation; empty writes compact JSON
	Indent string `yaml:"indent"`

	// Filename is where output goes; empty means standard output
	Filename string `yaml:"file"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:      Text,
		Coordinates: true,
		Highlight:   true,
	}
}

// Validate checks the output settings.
func (o *OutputConfig) Validate() error {
	if o.Format < Text || o.Format > FEN {
		return fmt.Errorf("output format %d: %w", int(o.Format), errors.ErrInvalidConfig)
	}
	return nil
}
