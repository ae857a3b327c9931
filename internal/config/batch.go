package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// BatchConfig holds settings for analysing a file of positions.
type BatchConfig struct {
	// Workers is the number of positions analysed concurrently
	Workers int `yaml:"workers"`

	// BufferSize is the capacity of the work and result queues
	BufferSize int `yaml:"buffer"`

	// StopOnError ends the batch at the first position that fails to parse
	StopOnError bool `yaml:"stop_on_error"`

	// SkipDuplicates drops positions already seen earlier in the batch
	SkipDuplicates bool `yaml:"skip_duplicates"`

	// ExactDuplicates also requires matching clocks for a duplicate
	ExactDuplicates bool `yaml:"exact_duplicates"`

	// Material keeps only positions with at least this material, e.g. "QR:q"
	Material string `yaml:"material"`

	// MaterialExact requires the material to match exactly
	MaterialExact bool `yaml:"material_exact"`
}

// NewBatchConfig creates a BatchConfig with default values.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{
		Workers:    1,
		BufferSize: 10,
	}
}

// Validate checks that the batch configuration is valid.
func (b *BatchConfig) Validate() error {
	if b.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", b.Workers, errors.ErrInvalidConfig)
	}
	if b.BufferSize < 0 {
		return fmt.Errorf("buffer size (%d) is negative: %w", b.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
