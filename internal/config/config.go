// Package config provides configuration for chess-rules.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat selects how positions are written.
type OutputFormat int

const (
	Text OutputFormat = iota // Board diagram with status line
	JSON                     // One JSON snapshot per position
	FEN                      // Position descriptor only
)

var formatNames = [...]string{"text", "json", "fen"}

// String returns the lowercase name of the format.
func (f OutputFormat) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("OutputFormat(%d)", int(f))
	}
	return formatNames[f]
}

// ParseOutputFormat converts a format name, case-insensitively.
func ParseOutputFormat(name string) (OutputFormat, error) {
	for i, n := range formatNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return OutputFormat(i), nil
		}
	}
	return Text, fmt.Errorf("unknown output format %q: %w", name, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	// FEN is the starting position. Empty means the standard start.
	FEN string `yaml:"fen"`

	Verbosity int `yaml:"verbosity"` // 0=nothing, 1=notices, 2=running commentary

	Output OutputConfig `yaml:"output"`
	Batch  BatchConfig  `yaml:"batch"`

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     *NewOutputConfig(),
		Batch:      *NewBatchConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer positions are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer diagnostics are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Batch.Validate()
}
