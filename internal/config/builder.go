package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithFEN sets the starting position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.FEN = fen
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithJSONOutput switches between JSON and text output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	if enabled {
		b.cfg.Output.Format = JSON
	} else if b.cfg.Output.Format == JSON {
		b.cfg.Output.Format = Text
	}
	return b
}

// WithCoordinates controls the file and rank labels.
func (b *ConfigBuilder) WithCoordinates(enabled bool) *ConfigBuilder {
	b.cfg.Output.Coordinates = enabled
	return b
}

// WithHighlight controls destination highlighting.
func (b *ConfigBuilder) WithHighlight(enabled bool) *ConfigBuilder {
	b.cfg.Output.Highlight = enabled
	return b
}

// WithWorkers sets the number of batch workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Batch.Workers = n
	return b
}

// WithBufferSize sets the batch queue capacity.
func (b *ConfigBuilder) WithBufferSize(n int) *ConfigBuilder {
	b.cfg.Batch.BufferSize = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostic writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
