package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// UnmarshalYAML accepts a format by name.
func (f *OutputFormat) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	format, err := ParseOutputFormat(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*f = format
	return nil
}

// MarshalYAML writes a format by name.
func (f OutputFormat) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}

// Load decodes YAML from r over the values already in cfg. Unknown keys are
// rejected. The result is validated.
func Load(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return errors.Wrap(fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig), "decoding config")
	}
	return cfg.Validate()
}

// LoadFile reads a YAML configuration file over the defaults.
func LoadFile(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", filename, err)
	}
	defer f.Close()

	cfg := NewConfig()
	if err := Load(f, cfg); err != nil {
		return nil, fmt.Errorf("'%s': %w", filename, err)
	}
	return cfg, nil
}

// Save writes the file-backed settings of cfg as YAML.
func Save(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
