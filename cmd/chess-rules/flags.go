// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Position options
	fenString  = flag.String("fen", "", "Starting position as FEN (default: standard start)")
	configFile = flag.String("config", "", "YAML configuration file")
	batchFile  = flag.String("batch", "", "Analyse every position in this file (one FEN per line, - for stdin)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	outputFormat = flag.String("W", "", "Output format: text, json, fen")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	noCoords     = flag.Bool("nocoords", false, "Don't print file and rank labels")
	noHighlight  = flag.Bool("nohighlight", false, "Don't mark the selected square and its destinations")
	jsonIndent   = flag.String("indent", "", "Indent JSON output with this string")

	// Batch options
	workers            = flag.Int("workers", 0, "Number of worker goroutines (0 = from config)")
	bufferSize         = flag.Int("buffer", -1, "Work queue capacity (-1 = from config)")
	stopOnError        = flag.Bool("stoponerror", false, "Stop the batch at the first position that fails to parse")
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate positions in a batch")
	exactDuplicates    = flag.Bool("exactdup", false, "Duplicates must also match the move clocks")
	materialPattern    = flag.String("z", "", "Keep positions with at least this material, e.g. QR:q")
	materialExact      = flag.String("y", "", "Keep positions with exactly this material")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", -1, "Verbosity: 0=nothing, 1=notices, 2=running commentary (-1 = from config)")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no notices)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags over the configuration. Flags left
// at their defaults keep the configured values.
func applyFlags(cfg *config.Config) error {
	if *fenString != "" {
		cfg.FEN = *fenString
	}
	if err := applyOutputFormatFlags(cfg); err != nil {
		return err
	}
	applyDisplayFlags(cfg)
	applyBatchFlags(cfg)
	applyLogFlags(cfg)
	return nil
}

// applyOutputFormatFlags configures the output format. -J wins over -W.
func applyOutputFormatFlags(cfg *config.Config) error {
	if *outputFormat != "" {
		format, err := config.ParseOutputFormat(*outputFormat)
		if err != nil {
			return err
		}
		cfg.Output.Format = format
	}
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	}
	return nil
}

// applyDisplayFlags configures the diagram and JSON layout.
func applyDisplayFlags(cfg *config.Config) {
	if *noCoords {
		cfg.Output.Coordinates = false
	}
	if *noHighlight {
		cfg.Output.Highlight = false
	}
	if *jsonIndent != "" {
		cfg.Output.Indent = *jsonIndent
	}
	if *outputFile != "" {
		cfg.Output.Filename = *outputFile
	}
}

// applyBatchFlags configures the worker pool.
func applyBatchFlags(cfg *config.Config) {
	if *workers > 0 {
		cfg.Batch.Workers = *workers
	}
	if *bufferSize >= 0 {
		cfg.Batch.BufferSize = *bufferSize
	}
	if *stopOnError {
		cfg.Batch.StopOnError = true
	}
	if *suppressDuplicates {
		cfg.Batch.SkipDuplicates = true
	}
	if *exactDuplicates {
		cfg.Batch.ExactDuplicates = true
	}
	if *materialPattern != "" {
		cfg.Batch.Material = *materialPattern
		cfg.Batch.MaterialExact = false
	}
	if *materialExact != "" {
		cfg.Batch.Material = *materialExact
		cfg.Batch.MaterialExact = true
	}
}

// applyLogFlags configures verbosity.
func applyLogFlags(cfg *config.Config) {
	if *verbosity >= 0 {
		cfg.Verbosity = *verbosity
	}
	if *quiet {
		cfg.Verbosity = 0
	}
}
