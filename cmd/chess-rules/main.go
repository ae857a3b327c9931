// chess-rules is an interactive two-player chess board driven by text
// commands, with a batch mode for analysing files of positions.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if *batchFile != "" {
		os.Exit(batchMain(cfg, *batchFile))
	}
	os.Exit(sessionMain(cfg, os.Stdin))
}

// loadConfig reads the configuration file, if any, then applies flags.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if *configFile != "" {
		loaded, err := config.LoadFile(*configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := applyFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file from the flags or config.
func setupOutputFile(cfg *config.Config) {
	name := cfg.Output.Filename
	if name == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(name)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", name, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// sessionMain runs an interactive session and returns the exit code.
func sessionMain(cfg *config.Config, in io.Reader) int {
	session, err := NewSession(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	cfg.Logf(1, "Type 'help' for commands.\n")
	if err := session.Run(in); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading commands: %v\n", err)
		return 1
	}
	return 0
}

// batchMain analyses a file of positions and returns the exit code.
func batchMain(cfg *config.Config, filename string) int {
	in := io.Reader(os.Stdin)
	if filename != "-" {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", filename, err)
			return 1
		}
		defer file.Close()
		in = file
	}

	stats, err := runBatch(cfg, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if cfg.Verbosity > 0 {
		reportStatistics(cfg, stats)
	}
	if stats.Failed > 0 {
		return 2
	}
	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess board driven by text commands on stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-W):\n")
	fmt.Fprintf(os.Stderr, "  text   Board diagram with status line (default)\n")
	fmt.Fprintf(os.Stderr, "  json   JSON snapshot with destinations\n")
	fmt.Fprintf(os.Stderr, "  fen    Position descriptor\n")
	fmt.Fprintf(os.Stderr, "\nSession commands:\n")
	fmt.Fprint(os.Stderr, helpText)
}
