// batch.go - Analysing files of positions with the worker pool
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/matching"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// BatchStats summarises a batch run.
type BatchStats struct {
	Positions  int // descriptors read
	Analysed   int // descriptors that parsed
	Failed     int
	Duplicates int // analysed but suppressed
	Unmatched  int // analysed but rejected by the material filter
	Moves      int // destinations over all analysed positions
}

// readPositions reads one descriptor per line. Blank lines and lines
// starting with '#' are skipped.
func readPositions(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	return fens, scanner.Err()
}

// runBatch analyses every descriptor in r concurrently and writes the
// results to cfg.OutputFile in input order. Parse failures are logged and
// counted; they do not stop the batch unless cfg.Batch.StopOnError is set.
// Positions not matching cfg.Batch.Material are dropped. With
// cfg.Batch.SkipDuplicates, only the first occurrence of a position is
// written.
func runBatch(cfg *config.Config, r io.Reader) (BatchStats, error) {
	var stats BatchStats

	material, err := matching.NewMaterialMatcher(cfg.Batch.Material, cfg.Batch.MaterialExact)
	if err != nil {
		return stats, err
	}

	fens, err := readPositions(r)
	if err != nil {
		return stats, err
	}
	stats.Positions = len(fens)

	results := worker.RunBatch(fens, cfg.Batch.Workers, cfg.Batch.BufferSize, cfg.Batch.StopOnError)
	w := output.NewWriter(cfg.OutputFile, cfg)
	if cfg.Output.Format == config.JSON {
		w = output.NewJSONWriter(cfg.OutputFile, cfg)
	}

	var detector *hashing.DuplicateDetector
	if cfg.Batch.SkipDuplicates {
		detector = hashing.NewDuplicateDetector(cfg.Batch.ExactDuplicates, 0)
	}

	for _, result := range results {
		if result.Error != nil {
			stats.Failed++
			cfg.Logf(1, "Position %d: %v\n", result.Index+1, result.Error)
			continue
		}
		stats.Analysed++
		if material.HasCriteria() && !material.MatchPosition(result.Board) {
			stats.Unmatched++
			cfg.Logf(2, "Position %d: does not match material %s\n", result.Index+1, material)
			continue
		}
		if detector != nil && detector.CheckAndAdd(result.Board) {
			stats.Duplicates++
			cfg.Logf(2, "Position %d: duplicate, skipped\n", result.Index+1)
			continue
		}
		stats.Moves += result.Moves

		if cfg.Output.Format == config.Text {
			fmt.Fprintf(cfg.OutputFile, "Position %d: %d move(s)\n", result.Index+1, result.Moves)
		}
		if err := w.WriteBoard(result.Board); err != nil {
			return stats, err
		}
		if cfg.Output.Format == config.Text {
			fmt.Fprintln(cfg.OutputFile, output.FormatDestinations(result.Board))
		}
		cfg.Logf(2, "Position %d: %s\n", result.Index+1, output.StatusLine(result.Board))
	}
	return stats, w.Close()
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(cfg *config.Config, stats BatchStats) {
	cfg.Logf(1, "%d position(s) analysed, %d failed, out of %d.\n", stats.Analysed, stats.Failed, stats.Positions)
	if stats.Unmatched > 0 {
		cfg.Logf(1, "%d position(s) did not match the material filter.\n", stats.Unmatched)
	}
	if stats.Duplicates > 0 {
		cfg.Logf(1, "%d duplicate position(s) skipped.\n", stats.Duplicates)
	}
}
