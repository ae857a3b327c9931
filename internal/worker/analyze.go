package worker

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Analyze parses the descriptor of item and generates the destinations of
// every piece of the side to move.
func Analyze(item WorkItem) ProcessResult {
	result := ProcessResult{Index: item.Index, FEN: item.FEN}

	board, err := engine.CreateBoard(item.FEN)
	if err != nil {
		result.Error = err
		return result
	}
	result.Board = board
	result.Destinations = engine.AllDestinations(board)
	for _, dests := range result.Destinations {
		result.Moves += len(dests)
	}
	return result
}

// RunBatch analyses every descriptor with the given pool settings and
// returns the results in input order. When stopOnError is set, analysis
// stops after the first descriptor that fails to parse; results for
// positions not analysed are omitted.
func RunBatch(fens []string, numWorkers, bufferSize int, stopOnError bool) []ProcessResult {
	pool := NewPool(numWorkers, bufferSize, Analyze)
	pool.Start()

	go func() {
		for i, fen := range fens {
			if pool.IsStopped() {
				break
			}
			pool.Submit(WorkItem{FEN: fen, Index: i})
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(fens))
	for r := range pool.Results() {
		if r.Error != nil && stopOnError {
			pool.Stop()
		}
		results = append(results, r)
	}
	SortByIndex(results)
	return results
}

// SortByIndex restores input order.
func SortByIndex(results []ProcessResult) {
	slices.SortFunc(results, func(a, b ProcessResult) bool {
		return a.Index < b.Index
	})
}
