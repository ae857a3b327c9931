// Package worker provides a worker pool for analysing positions in parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// WorkItem is one position descriptor to analyse.
type WorkItem struct {
	FEN   string
	Index int // Input order, used to restore ordering of results
}

// ProcessResult is the analysis of one position.
type ProcessResult struct {
	Index        int
	FEN          string
	Board        *chess.Board                   // nil when the descriptor did not parse
	Destinations map[chess.Square][]chess.Square // every movable piece of the side to move
	Moves        int                            // total destinations
	Error        error
}

// ProcessFunc analyses a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a fixed number of workers over a shared queue of positions.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
	processed   int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the queue capacity. Zero means unbuffered.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 0 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with the given workers and queue capacity. A nil
// processFunc means Analyze.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	return NewPoolWithOptions(processFunc, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	if processFunc == nil {
		processFunc = Analyze
	}
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker analyses items until the queue is closed. After Stop, remaining
// items are drained without being analysed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue
		}
		result := p.processFunc(item)
		atomic.AddInt64(&p.processed, 1)
		p.resultChan <- result
	}
}

// Submit queues a position, blocking while the queue is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit queues a position without blocking.
// Returns false if the queue is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop signals workers to stop analysing new items.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the queue and waits for all workers to finish, then closes
// the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the channel of analysed positions, in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Processed returns how many items have been analysed so far.
func (p *Pool) Processed() int64 {
	return atomic.LoadInt64(&p.processed)
}
