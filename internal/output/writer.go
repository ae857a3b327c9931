package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// BoardWriter is the interface for writing positions to output.
// Different implementations handle different output formats (text, JSON, FEN).
type BoardWriter interface {
	// WriteBoard writes a single position to the output.
	WriteBoard(board *chess.Board) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for the configured output format.
func NewWriter(w io.Writer, cfg *config.Config) BoardWriter {
	switch cfg.Output.Format {
	case config.JSON:
		return NewJSONWriterSingle(w, cfg)
	case config.FEN:
		return NewFENWriter(w)
	default:
		return NewTextWriter(w, cfg)
	}
}

// TextWriter writes positions as diagrams.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteBoard writes a diagram followed by the status line.
func (tw *TextWriter) WriteBoard(board *chess.Board) error {
	return writeText(tw.w, board, tw.cfg.Output)
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// FENWriter writes one descriptor per line.
type FENWriter struct {
	w io.Writer
}

// NewFENWriter creates a new FEN writer.
func NewFENWriter(w io.Writer) *FENWriter {
	return &FENWriter{w: w}
}

// WriteBoard writes the descriptor of board.
func (fw *FENWriter) WriteBoard(board *chess.Board) error {
	_, err := fmt.Fprintln(fw.w, engine.BoardToFEN(board))
	return err
}

// Flush is a no-op.
func (fw *FENWriter) Flush() error {
	return nil
}

// Close closes the FEN writer.
func (fw *FENWriter) Close() error {
	return nil
}

// JSONWriter writes positions in JSON format.
// It buffers positions and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	boards []*JSONBoard
	single bool // If true, write each position immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches positions and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		boards: make([]*JSONBoard, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each position immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteBoard buffers a snapshot (or writes it immediately in single mode).
// The snapshot is taken now, so later changes to board are not reflected.
func (jw *JSONWriter) WriteBoard(board *chess.Board) error {
	if jw.single {
		return WriteBoardJSON(jw.w, board, jw.cfg.Output.Indent)
	}
	jw.boards = append(jw.boards, BoardToJSON(board))
	return nil
}

// Flush writes all buffered positions as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.boards) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", jw.cfg.Output.Indent)
	err := enc.Encode(&JSONOutput{Positions: jw.boards})

	// Clear buffer after writing
	jw.boards = jw.boards[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
