package sink

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/jmswint/weft/core"
	"github.com/jmswint/weft/render"
)

// flusher is implemented by buffered writers such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// StreamSink is the terminal stage of a chain: it renders each record
// and writes the bytes to an io.Writer. The stream is flushed after
// every write so output survives a crashing process; durability wins
// over throughput here.
//
// The mutex serializes the underlying stream only. Opening and
// closing the stream is the caller's job; the sink never takes
// ownership of it.
type StreamSink struct {
	mu       sync.Mutex
	writer   io.Writer
	flusher  flusher
	file     *os.File
	renderer render.Renderer
	width    int
	minLevel core.Level
	catch    bool
}

// StreamConfig holds configuration for the stream sink
type StreamConfig struct {
	// Writer to write to (required)
	Writer io.Writer
	// Renderer to use (default: PlainRenderer)
	Renderer render.Renderer
	// Width is the render width in cells (default: render.DefaultWidth)
	Width int
	// MinLevel is the lowest level this sink accepts via ShouldLog
	MinLevel core.Level
	// CatchPanics tells producers to recover panics around Handle
	CatchPanics bool
}

// NewStreamSink creates a new stream sink. Configuration errors are
// reported here, not at first use.
func NewStreamSink(cfg StreamConfig) (*StreamSink, error) {
	if cfg.Writer == nil {
		return nil, errors.New("sink: stream writer is required")
	}
	if cfg.Width < 0 {
		return nil, fmt.Errorf("sink: render width must not be negative, got %d", cfg.Width)
	}
	if cfg.Width == 0 {
		cfg.Width = render.DefaultWidth
	}
	if cfg.Renderer == nil {
		cfg.Renderer = render.NewPlainRenderer(render.PlainConfig{})
	}

	s := &StreamSink{
		writer:   cfg.Writer,
		renderer: cfg.Renderer,
		width:    cfg.Width,
		minLevel: cfg.MinLevel,
		catch:    cfg.CatchPanics,
	}
	s.flusher, _ = cfg.Writer.(flusher)
	s.file, _ = cfg.Writer.(*os.File)
	return s, nil
}

// Handle renders and writes one record, then flushes the stream.
// Write errors return unmodified; the stream state after a partial
// write is not assumed recoverable, so there is no retry.
func (s *StreamSink) Handle(rec *core.Record) error {
	data := s.renderer.Render(s.width, rec)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.writer.Write(data); err != nil {
		return err
	}
	if s.flusher != nil {
		return s.flusher.Flush()
	}
	if s.file != nil {
		return s.file.Sync()
	}
	return nil
}

// ShouldLog reports whether the level passes this sink's gate.
func (s *StreamSink) ShouldLog(level core.Level, _ string) bool {
	return level >= s.minLevel
}

// MinLevel returns the configured minimum level.
func (s *StreamSink) MinLevel() core.Level {
	return s.minLevel
}

// CatchPanics reports the configured panic policy.
func (s *StreamSink) CatchPanics() bool {
	return s.catch
}
