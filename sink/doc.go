// Package sink implements the composable stages of the pipeline.
//
// Every stage satisfies the Sink interface and wraps the next stage
// by plain delegation; a chain is assembled by handing one sink to
// the constructor of the next:
//
//	stream, _ := sink.NewStreamSink(sink.StreamConfig{Writer: f})
//	ctx, _ := sink.NewFailureContextBuffer(sink.ContextConfig{Next: stream})
//	rep, _ := sink.NewRepetitionFilter(sink.RepeatConfig{
//		Next:    ctx,
//		Modules: []string{"runner"},
//	})
//
// Three filtering stages exist: RepetitionFilter collapses bursts of
// identical records into a "(repeated xN)" summary, the
// FailureContextBuffer withholds records until a failure marker
// arrives and then replays the most recent ones as context, and
// MultiSink fans out to several downstream sinks. StreamSink is the
// terminal stage writing rendered records to an io.Writer, flushing
// after every write.
//
// The stateful stages are intentionally not synchronized. External
// mutual exclusion, or confinement to one writer goroutine, is the
// caller's job; in exchange each Handle call is a plain synchronous
// function with records forwarded strictly in arrival order. Stream
// write errors propagate unmodified through the whole chain and
// nothing retries, since neither file offsets nor terminal control
// state are idempotent.
//
// SlogHandler adapts a Sink to the standard library's slog.Handler
// interface for producers that already speak slog.
package sink
