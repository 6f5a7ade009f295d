package logger_test

import (
	"os"

	"github.com/jmswint/weft/logger"
	"github.com/jmswint/weft/render"
	"github.com/jmswint/weft/sink"
)

// Example assembles the full pipeline: repetition collapsing in
// front of failure-context buffering in front of a column-rendering
// stream sink.
func Example() {
	colors := render.NewColorAssigner(nil)
	stream, err := sink.NewStreamSink(sink.StreamConfig{
		Writer:   os.Stdout,
		Renderer: render.NewColumnRenderer(render.ColumnConfig{Colors: colors}),
		Width:    100,
	})
	if err != nil {
		panic(err)
	}

	ctx, err := sink.NewFailureContextBuffer(sink.ContextConfig{Next: stream})
	if err != nil {
		panic(err)
	}

	rep, err := sink.NewRepetitionFilter(sink.RepeatConfig{
		Next:    ctx,
		Modules: []string{"runner"},
	})
	if err != nil {
		panic(err)
	}

	log := logger.NewBuilder().
		WithSink(rep).
		WithLevel(logger.DebugLevel).
		WithModule("runner").
		WithCaller(true).
		Build()

	for i := 0; i < 20; i++ {
		log.Debug("polling for results")
	}
	log.Error("case 7 FAILED: expected 4, got 5")
}

// ExampleLogger_ForModule derives per-module loggers over one shared
// chain so each module keeps a stable color.
func ExampleLogger_ForModule() {
	stream, err := sink.NewStreamSink(sink.StreamConfig{Writer: os.Stdout})
	if err != nil {
		panic(err)
	}
	root := logger.NewBuilder().WithSink(stream).Build()

	parser := root.ForModule("parser")
	engine := root.ForModule("engine")

	parser.Info("32 files parsed")
	engine.Info("plan ready", logger.Int("steps", 7))
}
