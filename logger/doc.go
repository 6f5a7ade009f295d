// Package logger provides the producer-facing API over a sink chain.
//
// A Logger is built once with the Builder, holds an immutable module
// name, level gate, and default fields, and stays cheap to call: a
// record below the level gate, or one the sink chain answers
// ShouldLog=false for, never allocates. ForModule derives per-module
// loggers that share one chain, which is what keeps module colors and
// the repetition watch-set consistent across producers.
//
// Unlike most logging front-ends the leveled methods return an error.
// The pipeline's contract is that stream write failures reach the
// producer unmodified; hiding them behind a void method would break
// that. Callers that do not care can ignore the return like any other
// error in Go.
package logger
