package logger

import (
	"fmt"
	"time"

	"github.com/jmswint/weft/core"
	"github.com/jmswint/weft/sink"
)

// Logger is the producer-facing front of a sink chain (immutable).
// It gates on level and on the sink's ShouldLog answer before a
// Record is ever allocated, so suppressed calls stay cheap.
type Logger struct {
	sink          sink.Sink
	level         core.Level
	module        string
	group         string
	fields        []core.Field
	includeCaller bool
	callerSkip    int
	catchPanics   bool
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	sink          sink.Sink
	level         core.Level
	module        string
	group         string
	fields        []core.Field
	includeCaller bool
	callerSkip    int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.InfoLevel, // Default level
		callerSkip: 3,              // Default skip for GetCaller
	}
}

// WithSink sets the sink chain the logger feeds
func (b *Builder) WithSink(s sink.Sink) *Builder {
	b.sink = s
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithModule sets the module name stamped on every record
func (b *Builder) WithModule(module string) *Builder {
	b.module = module
	return b
}

// WithGroup sets the display group (defaults to the module)
func (b *Builder) WithGroup(group string) *Builder {
	b.group = group
	return b
}

// WithFields adds default fields to all log records
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller enables caller file/line capture
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	l := &Logger{
		sink:          b.sink,
		level:         b.level,
		module:        b.module,
		group:         b.group,
		fields:        b.fields,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
	}
	// Cache the panic policy so the hot path skips the interface call.
	if b.sink != nil {
		l.catchPanics = b.sink.CatchPanics()
	}
	return l
}

// With creates a new Logger with additional fields (immutable operation)
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	clone := *l
	clone.fields = newFields
	return &clone
}

// ForModule creates a new Logger stamping records with the given
// module name. Module-scoped loggers share the same sink chain, which
// keeps per-module color assignment and repetition scoping coherent.
func (l *Logger) ForModule(module string) *Logger {
	clone := *l
	clone.module = module
	clone.group = ""
	return &clone
}

// Log logs a message at the specified level. Stream write errors
// surface here unmodified; nothing in the chain retries or swallows
// them.
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) error {
	if !l.enabled(level) {
		return nil
	}
	return l.log(level, msg, fields)
}

// enabled applies the level gate and the sink's cheap short-circuit.
func (l *Logger) enabled(level core.Level) bool {
	if level < l.level || l.sink == nil {
		return false
	}
	return l.sink.ShouldLog(level, l.module)
}

// log builds the record and hands it to the sink chain.
func (l *Logger) log(level core.Level, msg string, fields []core.Field) (err error) {
	rec := &core.Record{
		Time:    time.Now(),
		Level:   level,
		Message: msg,
		Module:  l.module,
		Group:   l.group,
	}
	if l.includeCaller {
		caller := core.GetCaller(l.callerSkip)
		rec.File = caller.File
		rec.Line = caller.Line
	}
	if len(l.fields)+len(fields) > 0 {
		rec.Fields = make([]core.Field, 0, len(l.fields)+len(fields))
		rec.Fields = append(rec.Fields, l.fields...)
		rec.Fields = append(rec.Fields, fields...)
	}

	if l.catchPanics {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("logger: sink panicked: %v", r)
			}
		}()
	}
	return l.sink.Handle(rec)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) error {
	if !l.enabled(core.DebugLevel) {
		return nil
	}
	return l.log(core.DebugLevel, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) error {
	if !l.enabled(core.InfoLevel) {
		return nil
	}
	return l.log(core.InfoLevel, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) error {
	if !l.enabled(core.WarnLevel) {
		return nil
	}
	return l.log(core.WarnLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) error {
	if !l.enabled(core.ErrorLevel) {
		return nil
	}
	return l.log(core.ErrorLevel, msg, fields)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) error {
	if !l.enabled(core.DebugLevel) {
		return nil
	}
	return l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) error {
	if !l.enabled(core.InfoLevel) {
		return nil
	}
	return l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) error {
	if !l.enabled(core.WarnLevel) {
		return nil
	}
	return l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) error {
	if !l.enabled(core.ErrorLevel) {
		return nil
	}
	return l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}
