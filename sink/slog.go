package sink

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/jmswint/weft/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// Sink, so standard-library callers can feed the pipeline without
// knowing about it. slog groups map onto the Record group; the module
// is fixed per handler.
type SlogHandler struct {
	sink   Sink
	module string
	attrs  []core.Field
	group  string
}

// NewSlogHandler creates a new slog.Handler adapter feeding the given
// sink. Records carry the given module name.
func NewSlogHandler(s Sink, module string) *SlogHandler {
	return &SlogHandler{
		sink:   s,
		module: module,
	}
}

// Enabled reports whether the sink would log at the given level.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.sink.ShouldLog(slogLevelToCore(level), h.module)
}

// Handle converts a slog.Record to a core.Record and hands it to the sink.
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	rec := &core.Record{
		Time:    record.Time,
		Level:   slogLevelToCore(record.Level),
		Message: record.Message,
		Module:  h.module,
		Group:   h.group,
	}

	if record.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
		rec.File = frame.File
		rec.Line = frame.Line
	}

	if len(h.attrs) > 0 {
		rec.Fields = append(rec.Fields, h.attrs...)
	}
	record.Attrs(func(a slog.Attr) bool {
		rec.Fields = append(rec.Fields, slogAttrToField(a))
		return true
	})

	return h.sink.Handle(rec)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Field, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, a := range attrs {
		newAttrs = append(newAttrs, slogAttrToField(a))
	}
	return &SlogHandler{
		sink:   h.sink,
		module: h.module,
		attrs:  newAttrs,
		group:  h.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name. The
// first group becomes the record group; nested groups append with a
// slash separator.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "/" + name
	}
	return &SlogHandler{
		sink:   h.sink,
		module: h.module,
		attrs:  h.attrs,
		group:  group,
	}
}

func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level < slog.LevelInfo:
		return core.DebugLevel
	case level < slog.LevelWarn:
		return core.InfoLevel
	case level < slog.LevelError:
		return core.WarnLevel
	default:
		return core.ErrorLevel
	}
}

func slogAttrToField(a slog.Attr) core.Field {
	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindString:
		return core.Field{Key: a.Key, Type: core.StringType, Str: v.String()}
	case slog.KindInt64:
		return core.Field{Key: a.Key, Type: core.Int64Type, Int64: v.Int64()}
	case slog.KindFloat64:
		return core.Field{Key: a.Key, Type: core.Float64Type, Float64: v.Float64()}
	case slog.KindBool:
		var i int64
		if v.Bool() {
			i = 1
		}
		return core.Field{Key: a.Key, Type: core.BoolType, Int64: i}
	case slog.KindTime:
		return core.Field{Key: a.Key, Type: core.TimeType, Int64: v.Time().UnixNano()}
	case slog.KindDuration:
		return core.Field{Key: a.Key, Type: core.DurationType, Int64: int64(v.Duration())}
	default:
		return core.Field{Key: a.Key, Type: core.AnyType, Any: v.Any()}
	}
}
