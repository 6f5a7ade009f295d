package render

import (
	"strings"
	"testing"
	"time"

	"github.com/jmswint/weft/core"
)

func TestPlainRenderer_SingleLine(t *testing.T) {
	r := NewPlainRenderer(PlainConfig{})
	rec := &core.Record{
		Time:    time.Date(2026, 3, 1, 10, 22, 7, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: "ready",
		Module:  "server",
		File:    "/app/srv/main.go",
		Line:    42,
	}

	got := string(r.Render(0, rec))
	want := "[ INFO 2026-03-01T10:22:07Z: ready @ server main.go:42\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestPlainRenderer_MultiLine(t *testing.T) {
	r := NewPlainRenderer(PlainConfig{})
	rec := &core.Record{
		Time:    time.Date(2026, 3, 1, 10, 22, 7, 0, time.UTC),
		Level:   core.ErrorLevel,
		Message: "assertion failed\nexpected 4\nactual 5",
		Module:  "runner",
		File:    "/app/run.go",
		Line:    9,
	}

	got := string(r.Render(0, rec))
	want := strings.Join([]string{
		"┌ ERROR 2026-03-01T10:22:07Z: assertion failed",
		"│ expected 4",
		"│ actual 5",
		"└ @ runner run.go:9",
	}, "\n") + "\n"
	if got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestPlainRenderer_FieldsFoldIntoLines(t *testing.T) {
	r := NewPlainRenderer(PlainConfig{})
	rec := &core.Record{
		Time:    time.Date(2026, 3, 1, 10, 22, 7, 0, time.UTC),
		Level:   core.WarnLevel,
		Message: "slow query",
		Module:  "db",
		File:    "/app/db.go",
		Line:    17,
		Fields: []core.Field{
			{Key: "elapsed", Type: core.DurationType, Int64: int64(2 * time.Second)},
			{Key: "query", Type: core.StringType, Str: "SELECT *\nFROM t"},
		},
	}

	got := string(r.Render(0, rec))
	for _, want := range []string{
		"┌ WARN 2026-03-01T10:22:07Z: slow query\n",
		"│ elapsed = 2s\n",
		"│ query =\n",
		"│ SELECT *\n",
		"│ FROM t\n",
		"└ @ db db.go:17\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestPlainRenderer_CustomTimestampFormat(t *testing.T) {
	r := NewPlainRenderer(PlainConfig{TimestampFormat: "15:04:05"})
	rec := &core.Record{
		Time:    time.Date(2026, 3, 1, 10, 22, 7, 0, time.UTC),
		Level:   core.DebugLevel,
		Message: "tick",
		Module:  "clock",
		File:    "/c.go",
		Line:    1,
	}

	if got := string(r.Render(0, rec)); !strings.Contains(got, "DEBUG 10:22:07: tick") {
		t.Errorf("custom timestamp not applied: %q", got)
	}
}
