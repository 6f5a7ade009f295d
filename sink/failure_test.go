package sink

import (
	"fmt"
	"reflect"
	"testing"
)

func newTestBuffer(t *testing.T, next Sink, capacity int) *FailureContextBuffer {
	t.Helper()
	b, err := NewFailureContextBuffer(ContextConfig{Next: next, Capacity: capacity})
	if err != nil {
		t.Fatalf("NewFailureContextBuffer() error = %v", err)
	}
	return b
}

func TestFailureContextBuffer_ReplaysLastK(t *testing.T) {
	out := &captureSink{}
	b := newTestBuffer(t, out, 5)

	for i := 1; i <= 7; i++ {
		if err := b.Handle(rec("runner", fmt.Sprintf("step %d", i))); err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
	}
	if len(out.records) != 0 {
		t.Fatalf("context records leaked downstream before any failure: %v", out.messages())
	}

	if err := b.Handle(rec("runner", "case FAILED: assertion")); err != nil {
		t.Fatalf("Handle(failure) error = %v", err)
	}

	want := []string{"step 3", "step 4", "step 5", "step 6", "step 7", "case FAILED: assertion"}
	if got := out.messages(); !reflect.DeepEqual(got, want) {
		t.Errorf("downstream = %v, want %v", got, want)
	}
	if got := b.Stats().GetFlushed(); got != 5 {
		t.Errorf("flushed = %d, want 5", got)
	}
}

func TestFailureContextBuffer_PartialBuffer(t *testing.T) {
	out := &captureSink{}
	b := newTestBuffer(t, out, 5)

	b.Handle(rec("runner", "setup"))
	b.Handle(rec("runner", "connect"))
	b.Handle(rec("runner", "probe FAILED"))

	want := []string{"setup", "connect", "probe FAILED"}
	if got := out.messages(); !reflect.DeepEqual(got, want) {
		t.Errorf("downstream = %v, want %v", got, want)
	}
}

func TestFailureContextBuffer_ClearedAfterFlush(t *testing.T) {
	out := &captureSink{}
	b := newTestBuffer(t, out, 5)

	b.Handle(rec("runner", "step"))
	b.Handle(rec("runner", "first FAILED"))
	b.Handle(rec("runner", "second FAILED"))

	// The second failure must come with no context: the ring was
	// drained by the first and nothing arrived in between.
	want := []string{"step", "first FAILED", "second FAILED"}
	if got := out.messages(); !reflect.DeepEqual(got, want) {
		t.Errorf("downstream = %v, want %v", got, want)
	}
}

func TestFailureContextBuffer_RecordsPreservedVerbatim(t *testing.T) {
	out := &captureSink{}
	b := newTestBuffer(t, out, 3)

	original := rec("runner", "step")
	original.Line = 77
	b.Handle(original)
	b.Handle(rec("runner", "x FAILED"))

	if out.records[0] != original {
		t.Error("replayed record is not the original handle argument")
	}
}

func TestFailureContextBuffer_CustomMarker(t *testing.T) {
	out := &captureSink{}
	b, err := NewFailureContextBuffer(ContextConfig{Next: out, Marker: "panic:"})
	if err != nil {
		t.Fatal(err)
	}

	b.Handle(rec("runner", "this FAILED but is not a trigger here"))
	b.Handle(rec("runner", "panic: nil deref"))

	want := []string{"this FAILED but is not a trigger here", "panic: nil deref"}
	if got := out.messages(); !reflect.DeepEqual(got, want) {
		t.Errorf("downstream = %v, want %v", got, want)
	}
}

func TestFailureContextBuffer_FlushErrorPropagates(t *testing.T) {
	out := &captureSink{failOn: "step 2"}
	b := newTestBuffer(t, out, 5)

	b.Handle(rec("runner", "step 1"))
	b.Handle(rec("runner", "step 2"))

	if err := b.Handle(rec("runner", "x FAILED")); err != errCapture {
		t.Errorf("Handle(failure) error = %v, want capture error", err)
	}
	// step 1 made it out before the error; the trigger did not.
	want := []string{"step 1"}
	if got := out.messages(); !reflect.DeepEqual(got, want) {
		t.Errorf("downstream = %v, want %v", got, want)
	}
}

func TestFailureContextBuffer_ConfigErrors(t *testing.T) {
	if _, err := NewFailureContextBuffer(ContextConfig{}); err == nil {
		t.Error("missing downstream sink not rejected")
	}
	if _, err := NewFailureContextBuffer(ContextConfig{Next: &captureSink{}, Capacity: -1}); err == nil {
		t.Error("negative capacity not rejected")
	}
}

func TestFailureContextBuffer_DefaultCapacity(t *testing.T) {
	out := &captureSink{}
	b := newTestBuffer(t, out, 0)

	for i := 1; i <= 9; i++ {
		b.Handle(rec("runner", fmt.Sprintf("step %d", i)))
	}
	b.Handle(rec("runner", "x FAILED"))

	if got := len(out.records); got != DefaultCapacity+1 {
		t.Errorf("flushed %d records, want default capacity %d plus trigger", got, DefaultCapacity)
	}
	if out.records[0].Message != "step 5" {
		t.Errorf("oldest replayed = %q, want step 5", out.records[0].Message)
	}
}
