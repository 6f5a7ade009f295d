package core

import (
	"path/filepath"
	"runtime"
	"time"
)

// Level represents the severity level of a log record
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Record represents a single log event with all its metadata.
//
// A Record is constructed once and never mutated afterwards. Sinks
// that buffer records (the failure-context buffer, the repetition
// filter) hold the pointer and rely on this immutability; a sink that
// needs a modified variant must go through Clone.
type Record struct {
	Time    time.Time
	Level   Level
	Message string
	// Module is the name of the producing subsystem. It keys the
	// background color assignment and the repetition watch-set.
	Module string
	// Group refines Module for display purposes. Empty means "same
	// as Module"; use GroupName to read the effective value.
	Group string
	// ID is an optional producer-assigned fingerprint. Records with
	// equal ID, Module and Message are considered repeats by the
	// repetition filter.
	ID     string
	File   string
	Line   int
	Fields []Field
}

// GroupName returns the effective group of the record, falling back
// to the module when no explicit group was set.
func (r *Record) GroupName() string {
	if r.Group != "" {
		return r.Group
	}
	return r.Module
}

// Clone returns a copy of the record with its own Fields slice, so
// the copy can be modified without violating the immutability of the
// original.
func (r *Record) Clone() *Record {
	c := *r
	if len(r.Fields) > 0 {
		c.Fields = make([]Field, len(r.Fields))
		copy(c.Fields, r.Fields)
	}
	return &c
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}
