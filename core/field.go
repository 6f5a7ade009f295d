package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FieldType represents the type of a field value
type FieldType uint8

const (
	StringType FieldType = iota
	IntType
	Int64Type
	Float64Type
	BoolType
	TimeType
	DurationType
	ErrorType
	AnyType
)

// Field represents a key-value pair attached to a Record. Values are
// encoded into fixed-size numeric fields wherever possible; Any is
// the fallback for arbitrary types.
type Field struct {
	Key     string
	Type    FieldType
	Int64   int64
	Float64 float64
	Str     string
	Any     interface{}
}

// StringValue returns the string representation of a field's value.
// String and error values may contain embedded newlines; renderers
// must lay such values out over multiple lines (see Multiline).
func (f Field) StringValue() string {
	switch f.Type {
	case StringType:
		return f.Str
	case IntType, Int64Type:
		return strconv.FormatInt(f.Int64, 10)
	case Float64Type:
		return strconv.FormatFloat(f.Float64, 'f', -1, 64)
	case BoolType:
		return strconv.FormatBool(f.Int64 == 1)
	case TimeType:
		return time.Unix(0, f.Int64).Format(time.RFC3339)
	case DurationType:
		return time.Duration(f.Int64).String()
	case ErrorType:
		return f.Str
	case AnyType:
		return fmt.Sprintf("%v", f.Any)
	default:
		return ""
	}
}

// Multiline reports whether the rendered value spans more than one
// line. Only string-backed types can; the numeric encodings never
// contain a newline.
func (f Field) Multiline() bool {
	switch f.Type {
	case StringType, ErrorType:
		return strings.ContainsRune(f.Str, '\n')
	case AnyType:
		return strings.ContainsRune(f.StringValue(), '\n')
	default:
		return false
	}
}
