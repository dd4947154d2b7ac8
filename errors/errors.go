package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse  Phase = "parse"  // byte stream to value tree
	PhaseDecode Phase = "decode" // value tree to target type
)

// Kind categorizes the error
type Kind string

const (
	KindUnexpectedChar   Kind = "unexpected_character"
	KindUnexpectedEOF    Kind = "unexpected_eof"
	KindLeadingZero      Kind = "integer_leading_zero"
	KindNotRepresentable Kind = "integer_not_representable"
	KindTypeMismatch     Kind = "type_mismatch"
	KindValueNotFound    Kind = "value_not_found"
	KindDataCorrupted    Kind = "data_corrupted"
	KindInvalidUTF8      Kind = "invalid_utf8"
	KindNumberOutOfRange Kind = "number_out_of_range"
	KindDepthExceeded    Kind = "depth_exceeded"
)

// Error is the structured error type used throughout the library.
//
// Parse-phase errors carry a byte Position into the input; decode-phase
// errors carry the coding Path from the root value to the failure point.
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Expected string
	Actual   string
	Detail   string
	Path     []string
	Position int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	} else if e.Phase == PhaseParse {
		fmt.Fprintf(&b, " at offset %d", e.Position)
	}

	if e.Expected != "" || e.Actual != "" {
		b.WriteString(": ")
		if e.Expected != "" && e.Actual != "" {
			b.WriteString("expected ")
			b.WriteString(e.Expected)
			b.WriteString(", got ")
			b.WriteString(e.Actual)
		} else if e.Expected != "" {
			b.WriteString("expected ")
			b.WriteString(e.Expected)
		} else {
			b.WriteString("got ")
			b.WriteString(e.Actual)
		}
	}

	if e.Detail != "" {
		if e.Expected != "" || e.Actual != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the coding path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Position sets the byte offset into the input
func (b *Builder) Position(pos int) *Builder {
	b.err.Position = pos
	return b
}

// Expected sets the expected shape or byte class
func (b *Builder) Expected(s string) *Builder {
	b.err.Expected = s
	return b
}

// Actual sets the shape or byte actually encountered
func (b *Builder) Actual(s string) *Builder {
	b.err.Actual = s
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnexpectedChar creates an error for a byte that matches no grammar production
func UnexpectedChar(pos int, got byte, expected string) *Error {
	return &Error{
		Phase:    PhaseParse,
		Kind:     KindUnexpectedChar,
		Position: pos,
		Expected: expected,
		Actual:   fmt.Sprintf("%q", got),
		Value:    got,
	}
}

// UnexpectedEOF creates an error for input exhausted mid-production
func UnexpectedEOF(pos int, expected string) *Error {
	return &Error{
		Phase:    PhaseParse,
		Kind:     KindUnexpectedEOF,
		Position: pos,
		Expected: expected,
		Actual:   "end of input",
	}
}

// LeadingZero creates an error for a magnitude with a superfluous leading zero
func LeadingZero(pos int) *Error {
	return &Error{
		Phase:    PhaseParse,
		Kind:     KindLeadingZero,
		Position: pos,
		Detail:   "integer has leading zero",
	}
}

// NotRepresentable creates an error for a magnitude overflowing its accumulator
func NotRepresentable(pos int, detail string) *Error {
	return &Error{
		Phase:    PhaseParse,
		Kind:     KindNotRepresentable,
		Position: pos,
		Detail:   detail,
	}
}

// DepthExceeded creates an error for input nested beyond the configured limit
func DepthExceeded(pos int, limit int) *Error {
	return &Error{
		Phase:    PhaseParse,
		Kind:     KindDepthExceeded,
		Position: pos,
		Detail:   fmt.Sprintf("nesting exceeds %d levels", limit),
		Value:    limit,
	}
}

// TypeMismatch creates an error for a value variant not matching the requested shape
func TypeMismatch(path []string, expected, actual string) *Error {
	return &Error{
		Phase:    PhaseDecode,
		Kind:     KindTypeMismatch,
		Path:     path,
		Expected: expected,
		Actual:   actual,
	}
}

// ValueNotFound creates an error for a missing key or an exhausted sequence
func ValueNotFound(path []string, detail string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindValueNotFound,
		Path:   path,
		Detail: detail,
	}
}

// DataCorrupted creates an error for a structurally present value failing
// secondary validation
func DataCorrupted(path []string, detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindDataCorrupted,
		Path:   path,
		Detail: detail,
		Cause:  cause,
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, path []string, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Path:   path,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// NumberOutOfRange creates an error for a checked narrowing that does not fit
func NumberOutOfRange(path []string, value any, targetType string) *Error {
	return &Error{
		Phase:    PhaseDecode,
		Kind:     KindNumberOutOfRange,
		Path:     path,
		Expected: targetType,
		Detail:   fmt.Sprintf("value %v overflows %s", value, targetType),
		Value:    value,
	}
}
