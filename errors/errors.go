package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConnect  Phase = "connect"  // signal connection setup
	PhaseEmit     Phase = "emit"     // signal emission
	PhaseDispatch Phase = "dispatch" // callable invocation with marshalled args
	PhaseRegistry Phase = "registry" // hot-reload connection registry
	PhaseEngine   Phase = "engine"   // host engine primitives
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch    Kind = "type_mismatch"
	KindArityMismatch   Kind = "arity_mismatch"
	KindNotFound        Kind = "not_found"
	KindInvalidInput    Kind = "invalid_input"
	KindDeadObject      Kind = "dead_object"
	KindDuplicate       Kind = "duplicate"
	KindMissingReceiver Kind = "missing_receiver"
	KindNoInstance      Kind = "no_instance"
	KindInstanceLocked  Kind = "instance_locked"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	GoType string
	Signal string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Signal != "" {
		b.WriteString(" on signal ")
		b.WriteString(e.Signal)
	}

	if e.GoType != "" {
		b.WriteString(": Go type ")
		b.WriteString(e.GoType)
	}

	if e.Detail != "" {
		if e.GoType != "" {
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

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Signal sets the signal name
func (b *Builder) Signal(name string) *Builder {
	b.err.Signal = name
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

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, goType, wantType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		GoType: goType,
		Detail: fmt.Sprintf("cannot convert to %s", wantType),
	}
}

// ArityMismatch creates an argument count mismatch error
func ArityMismatch(phase Phase, got, want int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindArityMismatch,
		Detail: fmt.Sprintf("got %d arguments, want %d", got, want),
		Value:  got,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// DeadObject creates an error for operations on a freed object
func DeadObject(phase Phase, id uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDeadObject,
		Detail: fmt.Sprintf("object %d is no longer valid", id),
		Value:  id,
	}
}

// Duplicate creates an error for a connection that already exists
func Duplicate(signal, callable string) *Error {
	return &Error{
		Phase:  PhaseConnect,
		Kind:   KindDuplicate,
		Signal: signal,
		Detail: fmt.Sprintf("callable %q is already connected", callable),
	}
}

// MissingReceiver creates an error for finalizing a builder without a receiver
func MissingReceiver(signal string) *Error {
	return &Error{
		Phase:  PhaseConnect,
		Kind:   KindMissingReceiver,
		Signal: signal,
		Detail: "no receiver configured; set a function, method or object receiver before Done()",
	}
}

// NoInstance creates an error for receiver objects without a bound instance
func NoInstance(phase Phase, id uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNoInstance,
		Detail: fmt.Sprintf("object %d has no bound instance", id),
		Value:  id,
	}
}

// InstanceLocked creates an error for re-entrant receiver locking
func InstanceLocked(phase Phase, id uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInstanceLocked,
		Detail: fmt.Sprintf("instance of object %d is already exclusively locked", id),
		Value:  id,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
