// Package errors provides structured error types for the signal-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: signal name, Go type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDispatch, errors.KindTypeMismatch).
//		Signal("health_changed").
//		GoType("string").
//		Detail("cannot convert string to int").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseDispatch, "string", "int")
//	err := errors.ArityMismatch(errors.PhaseDispatch, 3, 2)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
