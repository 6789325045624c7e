package variant

import (
	"fmt"
	"reflect"

	"github.com/wippyai/signal-runtime/errors"
)

// Variant is the host engine's dynamically-typed value representation.
// Signal arguments cross the engine boundary as variants; typed signal
// handles marshal to and from them at the emit/dispatch edges.
type Variant struct {
	v any
}

// New wraps a Go value. Wrapping an existing Variant returns it unchanged.
func New(v any) Variant {
	if vv, ok := v.(Variant); ok {
		return vv
	}
	return Variant{v: v}
}

// Nil returns the nil variant.
func Nil() Variant {
	return Variant{}
}

// IsNil reports whether the variant holds no value.
func (v Variant) IsNil() bool {
	return v.v == nil
}

// Interface returns the wrapped value.
func (v Variant) Interface() any {
	return v.v
}

// String returns a diagnostic representation.
func (v Variant) String() string {
	if v.v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v", v.v)
}

// To extracts the wrapped value as T. Exact type matches are returned
// directly; numeric values are converted when both sides are numeric
// kinds. Anything else is a type mismatch.
func To[T any](v Variant) (T, error) {
	if t, ok := v.v.(T); ok {
		return t, nil
	}

	var zero T
	want := reflect.TypeOf(&zero).Elem()

	if v.v == nil {
		switch want.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
			return zero, nil
		}
		return zero, errors.TypeMismatch(errors.PhaseDispatch, "nil", want.String())
	}

	rv := reflect.ValueOf(v.v)
	if isNumeric(rv.Kind()) && isNumeric(want.Kind()) && rv.Type().ConvertibleTo(want) {
		return rv.Convert(want).Interface().(T), nil
	}

	return zero, errors.TypeMismatch(errors.PhaseDispatch, rv.Type().String(), want.String())
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
