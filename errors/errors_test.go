package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Format(t *testing.T) {
	err := New(PhaseDispatch, KindTypeMismatch).
		Signal("health_changed").
		GoType("string").
		Detail("cannot convert string to int").
		Build()

	msg := err.Error()
	for _, want := range []string{"[dispatch]", "type_mismatch", "health_changed", "string", "cannot convert"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error message %q missing %q", msg, want)
		}
	}
}

func TestError_Is(t *testing.T) {
	err := ArityMismatch(PhaseDispatch, 3, 2)

	if !stderrors.Is(err, &Error{Phase: PhaseDispatch, Kind: KindArityMismatch}) {
		t.Fatal("expected Is match on phase+kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseConnect, Kind: KindArityMismatch}) {
		t.Fatal("unexpected Is match on different phase")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(PhaseEngine, KindInvalidInput, cause, "emit failed")

	if !stderrors.Is(err, cause) {
		t.Fatal("expected unwrap chain to reach cause")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("cause missing from message: %s", err.Error())
	}
}

func TestConvenienceConstructors(t *testing.T) {
	cases := []struct {
		err  *Error
		kind Kind
	}{
		{TypeMismatch(PhaseDispatch, "string", "int"), KindTypeMismatch},
		{NotFound(PhaseConnect, "signal", "missing"), KindNotFound},
		{DeadObject(PhaseEmit, 42), KindDeadObject},
		{Duplicate("died", "on_died"), KindDuplicate},
		{MissingReceiver("died"), KindMissingReceiver},
		{NoInstance(PhaseDispatch, 7), KindNoInstance},
		{InstanceLocked(PhaseDispatch, 7), KindInstanceLocked},
	}
	for _, c := range cases {
		if c.err.Kind != c.kind {
			t.Fatalf("expected kind %s, got %s", c.kind, c.err.Kind)
		}
		if c.err.Error() == "" {
			t.Fatalf("empty message for kind %s", c.kind)
		}
	}
}
