package signal

import (
	"fmt"

	"github.com/wippyai/signal-runtime/engine"
	"github.com/wippyai/signal-runtime/errors"
	"github.com/wippyai/signal-runtime/variant"
)

// MaxArity is the highest signal parameter count with a typed wrapper.
// Extending it is mechanical: add adaptN, TypedN, BuilderN and the two
// object-receiver functions for the new arity.
const MaxArity = 9

// The adaptN family is the type-erasure bridge: each function takes a
// statically-typed receiver and returns an engine.Dispatch that checks
// the marshalled argument count, converts each variant back to its
// declared parameter type and invokes the receiver. Receiver shapes
// (self, other object, shared access) are layered on top by closing over
// the receiver lock; see withMut and withRef.

func wantArgs(args []variant.Variant, n int) error {
	if len(args) != n {
		return errors.ArityMismatch(errors.PhaseDispatch, len(args), n)
	}
	return nil
}

func adapt0(fn func() error) engine.Dispatch {
	return func(args []variant.Variant) (variant.Variant, error) {
		if err := wantArgs(args, 0); err != nil {
			return variant.Nil(), err
		}
		return variant.Nil(), fn()
	}
}

func adapt1[P1 any](fn func(P1) error) engine.Dispatch {
	return func(args []variant.Variant) (variant.Variant, error) {
		if err := wantArgs(args, 1); err != nil {
			return variant.Nil(), err
		}
		p1, err := variant.To[P1](args[0])
		if err != nil {
			return variant.Nil(), err
		}
		return variant.Nil(), fn(p1)
	}
}

func adapt2[P1, P2 any](fn func(P1, P2) error) engine.Dispatch {
	return func(args []variant.Variant) (variant.Variant, error) {
		if err := wantArgs(args, 2); err != nil {
			return variant.Nil(), err
		}
		p1, err := variant.To[P1](args[0])
		if err != nil {
			return variant.Nil(), err
		}
		p2, err := variant.To[P2](args[1])
		if err != nil {
			return variant.Nil(), err
		}
		return variant.Nil(), fn(p1, p2)
	}
}

func adapt3[P1, P2, P3 any](fn func(P1, P2, P3) error) engine.Dispatch {
	return func(args []variant.Variant) (variant.Variant, error) {
		if err := wantArgs(args, 3); err != nil {
			return variant.Nil(), err
		}
		p1, err := variant.To[P1](args[0])
		if err != nil {
			return variant.Nil(), err
		}
		p2, err := variant.To[P2](args[1])
		if err != nil {
			return variant.Nil(), err
		}
		p3, err := variant.To[P3](args[2])
		if err != nil {
			return variant.Nil(), err
		}
		return variant.Nil(), fn(p1, p2, p3)
	}
}

func adapt4[P1, P2, P3, P4 any](fn func(P1, P2, P3, P4) error) engine.Dispatch {
	return func(args []variant.Variant) (variant.Variant, error) {
		if err := wantArgs(args, 4); err != nil {
			return variant.Nil(), err
		}
		p1, err := variant.To[P1](args[0])
		if err != nil {
			return variant.Nil(), err
		}
		p2, err := variant.To[P2](args[1])
		if err != nil {
			return variant.Nil(), err
		}
		p3, err := variant.To[P3](args[2])
		if err != nil {
			return variant.Nil(), err
		}
		p4, err := variant.To[P4](args[3])
		if err != nil {
			return variant.Nil(), err
		}
		return variant.Nil(), fn(p1, p2, p3, p4)
	}
}

func adapt5[P1, P2, P3, P4, P5 any](fn func(P1, P2, P3, P4, P5) error) engine.Dispatch {
	return func(args []variant.Variant) (variant.Variant, error) {
		if err := wantArgs(args, 5); err != nil {
			return variant.Nil(), err
		}
		p1, err := variant.To[P1](args[0])
		if err != nil {
			return variant.Nil(), err
		}
		p2, err := variant.To[P2](args[1])
		if err != nil {
			return variant.Nil(), err
		}
		p3, err := variant.To[P3](args[2])
		if err != nil {
			return variant.Nil(), err
		}
		p4, err := variant.To[P4](args[3])
		if err != nil {
			return variant.Nil(), err
		}
		p5, err := variant.To[P5](args[4])
		if err != nil {
			return variant.Nil(), err
		}
		return variant.Nil(), fn(p1, p2, p3, p4, p5)
	}
}

func adapt6[P1, P2, P3, P4, P5, P6 any](fn func(P1, P2, P3, P4, P5, P6) error) engine.Dispatch {
	return func(args []variant.Variant) (variant.Variant, error) {
		if err := wantArgs(args, 6); err != nil {
			return variant.Nil(), err
		}
		p1, err := variant.To[P1](args[0])
		if err != nil {
			return variant.Nil(), err
		}
		p2, err := variant.To[P2](args[1])
		if err != nil {
			return variant.Nil(), err
		}
		p3, err := variant.To[P3](args[2])
		if err != nil {
			return variant.Nil(), err
		}
		p4, err := variant.To[P4](args[3])
		if err != nil {
			return variant.Nil(), err
		}
		p5, err := variant.To[P5](args[4])
		if err != nil {
			return variant.Nil(), err
		}
		p6, err := variant.To[P6](args[5])
		if err != nil {
			return variant.Nil(), err
		}
		return variant.Nil(), fn(p1, p2, p3, p4, p5, p6)
	}
}

func adapt7[P1, P2, P3, P4, P5, P6, P7 any](fn func(P1, P2, P3, P4, P5, P6, P7) error) engine.Dispatch {
	return func(args []variant.Variant) (variant.Variant, error) {
		if err := wantArgs(args, 7); err != nil {
			return variant.Nil(), err
		}
		p1, err := variant.To[P1](args[0])
		if err != nil {
			return variant.Nil(), err
		}
		p2, err := variant.To[P2](args[1])
		if err != nil {
			return variant.Nil(), err
		}
		p3, err := variant.To[P3](args[2])
		if err != nil {
			return variant.Nil(), err
		}
		p4, err := variant.To[P4](args[3])
		if err != nil {
			return variant.Nil(), err
		}
		p5, err := variant.To[P5](args[4])
		if err != nil {
			return variant.Nil(), err
		}
		p6, err := variant.To[P6](args[5])
		if err != nil {
			return variant.Nil(), err
		}
		p7, err := variant.To[P7](args[6])
		if err != nil {
			return variant.Nil(), err
		}
		return variant.Nil(), fn(p1, p2, p3, p4, p5, p6, p7)
	}
}

func adapt8[P1, P2, P3, P4, P5, P6, P7, P8 any](fn func(P1, P2, P3, P4, P5, P6, P7, P8) error) engine.Dispatch {
	return func(args []variant.Variant) (variant.Variant, error) {
		if err := wantArgs(args, 8); err != nil {
			return variant.Nil(), err
		}
		p1, err := variant.To[P1](args[0])
		if err != nil {
			return variant.Nil(), err
		}
		p2, err := variant.To[P2](args[1])
		if err != nil {
			return variant.Nil(), err
		}
		p3, err := variant.To[P3](args[2])
		if err != nil {
			return variant.Nil(), err
		}
		p4, err := variant.To[P4](args[3])
		if err != nil {
			return variant.Nil(), err
		}
		p5, err := variant.To[P5](args[4])
		if err != nil {
			return variant.Nil(), err
		}
		p6, err := variant.To[P6](args[5])
		if err != nil {
			return variant.Nil(), err
		}
		p7, err := variant.To[P7](args[6])
		if err != nil {
			return variant.Nil(), err
		}
		p8, err := variant.To[P8](args[7])
		if err != nil {
			return variant.Nil(), err
		}
		return variant.Nil(), fn(p1, p2, p3, p4, p5, p6, p7, p8)
	}
}

func adapt9[P1, P2, P3, P4, P5, P6, P7, P8, P9 any](fn func(P1, P2, P3, P4, P5, P6, P7, P8, P9) error) engine.Dispatch {
	return func(args []variant.Variant) (variant.Variant, error) {
		if err := wantArgs(args, 9); err != nil {
			return variant.Nil(), err
		}
		p1, err := variant.To[P1](args[0])
		if err != nil {
			return variant.Nil(), err
		}
		p2, err := variant.To[P2](args[1])
		if err != nil {
			return variant.Nil(), err
		}
		p3, err := variant.To[P3](args[2])
		if err != nil {
			return variant.Nil(), err
		}
		p4, err := variant.To[P4](args[3])
		if err != nil {
			return variant.Nil(), err
		}
		p5, err := variant.To[P5](args[4])
		if err != nil {
			return variant.Nil(), err
		}
		p6, err := variant.To[P6](args[5])
		if err != nil {
			return variant.Nil(), err
		}
		p7, err := variant.To[P7](args[6])
		if err != nil {
			return variant.Nil(), err
		}
		p8, err := variant.To[P8](args[7])
		if err != nil {
			return variant.Nil(), err
		}
		p9, err := variant.To[P9](args[8])
		if err != nil {
			return variant.Nil(), err
		}
		return variant.Nil(), fn(p1, p2, p3, p4, p5, p6, p7, p8, p9)
	}
}

// withMut invokes fn with exclusive access to the object's bound
// instance, asserted to *C. Used for mutable self and other-object
// receivers: the instance is locked for exactly the duration of the
// receiver call.
func withMut[C any](obj engine.Object, fn func(*C) error) error {
	return obj.WithInstanceMut(func(v any) error {
		c, ok := v.(*C)
		if !ok {
			return errors.TypeMismatch(errors.PhaseDispatch, fmt.Sprintf("%T", v), fmt.Sprintf("%T", c))
		}
		return fn(c)
	})
}

// withRef invokes fn with shared access to the object's bound instance,
// passing a value copy of C.
func withRef[C any](obj engine.Object, fn func(C) error) error {
	return obj.WithInstanceRef(func(v any) error {
		c, ok := v.(*C)
		if !ok {
			var want *C
			return errors.TypeMismatch(errors.PhaseDispatch, fmt.Sprintf("%T", v), fmt.Sprintf("%T", want))
		}
		return fn(*c)
	})
}
