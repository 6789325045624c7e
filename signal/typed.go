package signal

import (
	"github.com/wippyai/signal-runtime/engine"
	"github.com/wippyai/signal-runtime/variant"
)

// TypedN is the statically-typed signal handle family, one type per
// supported parameter count (0..MaxArity). C is the class the signal is
// declared on; it binds the self-receiver shape of ConnectSelf. Each
// wrapper embeds the untyped Signal core and adds:
//
//	Emit        - typed emission, marshalled into variants
//	Connect     - a plain function, closure or method value (no receiver)
//	ConnectSelf - a method with *C (the signal's own object) as receiver
//	Builder     - the connect builder for flags, sync mode and more shapes
//
// Methods on other objects connect through the package-level ConnectObjN
// functions, since Go methods cannot introduce the extra receiver type
// parameter.

// Typed0 is a typed handle for a parameterless signal declared on class C.
type Typed0[C any] struct {
	*Signal
}

// AsTyped0 views an untyped handle as a typed one. Generated per-class
// accessors use this to hand out typed signals.
func AsTyped0[C any](s *Signal) Typed0[C] {
	return Typed0[C]{Signal: s}
}

// Emit emits the signal with typed arguments.
func (s Typed0[C]) Emit() error {
	return s.EmitRaw()
}

// Connect connects a receiver with no instance slot: a plain function,
// closure or method value.
func (s Typed0[C]) Connect(fn func()) (engine.ConnectHandle, error) {
	return s.connect(callableName(fn), adapt0(func() error {
		fn()
		return nil
	}), false, 0)
}

// ConnectSelf connects a method whose receiver is the signal's own
// object, locked exclusively at invocation time.
func (s Typed0[C]) ConnectSelf(method func(*C)) (engine.ConnectHandle, error) {
	obj := s.Object()
	return s.connect(callableName(method), adapt0(func() error {
		return withMut(obj, func(c *C) error {
			method(c)
			return nil
		})
	}), false, 0)
}

// Builder returns a connect builder seeded with this handle.
func (s Typed0[C]) Builder() *Builder0[C] {
	return &Builder0[C]{core: newBuilderCore(s.Signal)}
}

// ConnectObj0 connects a method whose receiver is a different object
// than the signal's owner. The object's handle is captured by the
// connection for its lifetime.
func ConnectObj0[O any, C any](s Typed0[C], obj engine.Object, method func(*O)) (engine.ConnectHandle, error) {
	return s.connect(callableName(method), adapt0(func() error {
		return withMut(obj, func(o *O) error {
			method(o)
			return nil
		})
	}), false, 0)
}

// Typed1 is a typed handle for a one-parameter signal declared on class C.
type Typed1[C any, P1 any] struct {
	*Signal
}

// AsTyped1 views an untyped handle as a typed one. Generated per-class
// accessors use this to hand out typed signals.
func AsTyped1[C any, P1 any](s *Signal) Typed1[C, P1] {
	return Typed1[C, P1]{Signal: s}
}

// Emit emits the signal with typed arguments.
func (s Typed1[C, P1]) Emit(p1 P1) error {
	return s.EmitRaw(variant.New(p1))
}

// Connect connects a receiver with no instance slot: a plain function,
// closure or method value.
func (s Typed1[C, P1]) Connect(fn func(P1)) (engine.ConnectHandle, error) {
	return s.connect(callableName(fn), adapt1(func(p1 P1) error {
		fn(p1)
		return nil
	}), false, 0)
}

// ConnectSelf connects a method whose receiver is the signal's own
// object, locked exclusively at invocation time.
func (s Typed1[C, P1]) ConnectSelf(method func(*C, P1)) (engine.ConnectHandle, error) {
	obj := s.Object()
	return s.connect(callableName(method), adapt1(func(p1 P1) error {
		return withMut(obj, func(c *C) error {
			method(c, p1)
			return nil
		})
	}), false, 0)
}

// Builder returns a connect builder seeded with this handle.
func (s Typed1[C, P1]) Builder() *Builder1[C, P1] {
	return &Builder1[C, P1]{core: newBuilderCore(s.Signal)}
}

// ConnectObj1 connects a method whose receiver is a different object
// than the signal's owner. The object's handle is captured by the
// connection for its lifetime.
func ConnectObj1[O any, C any, P1 any](s Typed1[C, P1], obj engine.Object, method func(*O, P1)) (engine.ConnectHandle, error) {
	return s.connect(callableName(method), adapt1(func(p1 P1) error {
		return withMut(obj, func(o *O) error {
			method(o, p1)
			return nil
		})
	}), false, 0)
}

// Typed2 is the 2-parameter typed signal handle.
type Typed2[C any, P1, P2 any] struct {
	*Signal
}

// AsTyped2 views an untyped handle as a typed one. Generated per-class
// accessors use this to hand out typed signals.
func AsTyped2[C any, P1, P2 any](s *Signal) Typed2[C, P1, P2] {
	return Typed2[C, P1, P2]{Signal: s}
}

// Emit emits the signal with typed arguments.
func (s Typed2[C, P1, P2]) Emit(p1 P1, p2 P2) error {
	return s.EmitRaw(variant.New(p1), variant.New(p2))
}

// Connect connects a receiver with no instance slot: a plain function,
// closure or method value.
func (s Typed2[C, P1, P2]) Connect(fn func(P1, P2)) (engine.ConnectHandle, error) {
	return s.connect(callableName(fn), adapt2(func(p1 P1, p2 P2) error {
		fn(p1, p2)
		return nil
	}), false, 0)
}

// ConnectSelf connects a method whose receiver is the signal's own
// object, locked exclusively at invocation time.
func (s Typed2[C, P1, P2]) ConnectSelf(method func(*C, P1, P2)) (engine.ConnectHandle, error) {
	obj := s.Object()
	return s.connect(callableName(method), adapt2(func(p1 P1, p2 P2) error {
		return withMut(obj, func(c *C) error {
			method(c, p1, p2)
			return nil
		})
	}), false, 0)
}

// Builder returns a connect builder seeded with this handle.
func (s Typed2[C, P1, P2]) Builder() *Builder2[C, P1, P2] {
	return &Builder2[C, P1, P2]{core: newBuilderCore(s.Signal)}
}

// ConnectObj2 connects a method whose receiver is a different object
// than the signal's owner. The object's handle is captured by the
// connection for its lifetime.
func ConnectObj2[O any, C any, P1, P2 any](s Typed2[C, P1, P2], obj engine.Object, method func(*O, P1, P2)) (engine.ConnectHandle, error) {
	return s.connect(callableName(method), adapt2(func(p1 P1, p2 P2) error {
		return withMut(obj, func(o *O) error {
			method(o, p1, p2)
			return nil
		})
	}), false, 0)
}

// Typed3 is the 3-parameter typed signal handle.
type Typed3[C any, P1, P2, P3 any] struct {
	*Signal
}

// AsTyped3 views an untyped handle as a typed one. Generated per-class
// accessors use this to hand out typed signals.
func AsTyped3[C any, P1, P2, P3 any](s *Signal) Typed3[C, P1, P2, P3] {
	return Typed3[C, P1, P2, P3]{Signal: s}
}

// Emit emits the signal with typed arguments.
func (s Typed3[C, P1, P2, P3]) Emit(p1 P1, p2 P2, p3 P3) error {
	return s.EmitRaw(variant.New(p1), variant.New(p2), variant.New(p3))
}

// Connect connects a receiver with no instance slot: a plain function,
// closure or method value.
func (s Typed3[C, P1, P2, P3]) Connect(fn func(P1, P2, P3)) (engine.ConnectHandle, error) {
	return s.connect(callableName(fn), adapt3(func(p1 P1, p2 P2, p3 P3) error {
		fn(p1, p2, p3)
		return nil
	}), false, 0)
}

// ConnectSelf connects a method whose receiver is the signal's own
// object, locked exclusively at invocation time.
func (s Typed3[C, P1, P2, P3]) ConnectSelf(method func(*C, P1, P2, P3)) (engine.ConnectHandle, error) {
	obj := s.Object()
	return s.connect(callableName(method), adapt3(func(p1 P1, p2 P2, p3 P3) error {
		return withMut(obj, func(c *C) error {
			method(c, p1, p2, p3)
			return nil
		})
	}), false, 0)
}

// Builder returns a connect builder seeded with this handle.
func (s Typed3[C, P1, P2, P3]) Builder() *Builder3[C, P1, P2, P3] {
	return &Builder3[C, P1, P2, P3]{core: newBuilderCore(s.Signal)}
}

// ConnectObj3 connects a method whose receiver is a different object
// than the signal's owner. The object's handle is captured by the
// connection for its lifetime.
func ConnectObj3[O any, C any, P1, P2, P3 any](s Typed3[C, P1, P2, P3], obj engine.Object, method func(*O, P1, P2, P3)) (engine.ConnectHandle, error) {
	return s.connect(callableName(method), adapt3(func(p1 P1, p2 P2, p3 P3) error {
		return withMut(obj, func(o *O) error {
			method(o, p1, p2, p3)
			return nil
		})
	}), false, 0)
}

// Typed4 is the 4-parameter typed signal handle.
type Typed4[C any, P1, P2, P3, P4 any] struct {
	*Signal
}

// AsTyped4 views an untyped handle as a typed one. Generated per-class
// accessors use this to hand out typed signals.
func AsTyped4[C any, P1, P2, P3, P4 any](s *Signal) Typed4[C, P1, P2, P3, P4] {
	return Typed4[C, P1, P2, P3, P4]{Signal: s}
}

// Emit emits the signal with typed arguments.
func (s Typed4[C, P1, P2, P3, P4]) Emit(p1 P1, p2 P2, p3 P3, p4 P4) error {
	return s.EmitRaw(variant.New(p1), variant.New(p2), variant.New(p3), variant.New(p4))
}

// Connect connects a receiver with no instance slot: a plain function,
// closure or method value.
func (s Typed4[C, P1, P2, P3, P4]) Connect(fn func(P1, P2, P3, P4)) (engine.ConnectHandle, error) {
	return s.connect(callableName(fn), adapt4(func(p1 P1, p2 P2, p3 P3, p4 P4) error {
		fn(p1, p2, p3, p4)
		return nil
	}), false, 0)
}

// ConnectSelf connects a method whose receiver is the signal's own
// object, locked exclusively at invocation time.
func (s Typed4[C, P1, P2, P3, P4]) ConnectSelf(method func(*C, P1, P2, P3, P4)) (engine.ConnectHandle, error) {
	obj := s.Object()
	return s.connect(callableName(method), adapt4(func(p1 P1, p2 P2, p3 P3, p4 P4) error {
		return withMut(obj, func(c *C) error {
			method(c, p1, p2, p3, p4)
			return nil
		})
	}), false, 0)
}

// Builder returns a connect builder seeded with this handle.
func (s Typed4[C, P1, P2, P3, P4]) Builder() *Builder4[C, P1, P2, P3, P4] {
	return &Builder4[C, P1, P2, P3, P4]{core: newBuilderCore(s.Signal)}
}

// ConnectObj4 connects a method whose receiver is a different object
// than the signal's owner. The object's handle is captured by the
// connection for its lifetime.
func ConnectObj4[O any, C any, P1, P2, P3, P4 any](s Typed4[C, P1, P2, P3, P4], obj engine.Object, method func(*O, P1, P2, P3, P4)) (engine.ConnectHandle, error) {
	return s.connect(callableName(method), adapt4(func(p1 P1, p2 P2, p3 P3, p4 P4) error {
		return withMut(obj, func(o *O) error {
			method(o, p1, p2, p3, p4)
			return nil
		})
	}), false, 0)
}

// Typed5 is the 5-parameter typed signal handle.
type Typed5[C any, P1, P2, P3, P4, P5 any] struct {
	*Signal
}

// AsTyped5 views an untyped handle as a typed one. Generated per-class
// accessors use this to hand out typed signals.
func AsTyped5[C any, P1, P2, P3, P4, P5 any](s *Signal) Typed5[C, P1, P2, P3, P4, P5] {
	return Typed5[C, P1, P2, P3, P4, P5]{Signal: s}
}

// Emit emits the signal with typed arguments.
func (s Typed5[C, P1, P2, P3, P4, P5]) Emit(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5) error {
	return s.EmitRaw(variant.New(p1), variant.New(p2), variant.New(p3), variant.New(p4), variant.New(p5))
}

// Connect connects a receiver with no instance slot: a plain function,
// closure or method value.
func (s Typed5[C, P1, P2, P3, P4, P5]) Connect(fn func(P1, P2, P3, P4, P5)) (engine.ConnectHandle, error) {
	return s.connect(callableName(fn), adapt5(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5) error {
		fn(p1, p2, p3, p4, p5)
		return nil
	}), false, 0)
}

// ConnectSelf connects a method whose receiver is the signal's own
// object, locked exclusively at invocation time.
func (s Typed5[C, P1, P2, P3, P4, P5]) ConnectSelf(method func(*C, P1, P2, P3, P4, P5)) (engine.ConnectHandle, error) {
	obj := s.Object()
	return s.connect(callableName(method), adapt5(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5) error {
		return withMut(obj, func(c *C) error {
			method(c, p1, p2, p3, p4, p5)
			return nil
		})
	}), false, 0)
}

// Builder returns a connect builder seeded with this handle.
func (s Typed5[C, P1, P2, P3, P4, P5]) Builder() *Builder5[C, P1, P2, P3, P4, P5] {
	return &Builder5[C, P1, P2, P3, P4, P5]{core: newBuilderCore(s.Signal)}
}

// ConnectObj5 connects a method whose receiver is a different object
// than the signal's owner. The object's handle is captured by the
// connection for its lifetime.
func ConnectObj5[O any, C any, P1, P2, P3, P4, P5 any](s Typed5[C, P1, P2, P3, P4, P5], obj engine.Object, method func(*O, P1, P2, P3, P4, P5)) (engine.ConnectHandle, error) {
	return s.connect(callableName(method), adapt5(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5) error {
		return withMut(obj, func(o *O) error {
			method(o, p1, p2, p3, p4, p5)
			return nil
		})
	}), false, 0)
}

// Typed6 is the 6-parameter typed signal handle.
type Typed6[C any, P1, P2, P3, P4, P5, P6 any] struct {
	*Signal
}

// AsTyped6 views an untyped handle as a typed one. Generated per-class
// accessors use this to hand out typed signals.
func AsTyped6[C any, P1, P2, P3, P4, P5, P6 any](s *Signal) Typed6[C, P1, P2, P3, P4, P5, P6] {
	return Typed6[C, P1, P2, P3, P4, P5, P6]{Signal: s}
}

// Emit emits the signal with typed arguments.
func (s Typed6[C, P1, P2, P3, P4, P5, P6]) Emit(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6) error {
	return s.EmitRaw(variant.New(p1), variant.New(p2), variant.New(p3), variant.New(p4), variant.New(p5), variant.New(p6))
}

// Connect connects a receiver with no instance slot: a plain function,
// closure or method value.
func (s Typed6[C, P1, P2, P3, P4, P5, P6]) Connect(fn func(P1, P2, P3, P4, P5, P6)) (engine.ConnectHandle, error) {
	return s.connect(callableName(fn), adapt6(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6) error {
		fn(p1, p2, p3, p4, p5, p6)
		return nil
	}), false, 0)
}

// ConnectSelf connects a method whose receiver is the signal's own
// object, locked exclusively at invocation time.
func (s Typed6[C, P1, P2, P3, P4, P5, P6]) ConnectSelf(method func(*C, P1, P2, P3, P4, P5, P6)) (engine.ConnectHandle, error) {
	obj := s.Object()
	return s.connect(callableName(method), adapt6(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6) error {
		return withMut(obj, func(c *C) error {
			method(c, p1, p2, p3, p4, p5, p6)
			return nil
		})
	}), false, 0)
}

// Builder returns a connect builder seeded with this handle.
func (s Typed6[C, P1, P2, P3, P4, P5, P6]) Builder() *Builder6[C, P1, P2, P3, P4, P5, P6] {
	return &Builder6[C, P1, P2, P3, P4, P5, P6]{core: newBuilderCore(s.Signal)}
}

// ConnectObj6 connects a method whose receiver is a different object
// than the signal's owner. The object's handle is captured by the
// connection for its lifetime.
func ConnectObj6[O any, C any, P1, P2, P3, P4, P5, P6 any](s Typed6[C, P1, P2, P3, P4, P5, P6], obj engine.Object, method func(*O, P1, P2, P3, P4, P5, P6)) (engine.ConnectHandle, error) {
	return s.connect(callableName(method), adapt6(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6) error {
		return withMut(obj, func(o *O) error {
			method(o, p1, p2, p3, p4, p5, p6)
			return nil
		})
	}), false, 0)
}

// Typed7 is the 7-parameter typed signal handle.
type Typed7[C any, P1, P2, P3, P4, P5, P6, P7 any] struct {
	*Signal
}

// AsTyped7 views an untyped handle as a typed one. Generated per-class
// accessors use this to hand out typed signals.
func AsTyped7[C any, P1, P2, P3, P4, P5, P6, P7 any](s *Signal) Typed7[C, P1, P2, P3, P4, P5, P6, P7] {
	return Typed7[C, P1, P2, P3, P4, P5, P6, P7]{Signal: s}
}

// Emit emits the signal with typed arguments.
func (s Typed7[C, P1, P2, P3, P4, P5, P6, P7]) Emit(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7) error {
	return s.EmitRaw(variant.New(p1), variant.New(p2), variant.New(p3), variant.New(p4), variant.New(p5), variant.New(p6), variant.New(p7))
}

// Connect connects a receiver with no instance slot: a plain function,
// closure or method value.
func (s Typed7[C, P1, P2, P3, P4, P5, P6, P7]) Connect(fn func(P1, P2, P3, P4, P5, P6, P7)) (engine.ConnectHandle, error) {
	return s.connect(callableName(fn), adapt7(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7) error {
		fn(p1, p2, p3, p4, p5, p6, p7)
		return nil
	}), false, 0)
}

// ConnectSelf connects a method whose receiver is the signal's own
// object, locked exclusively at invocation time.
func (s Typed7[C, P1, P2, P3, P4, P5, P6, P7]) ConnectSelf(method func(*C, P1, P2, P3, P4, P5, P6, P7)) (engine.ConnectHandle, error) {
	obj := s.Object()
	return s.connect(callableName(method), adapt7(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7) error {
		return withMut(obj, func(c *C) error {
			method(c, p1, p2, p3, p4, p5, p6, p7)
			return nil
		})
	}), false, 0)
}

// Builder returns a connect builder seeded with this handle.
func (s Typed7[C, P1, P2, P3, P4, P5, P6, P7]) Builder() *Builder7[C, P1, P2, P3, P4, P5, P6, P7] {
	return &Builder7[C, P1, P2, P3, P4, P5, P6, P7]{core: newBuilderCore(s.Signal)}
}

// ConnectObj7 connects a method whose receiver is a different object
// than the signal's owner. The object's handle is captured by the
// connection for its lifetime.
func ConnectObj7[O any, C any, P1, P2, P3, P4, P5, P6, P7 any](s Typed7[C, P1, P2, P3, P4, P5, P6, P7], obj engine.Object, method func(*O, P1, P2, P3, P4, P5, P6, P7)) (engine.ConnectHandle, error) {
	return s.connect(callableName(method), adapt7(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7) error {
		return withMut(obj, func(o *O) error {
			method(o, p1, p2, p3, p4, p5, p6, p7)
			return nil
		})
	}), false, 0)
}

// Typed8 is the 8-parameter typed signal handle.
type Typed8[C any, P1, P2, P3, P4, P5, P6, P7, P8 any] struct {
	*Signal
}

// AsTyped8 views an untyped handle as a typed one. Generated per-class
// accessors use this to hand out typed signals.
func AsTyped8[C any, P1, P2, P3, P4, P5, P6, P7, P8 any](s *Signal) Typed8[C, P1, P2, P3, P4, P5, P6, P7, P8] {
	return Typed8[C, P1, P2, P3, P4, P5, P6, P7, P8]{Signal: s}
}

// Emit emits the signal with typed arguments.
func (s Typed8[C, P1, P2, P3, P4, P5, P6, P7, P8]) Emit(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7, p8 P8) error {
	return s.EmitRaw(variant.New(p1), variant.New(p2), variant.New(p3), variant.New(p4), variant.New(p5), variant.New(p6), variant.New(p7), variant.New(p8))
}

// Connect connects a receiver with no instance slot: a plain function,
// closure or method value.
func (s Typed8[C, P1, P2, P3, P4, P5, P6, P7, P8]) Connect(fn func(P1, P2, P3, P4, P5, P6, P7, P8)) (engine.ConnectHandle, error) {
	return s.connect(callableName(fn), adapt8(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7, p8 P8) error {
		fn(p1, p2, p3, p4, p5, p6, p7, p8)
		return nil
	}), false, 0)
}

// ConnectSelf connects a method whose receiver is the signal's own
// object, locked exclusively at invocation time.
func (s Typed8[C, P1, P2, P3, P4, P5, P6, P7, P8]) ConnectSelf(method func(*C, P1, P2, P3, P4, P5, P6, P7, P8)) (engine.ConnectHandle, error) {
	obj := s.Object()
	return s.connect(callableName(method), adapt8(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7, p8 P8) error {
		return withMut(obj, func(c *C) error {
			method(c, p1, p2, p3, p4, p5, p6, p7, p8)
			return nil
		})
	}), false, 0)
}

// Builder returns a connect builder seeded with this handle.
func (s Typed8[C, P1, P2, P3, P4, P5, P6, P7, P8]) Builder() *Builder8[C, P1, P2, P3, P4, P5, P6, P7, P8] {
	return &Builder8[C, P1, P2, P3, P4, P5, P6, P7, P8]{core: newBuilderCore(s.Signal)}
}

// ConnectObj8 connects a method whose receiver is a different object
// than the signal's owner. The object's handle is captured by the
// connection for its lifetime.
func ConnectObj8[O any, C any, P1, P2, P3, P4, P5, P6, P7, P8 any](s Typed8[C, P1, P2, P3, P4, P5, P6, P7, P8], obj engine.Object, method func(*O, P1, P2, P3, P4, P5, P6, P7, P8)) (engine.ConnectHandle, error) {
	return s.connect(callableName(method), adapt8(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7, p8 P8) error {
		return withMut(obj, func(o *O) error {
			method(o, p1, p2, p3, p4, p5, p6, p7, p8)
			return nil
		})
	}), false, 0)
}

// Typed9 is the 9-parameter typed signal handle.
type Typed9[C any, P1, P2, P3, P4, P5, P6, P7, P8, P9 any] struct {
	*Signal
}

// AsTyped9 views an untyped handle as a typed one. Generated per-class
// accessors use this to hand out typed signals.
func AsTyped9[C any, P1, P2, P3, P4, P5, P6, P7, P8, P9 any](s *Signal) Typed9[C, P1, P2, P3, P4, P5, P6, P7, P8, P9] {
	return Typed9[C, P1, P2, P3, P4, P5, P6, P7, P8, P9]{Signal: s}
}

// Emit emits the signal with typed arguments.
func (s Typed9[C, P1, P2, P3, P4, P5, P6, P7, P8, P9]) Emit(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7, p8 P8, p9 P9) error {
	return s.EmitRaw(variant.New(p1), variant.New(p2), variant.New(p3), variant.New(p4), variant.New(p5), variant.New(p6), variant.New(p7), variant.New(p8), variant.New(p9))
}

// Connect connects a receiver with no instance slot: a plain function,
// closure or method value.
func (s Typed9[C, P1, P2, P3, P4, P5, P6, P7, P8, P9]) Connect(fn func(P1, P2, P3, P4, P5, P6, P7, P8, P9)) (engine.ConnectHandle, error) {
	return s.connect(callableName(fn), adapt9(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7, p8 P8, p9 P9) error {
		fn(p1, p2, p3, p4, p5, p6, p7, p8, p9)
		return nil
	}), false, 0)
}

// ConnectSelf connects a method whose receiver is the signal's own
// object, locked exclusively at invocation time.
func (s Typed9[C, P1, P2, P3, P4, P5, P6, P7, P8, P9]) ConnectSelf(method func(*C, P1, P2, P3, P4, P5, P6, P7, P8, P9)) (engine.ConnectHandle, error) {
	obj := s.Object()
	return s.connect(callableName(method), adapt9(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7, p8 P8, p9 P9) error {
		return withMut(obj, func(c *C) error {
			method(c, p1, p2, p3, p4, p5, p6, p7, p8, p9)
			return nil
		})
	}), false, 0)
}

// Builder returns a connect builder seeded with this handle.
func (s Typed9[C, P1, P2, P3, P4, P5, P6, P7, P8, P9]) Builder() *Builder9[C, P1, P2, P3, P4, P5, P6, P7, P8, P9] {
	return &Builder9[C, P1, P2, P3, P4, P5, P6, P7, P8, P9]{core: newBuilderCore(s.Signal)}
}

// ConnectObj9 connects a method whose receiver is a different object
// than the signal's owner. The object's handle is captured by the
// connection for its lifetime.
func ConnectObj9[O any, C any, P1, P2, P3, P4, P5, P6, P7, P8, P9 any](s Typed9[C, P1, P2, P3, P4, P5, P6, P7, P8, P9], obj engine.Object, method func(*O, P1, P2, P3, P4, P5, P6, P7, P8, P9)) (engine.ConnectHandle, error) {
	return s.connect(callableName(method), adapt9(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7, p8 P8, p9 P9) error {
		return withMut(obj, func(o *O) error {
			method(o, p1, p2, p3, p4, p5, p6, p7, p8, p9)
			return nil
		})
	}), false, 0)
}
