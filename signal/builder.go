package signal

import (
	"github.com/wippyai/signal-runtime/engine"
	"github.com/wippyai/signal-runtime/errors"
)

// builderCore holds the configuration axes shared by every arity:
// receiver dispatch, thread mode, native connect flags and an optional
// custom callable name. Exactly one receiver must be set before done.
type builderCore struct {
	sig      *Signal
	name     string
	custom   string
	dispatch engine.Dispatch
	sync     bool
	flags    engine.ConnectFlags
}

func newBuilderCore(s *Signal) *builderCore {
	return &builderCore{sig: s}
}

func (b *builderCore) setReceiver(name string, d engine.Dispatch) {
	b.name = name
	b.dispatch = d
}

func (b *builderCore) done() (engine.ConnectHandle, error) {
	if b.dispatch == nil {
		return engine.ConnectHandle{}, errors.MissingReceiver(b.sig.Name())
	}
	name := b.name
	if b.custom != "" {
		name = b.custom
	}
	return b.sig.connect(name, b.dispatch, b.sync, b.flags)
}

// BuilderN is the per-arity connect builder family. Receiver shape and
// identity, thread-affinity mode and native connect flags are independent
// axes; setting them in any non-conflicting order produces an equivalent
// connection. Finalizing without a receiver is a missing_receiver error.

// Builder0 configures a connection on a parameterless signal.
type Builder0[C any] struct {
	core *builderCore
}

// Function sets a receiver with no instance slot.
func (b *Builder0[C]) Function(fn func()) *Builder0[C] {
	b.core.setReceiver(callableName(fn), adapt0(func() error {
		fn()
		return nil
	}))
	return b
}

// SelfMut sets a method on the signal's own object as receiver, with
// exclusive instance access at invocation time.
func (b *Builder0[C]) SelfMut(method func(*C)) *Builder0[C] {
	obj := b.core.sig.Object()
	b.core.setReceiver(callableName(method), adapt0(func() error {
		return withMut(obj, func(c *C) error {
			method(c)
			return nil
		})
	}))
	return b
}

// SelfRef sets a method on the signal's own object as receiver, with
// shared instance access; the method receives a value copy of C.
func (b *Builder0[C]) SelfRef(method func(C)) *Builder0[C] {
	obj := b.core.sig.Object()
	b.core.setReceiver(callableName(method), adapt0(func() error {
		return withRef(obj, func(c C) error {
			method(c)
			return nil
		})
	}))
	return b
}

// Sync makes the callable cross-goroutine-safe by serializing its
// invocations; the captured state must tolerate any calling goroutine.
func (b *Builder0[C]) Sync() *Builder0[C] {
	b.core.sync = true
	return b
}

// Flags adds native connect flags, forwarded verbatim to the host.
func (b *Builder0[C]) Flags(f engine.ConnectFlags) *Builder0[C] {
	b.core.flags |= f
	return b
}

// Name overrides the derived callable debug name.
func (b *Builder0[C]) Name(name string) *Builder0[C] {
	b.core.custom = name
	return b
}

// Done finalizes the configuration into a native connect call.
func (b *Builder0[C]) Done() (engine.ConnectHandle, error) {
	return b.core.done()
}

// BuilderObj0 sets a method on another object as the receiver.
func BuilderObj0[O any, C any](b *Builder0[C], obj engine.Object, method func(*O)) *Builder0[C] {
	b.core.setReceiver(callableName(method), adapt0(func() error {
		return withMut(obj, func(o *O) error {
			method(o)
			return nil
		})
	}))
	return b
}

// Builder1 configures a connection on a 1-parameter signal.
type Builder1[C any, P1 any] struct {
	core *builderCore
}

// Function sets a receiver with no instance slot.
func (b *Builder1[C, P1]) Function(fn func(P1)) *Builder1[C, P1] {
	b.core.setReceiver(callableName(fn), adapt1(func(p1 P1) error {
		fn(p1)
		return nil
	}))
	return b
}

// SelfMut sets a method on the signal's own object as receiver, with
// exclusive instance access at invocation time.
func (b *Builder1[C, P1]) SelfMut(method func(*C, P1)) *Builder1[C, P1] {
	obj := b.core.sig.Object()
	b.core.setReceiver(callableName(method), adapt1(func(p1 P1) error {
		return withMut(obj, func(c *C) error {
			method(c, p1)
			return nil
		})
	}))
	return b
}

// SelfRef sets a method on the signal's own object as receiver, with
// shared instance access; the method receives a value copy of C.
func (b *Builder1[C, P1]) SelfRef(method func(C, P1)) *Builder1[C, P1] {
	obj := b.core.sig.Object()
	b.core.setReceiver(callableName(method), adapt1(func(p1 P1) error {
		return withRef(obj, func(c C) error {
			method(c, p1)
			return nil
		})
	}))
	return b
}

// Sync makes the callable cross-goroutine-safe by serializing its
// invocations; the captured state must tolerate any calling goroutine.
func (b *Builder1[C, P1]) Sync() *Builder1[C, P1] {
	b.core.sync = true
	return b
}

// Flags adds native connect flags, forwarded verbatim to the host.
func (b *Builder1[C, P1]) Flags(f engine.ConnectFlags) *Builder1[C, P1] {
	b.core.flags |= f
	return b
}

// Name overrides the derived callable debug name.
func (b *Builder1[C, P1]) Name(name string) *Builder1[C, P1] {
	b.core.custom = name
	return b
}

// Done finalizes the configuration into a native connect call.
func (b *Builder1[C, P1]) Done() (engine.ConnectHandle, error) {
	return b.core.done()
}

// BuilderObj1 sets a method on another object as the receiver.
func BuilderObj1[O any, C any, P1 any](b *Builder1[C, P1], obj engine.Object, method func(*O, P1)) *Builder1[C, P1] {
	b.core.setReceiver(callableName(method), adapt1(func(p1 P1) error {
		return withMut(obj, func(o *O) error {
			method(o, p1)
			return nil
		})
	}))
	return b
}

// Builder2 configures a connection on a 2-parameter signal.
type Builder2[C any, P1, P2 any] struct {
	core *builderCore
}

// Function sets a receiver with no instance slot.
func (b *Builder2[C, P1, P2]) Function(fn func(P1, P2)) *Builder2[C, P1, P2] {
	b.core.setReceiver(callableName(fn), adapt2(func(p1 P1, p2 P2) error {
		fn(p1, p2)
		return nil
	}))
	return b
}

// SelfMut sets a method on the signal's own object as receiver, with
// exclusive instance access at invocation time.
func (b *Builder2[C, P1, P2]) SelfMut(method func(*C, P1, P2)) *Builder2[C, P1, P2] {
	obj := b.core.sig.Object()
	b.core.setReceiver(callableName(method), adapt2(func(p1 P1, p2 P2) error {
		return withMut(obj, func(c *C) error {
			method(c, p1, p2)
			return nil
		})
	}))
	return b
}

// SelfRef sets a method on the signal's own object as receiver, with
// shared instance access; the method receives a value copy of C.
func (b *Builder2[C, P1, P2]) SelfRef(method func(C, P1, P2)) *Builder2[C, P1, P2] {
	obj := b.core.sig.Object()
	b.core.setReceiver(callableName(method), adapt2(func(p1 P1, p2 P2) error {
		return withRef(obj, func(c C) error {
			method(c, p1, p2)
			return nil
		})
	}))
	return b
}

// Sync makes the callable cross-goroutine-safe by serializing its
// invocations; the captured state must tolerate any calling goroutine.
func (b *Builder2[C, P1, P2]) Sync() *Builder2[C, P1, P2] {
	b.core.sync = true
	return b
}

// Flags adds native connect flags, forwarded verbatim to the host.
func (b *Builder2[C, P1, P2]) Flags(f engine.ConnectFlags) *Builder2[C, P1, P2] {
	b.core.flags |= f
	return b
}

// Name overrides the derived callable debug name.
func (b *Builder2[C, P1, P2]) Name(name string) *Builder2[C, P1, P2] {
	b.core.custom = name
	return b
}

// Done finalizes the configuration into a native connect call.
func (b *Builder2[C, P1, P2]) Done() (engine.ConnectHandle, error) {
	return b.core.done()
}

// BuilderObj2 sets a method on another object as the receiver.
func BuilderObj2[O any, C any, P1, P2 any](b *Builder2[C, P1, P2], obj engine.Object, method func(*O, P1, P2)) *Builder2[C, P1, P2] {
	b.core.setReceiver(callableName(method), adapt2(func(p1 P1, p2 P2) error {
		return withMut(obj, func(o *O) error {
			method(o, p1, p2)
			return nil
		})
	}))
	return b
}

// Builder3 configures a connection on a 3-parameter signal.
type Builder3[C any, P1, P2, P3 any] struct {
	core *builderCore
}

// Function sets a receiver with no instance slot.
func (b *Builder3[C, P1, P2, P3]) Function(fn func(P1, P2, P3)) *Builder3[C, P1, P2, P3] {
	b.core.setReceiver(callableName(fn), adapt3(func(p1 P1, p2 P2, p3 P3) error {
		fn(p1, p2, p3)
		return nil
	}))
	return b
}

// SelfMut sets a method on the signal's own object as receiver, with
// exclusive instance access at invocation time.
func (b *Builder3[C, P1, P2, P3]) SelfMut(method func(*C, P1, P2, P3)) *Builder3[C, P1, P2, P3] {
	obj := b.core.sig.Object()
	b.core.setReceiver(callableName(method), adapt3(func(p1 P1, p2 P2, p3 P3) error {
		return withMut(obj, func(c *C) error {
			method(c, p1, p2, p3)
			return nil
		})
	}))
	return b
}

// SelfRef sets a method on the signal's own object as receiver, with
// shared instance access; the method receives a value copy of C.
func (b *Builder3[C, P1, P2, P3]) SelfRef(method func(C, P1, P2, P3)) *Builder3[C, P1, P2, P3] {
	obj := b.core.sig.Object()
	b.core.setReceiver(callableName(method), adapt3(func(p1 P1, p2 P2, p3 P3) error {
		return withRef(obj, func(c C) error {
			method(c, p1, p2, p3)
			return nil
		})
	}))
	return b
}

// Sync makes the callable cross-goroutine-safe by serializing its
// invocations; the captured state must tolerate any calling goroutine.
func (b *Builder3[C, P1, P2, P3]) Sync() *Builder3[C, P1, P2, P3] {
	b.core.sync = true
	return b
}

// Flags adds native connect flags, forwarded verbatim to the host.
func (b *Builder3[C, P1, P2, P3]) Flags(f engine.ConnectFlags) *Builder3[C, P1, P2, P3] {
	b.core.flags |= f
	return b
}

// Name overrides the derived callable debug name.
func (b *Builder3[C, P1, P2, P3]) Name(name string) *Builder3[C, P1, P2, P3] {
	b.core.custom = name
	return b
}

// Done finalizes the configuration into a native connect call.
func (b *Builder3[C, P1, P2, P3]) Done() (engine.ConnectHandle, error) {
	return b.core.done()
}

// BuilderObj3 sets a method on another object as the receiver.
func BuilderObj3[O any, C any, P1, P2, P3 any](b *Builder3[C, P1, P2, P3], obj engine.Object, method func(*O, P1, P2, P3)) *Builder3[C, P1, P2, P3] {
	b.core.setReceiver(callableName(method), adapt3(func(p1 P1, p2 P2, p3 P3) error {
		return withMut(obj, func(o *O) error {
			method(o, p1, p2, p3)
			return nil
		})
	}))
	return b
}

// Builder4 configures a connection on a 4-parameter signal.
type Builder4[C any, P1, P2, P3, P4 any] struct {
	core *builderCore
}

// Function sets a receiver with no instance slot.
func (b *Builder4[C, P1, P2, P3, P4]) Function(fn func(P1, P2, P3, P4)) *Builder4[C, P1, P2, P3, P4] {
	b.core.setReceiver(callableName(fn), adapt4(func(p1 P1, p2 P2, p3 P3, p4 P4) error {
		fn(p1, p2, p3, p4)
		return nil
	}))
	return b
}

// SelfMut sets a method on the signal's own object as receiver, with
// exclusive instance access at invocation time.
func (b *Builder4[C, P1, P2, P3, P4]) SelfMut(method func(*C, P1, P2, P3, P4)) *Builder4[C, P1, P2, P3, P4] {
	obj := b.core.sig.Object()
	b.core.setReceiver(callableName(method), adapt4(func(p1 P1, p2 P2, p3 P3, p4 P4) error {
		return withMut(obj, func(c *C) error {
			method(c, p1, p2, p3, p4)
			return nil
		})
	}))
	return b
}

// SelfRef sets a method on the signal's own object as receiver, with
// shared instance access; the method receives a value copy of C.
func (b *Builder4[C, P1, P2, P3, P4]) SelfRef(method func(C, P1, P2, P3, P4)) *Builder4[C, P1, P2, P3, P4] {
	obj := b.core.sig.Object()
	b.core.setReceiver(callableName(method), adapt4(func(p1 P1, p2 P2, p3 P3, p4 P4) error {
		return withRef(obj, func(c C) error {
			method(c, p1, p2, p3, p4)
			return nil
		})
	}))
	return b
}

// Sync makes the callable cross-goroutine-safe by serializing its
// invocations; the captured state must tolerate any calling goroutine.
func (b *Builder4[C, P1, P2, P3, P4]) Sync() *Builder4[C, P1, P2, P3, P4] {
	b.core.sync = true
	return b
}

// Flags adds native connect flags, forwarded verbatim to the host.
func (b *Builder4[C, P1, P2, P3, P4]) Flags(f engine.ConnectFlags) *Builder4[C, P1, P2, P3, P4] {
	b.core.flags |= f
	return b
}

// Name overrides the derived callable debug name.
func (b *Builder4[C, P1, P2, P3, P4]) Name(name string) *Builder4[C, P1, P2, P3, P4] {
	b.core.custom = name
	return b
}

// Done finalizes the configuration into a native connect call.
func (b *Builder4[C, P1, P2, P3, P4]) Done() (engine.ConnectHandle, error) {
	return b.core.done()
}

// BuilderObj4 sets a method on another object as the receiver.
func BuilderObj4[O any, C any, P1, P2, P3, P4 any](b *Builder4[C, P1, P2, P3, P4], obj engine.Object, method func(*O, P1, P2, P3, P4)) *Builder4[C, P1, P2, P3, P4] {
	b.core.setReceiver(callableName(method), adapt4(func(p1 P1, p2 P2, p3 P3, p4 P4) error {
		return withMut(obj, func(o *O) error {
			method(o, p1, p2, p3, p4)
			return nil
		})
	}))
	return b
}

// Builder5 configures a connection on a 5-parameter signal.
type Builder5[C any, P1, P2, P3, P4, P5 any] struct {
	core *builderCore
}

// Function sets a receiver with no instance slot.
func (b *Builder5[C, P1, P2, P3, P4, P5]) Function(fn func(P1, P2, P3, P4, P5)) *Builder5[C, P1, P2, P3, P4, P5] {
	b.core.setReceiver(callableName(fn), adapt5(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5) error {
		fn(p1, p2, p3, p4, p5)
		return nil
	}))
	return b
}

// SelfMut sets a method on the signal's own object as receiver, with
// exclusive instance access at invocation time.
func (b *Builder5[C, P1, P2, P3, P4, P5]) SelfMut(method func(*C, P1, P2, P3, P4, P5)) *Builder5[C, P1, P2, P3, P4, P5] {
	obj := b.core.sig.Object()
	b.core.setReceiver(callableName(method), adapt5(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5) error {
		return withMut(obj, func(c *C) error {
			method(c, p1, p2, p3, p4, p5)
			return nil
		})
	}))
	return b
}

// SelfRef sets a method on the signal's own object as receiver, with
// shared instance access; the method receives a value copy of C.
func (b *Builder5[C, P1, P2, P3, P4, P5]) SelfRef(method func(C, P1, P2, P3, P4, P5)) *Builder5[C, P1, P2, P3, P4, P5] {
	obj := b.core.sig.Object()
	b.core.setReceiver(callableName(method), adapt5(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5) error {
		return withRef(obj, func(c C) error {
			method(c, p1, p2, p3, p4, p5)
			return nil
		})
	}))
	return b
}

// Sync makes the callable cross-goroutine-safe by serializing its
// invocations; the captured state must tolerate any calling goroutine.
func (b *Builder5[C, P1, P2, P3, P4, P5]) Sync() *Builder5[C, P1, P2, P3, P4, P5] {
	b.core.sync = true
	return b
}

// Flags adds native connect flags, forwarded verbatim to the host.
func (b *Builder5[C, P1, P2, P3, P4, P5]) Flags(f engine.ConnectFlags) *Builder5[C, P1, P2, P3, P4, P5] {
	b.core.flags |= f
	return b
}

// Name overrides the derived callable debug name.
func (b *Builder5[C, P1, P2, P3, P4, P5]) Name(name string) *Builder5[C, P1, P2, P3, P4, P5] {
	b.core.custom = name
	return b
}

// Done finalizes the configuration into a native connect call.
func (b *Builder5[C, P1, P2, P3, P4, P5]) Done() (engine.ConnectHandle, error) {
	return b.core.done()
}

// BuilderObj5 sets a method on another object as the receiver.
func BuilderObj5[O any, C any, P1, P2, P3, P4, P5 any](b *Builder5[C, P1, P2, P3, P4, P5], obj engine.Object, method func(*O, P1, P2, P3, P4, P5)) *Builder5[C, P1, P2, P3, P4, P5] {
	b.core.setReceiver(callableName(method), adapt5(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5) error {
		return withMut(obj, func(o *O) error {
			method(o, p1, p2, p3, p4, p5)
			return nil
		})
	}))
	return b
}

// Builder6 configures a connection on a 6-parameter signal.
type Builder6[C any, P1, P2, P3, P4, P5, P6 any] struct {
	core *builderCore
}

// Function sets a receiver with no instance slot.
func (b *Builder6[C, P1, P2, P3, P4, P5, P6]) Function(fn func(P1, P2, P3, P4, P5, P6)) *Builder6[C, P1, P2, P3, P4, P5, P6] {
	b.core.setReceiver(callableName(fn), adapt6(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6) error {
		fn(p1, p2, p3, p4, p5, p6)
		return nil
	}))
	return b
}

// SelfMut sets a method on the signal's own object as receiver, with
// exclusive instance access at invocation time.
func (b *Builder6[C, P1, P2, P3, P4, P5, P6]) SelfMut(method func(*C, P1, P2, P3, P4, P5, P6)) *Builder6[C, P1, P2, P3, P4, P5, P6] {
	obj := b.core.sig.Object()
	b.core.setReceiver(callableName(method), adapt6(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6) error {
		return withMut(obj, func(c *C) error {
			method(c, p1, p2, p3, p4, p5, p6)
			return nil
		})
	}))
	return b
}

// SelfRef sets a method on the signal's own object as receiver, with
// shared instance access; the method receives a value copy of C.
func (b *Builder6[C, P1, P2, P3, P4, P5, P6]) SelfRef(method func(C, P1, P2, P3, P4, P5, P6)) *Builder6[C, P1, P2, P3, P4, P5, P6] {
	obj := b.core.sig.Object()
	b.core.setReceiver(callableName(method), adapt6(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6) error {
		return withRef(obj, func(c C) error {
			method(c, p1, p2, p3, p4, p5, p6)
			return nil
		})
	}))
	return b
}

// Sync makes the callable cross-goroutine-safe by serializing its
// invocations; the captured state must tolerate any calling goroutine.
func (b *Builder6[C, P1, P2, P3, P4, P5, P6]) Sync() *Builder6[C, P1, P2, P3, P4, P5, P6] {
	b.core.sync = true
	return b
}

// Flags adds native connect flags, forwarded verbatim to the host.
func (b *Builder6[C, P1, P2, P3, P4, P5, P6]) Flags(f engine.ConnectFlags) *Builder6[C, P1, P2, P3, P4, P5, P6] {
	b.core.flags |= f
	return b
}

// Name overrides the derived callable debug name.
func (b *Builder6[C, P1, P2, P3, P4, P5, P6]) Name(name string) *Builder6[C, P1, P2, P3, P4, P5, P6] {
	b.core.custom = name
	return b
}

// Done finalizes the configuration into a native connect call.
func (b *Builder6[C, P1, P2, P3, P4, P5, P6]) Done() (engine.ConnectHandle, error) {
	return b.core.done()
}

// BuilderObj6 sets a method on another object as the receiver.
func BuilderObj6[O any, C any, P1, P2, P3, P4, P5, P6 any](b *Builder6[C, P1, P2, P3, P4, P5, P6], obj engine.Object, method func(*O, P1, P2, P3, P4, P5, P6)) *Builder6[C, P1, P2, P3, P4, P5, P6] {
	b.core.setReceiver(callableName(method), adapt6(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6) error {
		return withMut(obj, func(o *O) error {
			method(o, p1, p2, p3, p4, p5, p6)
			return nil
		})
	}))
	return b
}

// Builder7 configures a connection on a 7-parameter signal.
type Builder7[C any, P1, P2, P3, P4, P5, P6, P7 any] struct {
	core *builderCore
}

// Function sets a receiver with no instance slot.
func (b *Builder7[C, P1, P2, P3, P4, P5, P6, P7]) Function(fn func(P1, P2, P3, P4, P5, P6, P7)) *Builder7[C, P1, P2, P3, P4, P5, P6, P7] {
	b.core.setReceiver(callableName(fn), adapt7(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7) error {
		fn(p1, p2, p3, p4, p5, p6, p7)
		return nil
	}))
	return b
}

// SelfMut sets a method on the signal's own object as receiver, with
// exclusive instance access at invocation time.
func (b *Builder7[C, P1, P2, P3, P4, P5, P6, P7]) SelfMut(method func(*C, P1, P2, P3, P4, P5, P6, P7)) *Builder7[C, P1, P2, P3, P4, P5, P6, P7] {
	obj := b.core.sig.Object()
	b.core.setReceiver(callableName(method), adapt7(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7) error {
		return withMut(obj, func(c *C) error {
			method(c, p1, p2, p3, p4, p5, p6, p7)
			return nil
		})
	}))
	return b
}

// SelfRef sets a method on the signal's own object as receiver, with
// shared instance access; the method receives a value copy of C.
func (b *Builder7[C, P1, P2, P3, P4, P5, P6, P7]) SelfRef(method func(C, P1, P2, P3, P4, P5, P6, P7)) *Builder7[C, P1, P2, P3, P4, P5, P6, P7] {
	obj := b.core.sig.Object()
	b.core.setReceiver(callableName(method), adapt7(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7) error {
		return withRef(obj, func(c C) error {
			method(c, p1, p2, p3, p4, p5, p6, p7)
			return nil
		})
	}))
	return b
}

// Sync makes the callable cross-goroutine-safe by serializing its
// invocations; the captured state must tolerate any calling goroutine.
func (b *Builder7[C, P1, P2, P3, P4, P5, P6, P7]) Sync() *Builder7[C, P1, P2, P3, P4, P5, P6, P7] {
	b.core.sync = true
	return b
}

// Flags adds native connect flags, forwarded verbatim to the host.
func (b *Builder7[C, P1, P2, P3, P4, P5, P6, P7]) Flags(f engine.ConnectFlags) *Builder7[C, P1, P2, P3, P4, P5, P6, P7] {
	b.core.flags |= f
	return b
}

// Name overrides the derived callable debug name.
func (b *Builder7[C, P1, P2, P3, P4, P5, P6, P7]) Name(name string) *Builder7[C, P1, P2, P3, P4, P5, P6, P7] {
	b.core.custom = name
	return b
}

// Done finalizes the configuration into a native connect call.
func (b *Builder7[C, P1, P2, P3, P4, P5, P6, P7]) Done() (engine.ConnectHandle, error) {
	return b.core.done()
}

// BuilderObj7 sets a method on another object as the receiver.
func BuilderObj7[O any, C any, P1, P2, P3, P4, P5, P6, P7 any](b *Builder7[C, P1, P2, P3, P4, P5, P6, P7], obj engine.Object, method func(*O, P1, P2, P3, P4, P5, P6, P7)) *Builder7[C, P1, P2, P3, P4, P5, P6, P7] {
	b.core.setReceiver(callableName(method), adapt7(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7) error {
		return withMut(obj, func(o *O) error {
			method(o, p1, p2, p3, p4, p5, p6, p7)
			return nil
		})
	}))
	return b
}

// Builder8 configures a connection on a 8-parameter signal.
type Builder8[C any, P1, P2, P3, P4, P5, P6, P7, P8 any] struct {
	core *builderCore
}

// Function sets a receiver with no instance slot.
func (b *Builder8[C, P1, P2, P3, P4, P5, P6, P7, P8]) Function(fn func(P1, P2, P3, P4, P5, P6, P7, P8)) *Builder8[C, P1, P2, P3, P4, P5, P6, P7, P8] {
	b.core.setReceiver(callableName(fn), adapt8(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7, p8 P8) error {
		fn(p1, p2, p3, p4, p5, p6, p7, p8)
		return nil
	}))
	return b
}

// SelfMut sets a method on the signal's own object as receiver, with
// exclusive instance access at invocation time.
func (b *Builder8[C, P1, P2, P3, P4, P5, P6, P7, P8]) SelfMut(method func(*C, P1, P2, P3, P4, P5, P6, P7, P8)) *Builder8[C, P1, P2, P3, P4, P5, P6, P7, P8] {
	obj := b.core.sig.Object()
	b.core.setReceiver(callableName(method), adapt8(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7, p8 P8) error {
		return withMut(obj, func(c *C) error {
			method(c, p1, p2, p3, p4, p5, p6, p7, p8)
			return nil
		})
	}))
	return b
}

// SelfRef sets a method on the signal's own object as receiver, with
// shared instance access; the method receives a value copy of C.
func (b *Builder8[C, P1, P2, P3, P4, P5, P6, P7, P8]) SelfRef(method func(C, P1, P2, P3, P4, P5, P6, P7, P8)) *Builder8[C, P1, P2, P3, P4, P5, P6, P7, P8] {
	obj := b.core.sig.Object()
	b.core.setReceiver(callableName(method), adapt8(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7, p8 P8) error {
		return withRef(obj, func(c C) error {
			method(c, p1, p2, p3, p4, p5, p6, p7, p8)
			return nil
		})
	}))
	return b
}

// Sync makes the callable cross-goroutine-safe by serializing its
// invocations; the captured state must tolerate any calling goroutine.
func (b *Builder8[C, P1, P2, P3, P4, P5, P6, P7, P8]) Sync() *Builder8[C, P1, P2, P3, P4, P5, P6, P7, P8] {
	b.core.sync = true
	return b
}

// Flags adds native connect flags, forwarded verbatim to the host.
func (b *Builder8[C, P1, P2, P3, P4, P5, P6, P7, P8]) Flags(f engine.ConnectFlags) *Builder8[C, P1, P2, P3, P4, P5, P6, P7, P8] {
	b.core.flags |= f
	return b
}

// Name overrides the derived callable debug name.
func (b *Builder8[C, P1, P2, P3, P4, P5, P6, P7, P8]) Name(name string) *Builder8[C, P1, P2, P3, P4, P5, P6, P7, P8] {
	b.core.custom = name
	return b
}

// Done finalizes the configuration into a native connect call.
func (b *Builder8[C, P1, P2, P3, P4, P5, P6, P7, P8]) Done() (engine.ConnectHandle, error) {
	return b.core.done()
}

// BuilderObj8 sets a method on another object as the receiver.
func BuilderObj8[O any, C any, P1, P2, P3, P4, P5, P6, P7, P8 any](b *Builder8[C, P1, P2, P3, P4, P5, P6, P7, P8], obj engine.Object, method func(*O, P1, P2, P3, P4, P5, P6, P7, P8)) *Builder8[C, P1, P2, P3, P4, P5, P6, P7, P8] {
	b.core.setReceiver(callableName(method), adapt8(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7, p8 P8) error {
		return withMut(obj, func(o *O) error {
			method(o, p1, p2, p3, p4, p5, p6, p7, p8)
			return nil
		})
	}))
	return b
}

// Builder9 configures a connection on a 9-parameter signal.
type Builder9[C any, P1, P2, P3, P4, P5, P6, P7, P8, P9 any] struct {
	core *builderCore
}

// Function sets a receiver with no instance slot.
func (b *Builder9[C, P1, P2, P3, P4, P5, P6, P7, P8, P9]) Function(fn func(P1, P2, P3, P4, P5, P6, P7, P8, P9)) *Builder9[C, P1, P2, P3, P4, P5, P6, P7, P8, P9] {
	b.core.setReceiver(callableName(fn), adapt9(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7, p8 P8, p9 P9) error {
		fn(p1, p2, p3, p4, p5, p6, p7, p8, p9)
		return nil
	}))
	return b
}

// SelfMut sets a method on the signal's own object as receiver, with
// exclusive instance access at invocation time.
func (b *Builder9[C, P1, P2, P3, P4, P5, P6, P7, P8, P9]) SelfMut(method func(*C, P1, P2, P3, P4, P5, P6, P7, P8, P9)) *Builder9[C, P1, P2, P3, P4, P5, P6, P7, P8, P9] {
	obj := b.core.sig.Object()
	b.core.setReceiver(callableName(method), adapt9(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7, p8 P8, p9 P9) error {
		return withMut(obj, func(c *C) error {
			method(c, p1, p2, p3, p4, p5, p6, p7, p8, p9)
			return nil
		})
	}))
	return b
}

// SelfRef sets a method on the signal's own object as receiver, with
// shared instance access; the method receives a value copy of C.
func (b *Builder9[C, P1, P2, P3, P4, P5, P6, P7, P8, P9]) SelfRef(method func(C, P1, P2, P3, P4, P5, P6, P7, P8, P9)) *Builder9[C, P1, P2, P3, P4, P5, P6, P7, P8, P9] {
	obj := b.core.sig.Object()
	b.core.setReceiver(callableName(method), adapt9(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7, p8 P8, p9 P9) error {
		return withRef(obj, func(c C) error {
			method(c, p1, p2, p3, p4, p5, p6, p7, p8, p9)
			return nil
		})
	}))
	return b
}

// Sync makes the callable cross-goroutine-safe by serializing its
// invocations; the captured state must tolerate any calling goroutine.
func (b *Builder9[C, P1, P2, P3, P4, P5, P6, P7, P8, P9]) Sync() *Builder9[C, P1, P2, P3, P4, P5, P6, P7, P8, P9] {
	b.core.sync = true
	return b
}

// Flags adds native connect flags, forwarded verbatim to the host.
func (b *Builder9[C, P1, P2, P3, P4, P5, P6, P7, P8, P9]) Flags(f engine.ConnectFlags) *Builder9[C, P1, P2, P3, P4, P5, P6, P7, P8, P9] {
	b.core.flags |= f
	return b
}

// Name overrides the derived callable debug name.
func (b *Builder9[C, P1, P2, P3, P4, P5, P6, P7, P8, P9]) Name(name string) *Builder9[C, P1, P2, P3, P4, P5, P6, P7, P8, P9] {
	b.core.custom = name
	return b
}

// Done finalizes the configuration into a native connect call.
func (b *Builder9[C, P1, P2, P3, P4, P5, P6, P7, P8, P9]) Done() (engine.ConnectHandle, error) {
	return b.core.done()
}

// BuilderObj9 sets a method on another object as the receiver.
func BuilderObj9[O any, C any, P1, P2, P3, P4, P5, P6, P7, P8, P9 any](b *Builder9[C, P1, P2, P3, P4, P5, P6, P7, P8, P9], obj engine.Object, method func(*O, P1, P2, P3, P4, P5, P6, P7, P8, P9)) *Builder9[C, P1, P2, P3, P4, P5, P6, P7, P8, P9] {
	b.core.setReceiver(callableName(method), adapt9(func(p1 P1, p2 P2, p3 P3, p4 P4, p5 P5, p6 P6, p7 P7, p8 P8, p9 P9) error {
		return withMut(obj, func(o *O) error {
			method(o, p1, p2, p3, p4, p5, p6, p7, p8, p9)
			return nil
		})
	}))
	return b
}
