package engine

import (
	"github.com/wippyai/signal-runtime/variant"
)

// InstanceID identifies an engine-owned object. IDs are never reused
// within a process, so a stale ID can never alias a newer object.
type InstanceID uint64

// ConnectFlags is the host's connection flag bitfield, forwarded verbatim
// by connect calls.
type ConnectFlags uint32

const (
	// ConnectDeferred queues delivery until the engine's deferred flush
	// instead of invoking the callable during emission.
	ConnectDeferred ConnectFlags = 1 << iota
	// ConnectPersist marks the connection as serialized by the host.
	// The reference engine stores but otherwise ignores it.
	ConnectPersist
	// ConnectOneShot disconnects the callable after its first delivery.
	ConnectOneShot
	// ConnectReferenceCounted allows the same callable to be connected
	// to the same signal more than once.
	ConnectReferenceCounted
)

// Engine is the host engine boundary consumed by the signal core. All
// primitives are synchronous; Emit may re-enter arbitrarily deep through
// connected callables.
type Engine interface {
	// Connect registers callable c on the named signal of obj.
	Connect(obj InstanceID, signal string, c *Callable, flags ConnectFlags) error

	// Disconnect removes a previously connected callable.
	Disconnect(obj InstanceID, signal string, c *Callable) error

	// IsConnected reports whether the specific signal/callable pair is
	// currently connected.
	IsConnected(obj InstanceID, signal string, c *Callable) bool

	// Emit delivers the signal to all connected callables in
	// registration order.
	Emit(obj InstanceID, signal string, args []variant.Variant) error

	// IsInstanceValid reports whether the object is still live.
	IsInstanceValid(obj InstanceID) bool

	// WeakRef returns a non-owning validity-checkable handle to obj.
	// The returned handle must be disposed exactly once.
	WeakRef(obj InstanceID) WeakRef

	// WithInstanceMut runs fn with exclusive access to the object's
	// bound instance. Fails with an instance_locked error if the
	// instance is already exclusively locked (re-entrant receiver).
	WithInstanceMut(obj InstanceID, fn func(any) error) error

	// WithInstanceRef runs fn with shared access to the object's bound
	// instance.
	WithInstanceRef(obj InstanceID, fn func(any) error) error

	// CanHotReload reports whether this process can hot-reload foreign
	// code. The query is idempotent and side-effect-free.
	CanHotReload() bool
}

// WeakRef is a non-owning handle to a foreign-owned object. It can be
// asked for validity without contributing to the object's lifetime and
// must be disposed explicitly, exactly once; no finalizer runs for it.
type WeakRef interface {
	IsValid() bool
	Dispose()
}
