package engine

import (
	"sync"

	"github.com/google/uuid"

	"github.com/wippyai/signal-runtime/variant"
)

// Dispatch is the type-erased entry point of a foreign callable: it
// receives the marshalled argument array and re-erases into the typed
// receiver.
type Dispatch func(args []variant.Variant) (variant.Variant, error)

// Callable is an opaque, host-recognized handle wrapping a foreign
// callback. Identity is by ID, which is what the host's is-connected and
// disconnect queries compare.
type Callable struct {
	id   uuid.UUID
	name string
	fn   Dispatch
	mu   *sync.Mutex // non-nil for cross-goroutine-safe callables
}

// NewCallable wraps fn as a local callable. Local callables assume all
// invocations happen on the goroutine that services the engine's signal
// delivery.
func NewCallable(name string, fn Dispatch) *Callable {
	return &Callable{
		id:   uuid.New(),
		name: name,
		fn:   fn,
	}
}

// NewSyncCallable wraps fn as a cross-goroutine-safe callable.
// Invocations are serialized through an internal mutex, so the captured
// state may be reached from any goroutine.
func NewSyncCallable(name string, fn Dispatch) *Callable {
	return &Callable{
		id:   uuid.New(),
		name: name,
		fn:   fn,
		mu:   &sync.Mutex{},
	}
}

// ID returns the callable's identity.
func (c *Callable) ID() uuid.UUID {
	return c.id
}

// Name returns the callable's debug name.
func (c *Callable) Name() string {
	return c.name
}

// Invoke calls the wrapped dispatch with the given argument array.
func (c *Callable) Invoke(args []variant.Variant) (variant.Variant, error) {
	if c.mu != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
	}
	return c.fn(args)
}
