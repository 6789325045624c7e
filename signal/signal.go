package signal

import (
	"github.com/wippyai/signal-runtime/engine"
	"github.com/wippyai/signal-runtime/registry"
	"github.com/wippyai/signal-runtime/variant"
)

// Signal is the untyped core of a signal handle: an object reference
// paired with a signal name. The typed per-arity wrappers embed it; it is
// short-lived and not meant to be stored.
type Signal struct {
	obj  engine.Object
	name string
	coll *Collection
}

// New builds a free-standing signal handle, outside any collection.
// Handles obtained this way have no checkout discipline; Done is a no-op.
func New(obj engine.Object, name string) *Signal {
	return &Signal{obj: obj, name: name}
}

// Object returns the object the signal is declared on.
func (s *Signal) Object() engine.Object {
	return s.obj
}

// Name returns the signal name.
func (s *Signal) Name() string {
	return s.name
}

// EmitRaw emits the signal with pre-marshalled arguments. Typed wrappers
// provide Emit with static parameter types; this is the generic path.
// Emission may synchronously invoke any number of connected callables
// before returning.
func (s *Signal) EmitRaw(args ...variant.Variant) error {
	return s.obj.Emit(s.name, args...)
}

// Untyped produces an opaque signal reference for code that does not need
// static parameter typing. Connections made through it are engine-native
// and not tracked by the hot-reload registry.
func (s *Signal) Untyped() engine.SignalRef {
	return engine.NewSignalRef(s.obj, s.name)
}

// Done finalizes the handle, returning it to its collection so another
// signal can be checked out.
func (s *Signal) Done() {
	if s.coll != nil {
		s.coll.restore(s.obj)
		s.coll = nil
	}
}

// connect wraps the dispatch in a callable, registers it with the host
// and records the connection for the hot-reload sweep. Recording happens
// before control returns, so there is no window where the host holds a
// foreign callable unknown to the registry.
func (s *Signal) connect(name string, d engine.Dispatch, syncSafe bool, flags engine.ConnectFlags) (engine.ConnectHandle, error) {
	var c *engine.Callable
	if syncSafe {
		c = engine.NewSyncCallable(name, d)
	} else {
		c = engine.NewCallable(name, d)
	}

	if err := s.obj.Connect(s.name, c, flags); err != nil {
		return engine.ConnectHandle{}, err
	}
	registry.Default().Record(s.obj.Engine(), s.obj.ID(), s.name, c)
	return engine.NewConnectHandle(s.obj, s.name, c), nil
}
