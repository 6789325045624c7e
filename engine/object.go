package engine

import (
	"github.com/wippyai/signal-runtime/variant"
)

// Object is a cheap-by-value handle pairing an engine with an instance
// ID. It is a logical reference, not a deep copy; duplicating it does not
// affect the object's lifetime, which is owned entirely by the engine.
type Object struct {
	eng Engine
	id  InstanceID
}

// NewObjectHandle builds a handle for an engine-owned instance. Engines
// hand these out from their object constructors.
func NewObjectHandle(eng Engine, id InstanceID) Object {
	return Object{eng: eng, id: id}
}

// Engine returns the owning engine.
func (o Object) Engine() Engine {
	return o.eng
}

// ID returns the instance ID.
func (o Object) ID() InstanceID {
	return o.id
}

// IsValid reports whether the referenced object is still live.
func (o Object) IsValid() bool {
	return o.eng.IsInstanceValid(o.id)
}

// Emit delivers the named signal with the given arguments.
func (o Object) Emit(signal string, args ...variant.Variant) error {
	return o.eng.Emit(o.id, signal, args)
}

// Connect registers a callable on the named signal.
func (o Object) Connect(signal string, c *Callable, flags ConnectFlags) error {
	return o.eng.Connect(o.id, signal, c, flags)
}

// Disconnect removes a callable from the named signal.
func (o Object) Disconnect(signal string, c *Callable) error {
	return o.eng.Disconnect(o.id, signal, c)
}

// IsConnected reports whether the callable is connected to the signal.
func (o Object) IsConnected(signal string, c *Callable) bool {
	return o.eng.IsConnected(o.id, signal, c)
}

// WithInstanceMut runs fn with exclusive access to the bound instance.
func (o Object) WithInstanceMut(fn func(any) error) error {
	return o.eng.WithInstanceMut(o.id, fn)
}

// WithInstanceRef runs fn with shared access to the bound instance.
func (o Object) WithInstanceRef(fn func(any) error) error {
	return o.eng.WithInstanceRef(o.id, fn)
}

// ConnectHandle identifies one established connection and allows severing
// it individually.
type ConnectHandle struct {
	obj      Object
	signal   string
	callable *Callable
}

// NewConnectHandle builds a handle for an established connection.
func NewConnectHandle(obj Object, signal string, c *Callable) ConnectHandle {
	return ConnectHandle{obj: obj, signal: signal, callable: c}
}

// Object returns the connected object.
func (h ConnectHandle) Object() Object {
	return h.obj
}

// Signal returns the signal name.
func (h ConnectHandle) Signal() string {
	return h.signal
}

// Callable returns the connected callable.
func (h ConnectHandle) Callable() *Callable {
	return h.callable
}

// IsConnected reports whether the connection is still established.
func (h ConnectHandle) IsConnected() bool {
	return h.obj.IsConnected(h.signal, h.callable)
}

// Disconnect severs the connection.
func (h ConnectHandle) Disconnect() error {
	return h.obj.Disconnect(h.signal, h.callable)
}

// SignalRef is an opaque, dynamically-typed reference to a signal
// instance (object + name), for code that does not need static parameter
// typing.
type SignalRef struct {
	obj  Object
	name string
}

// NewSignalRef builds an untyped signal reference.
func NewSignalRef(obj Object, name string) SignalRef {
	return SignalRef{obj: obj, name: name}
}

// Object returns the owning object.
func (s SignalRef) Object() Object {
	return s.obj
}

// Name returns the signal name.
func (s SignalRef) Name() string {
	return s.name
}

// Emit delivers the signal with untyped arguments.
func (s SignalRef) Emit(args ...variant.Variant) error {
	return s.obj.Emit(s.name, args...)
}

// Connect registers a callable without static typing.
func (s SignalRef) Connect(c *Callable, flags ConnectFlags) (ConnectHandle, error) {
	if err := s.obj.Connect(s.name, c, flags); err != nil {
		return ConnectHandle{}, err
	}
	return NewConnectHandle(s.obj, s.name, c), nil
}
