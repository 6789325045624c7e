package engine

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/signal-runtime/errors"
	"github.com/wippyai/signal-runtime/variant"
)

// Config configures a LocalEngine.
type Config struct {
	// HotReload marks the engine as running in a context that can
	// hot-reload foreign code (an editor-like host). Connections made
	// through typed signals are then tracked by the connection registry.
	HotReload bool
}

// LocalEngine is the in-memory reference host. It implements the Engine
// interface with synchronous, registration-order signal delivery and is
// used by tests and the demo command.
type LocalEngine struct {
	mu       sync.Mutex
	objects  map[InstanceID]*objectEntry
	nextID   InstanceID
	deferred []deferredCall
	weakLive int64
	cfg      Config
}

type objectEntry struct {
	valid   bool
	signals map[string]*signalEntry

	// Instance access has its own lock so delivery never holds the
	// engine lock while user code runs.
	instMu   sync.RWMutex
	instance any
}

type signalEntry struct {
	arity int
	conns []connection
}

type connection struct {
	callable *Callable
	flags    ConnectFlags
}

type deferredCall struct {
	signal   string
	callable *Callable
	args     []variant.Variant
}

// NewLocalEngine creates an empty in-memory engine.
func NewLocalEngine(cfg Config) *LocalEngine {
	return &LocalEngine{
		objects: make(map[InstanceID]*objectEntry),
		cfg:     cfg,
	}
}

// NewObject creates a live object and returns its handle.
func (e *LocalEngine) NewObject() Object {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	e.objects[e.nextID] = &objectEntry{
		valid:   true,
		signals: make(map[string]*signalEntry),
	}
	return NewObjectHandle(e, e.nextID)
}

// FreeObject destroys an object. Its connections are dropped and weak
// refs to it report invalid from now on. The ID is never reused.
func (e *LocalEngine) FreeObject(id InstanceID) error {
	e.mu.Lock()
	ent, ok := e.objects[id]
	if !ok || !ent.valid {
		e.mu.Unlock()
		return errors.DeadObject(errors.PhaseEngine, uint64(id))
	}
	ent.valid = false
	ent.signals = nil
	e.mu.Unlock()

	ent.instMu.Lock()
	ent.instance = nil
	ent.instMu.Unlock()
	return nil
}

// BindInstance attaches user class state to an object. Receiver-shaped
// connections lock this instance at invocation time.
func (e *LocalEngine) BindInstance(id InstanceID, instance any) error {
	ent, err := e.liveEntry(id, errors.PhaseEngine)
	if err != nil {
		return err
	}

	ent.instMu.Lock()
	ent.instance = instance
	ent.instMu.Unlock()
	return nil
}

// DeclareSignal declares a named signal with a fixed argument count on an
// object. Connecting or emitting an undeclared signal fails.
func (e *LocalEngine) DeclareSignal(id InstanceID, name string, arity int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ent, ok := e.objects[id]
	if !ok || !ent.valid {
		return errors.DeadObject(errors.PhaseEngine, uint64(id))
	}
	if _, exists := ent.signals[name]; exists {
		return errors.New(errors.PhaseEngine, errors.KindDuplicate).
			Signal(name).
			Detail("signal already declared").
			Build()
	}
	ent.signals[name] = &signalEntry{arity: arity}
	return nil
}

// Connect implements Engine.
func (e *LocalEngine) Connect(id InstanceID, signal string, c *Callable, flags ConnectFlags) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ent, ok := e.objects[id]
	if !ok || !ent.valid {
		return errors.DeadObject(errors.PhaseConnect, uint64(id))
	}
	sig, ok := ent.signals[signal]
	if !ok {
		return errors.NotFound(errors.PhaseConnect, "signal", signal)
	}

	if flags&ConnectReferenceCounted == 0 {
		for _, conn := range sig.conns {
			if conn.callable.ID() == c.ID() {
				return errors.Duplicate(signal, c.Name())
			}
		}
	}

	sig.conns = append(sig.conns, connection{callable: c, flags: flags})
	return nil
}

// Disconnect implements Engine.
func (e *LocalEngine) Disconnect(id InstanceID, signal string, c *Callable) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ent, ok := e.objects[id]
	if !ok || !ent.valid {
		return errors.DeadObject(errors.PhaseEngine, uint64(id))
	}
	sig, ok := ent.signals[signal]
	if !ok {
		return errors.NotFound(errors.PhaseEngine, "signal", signal)
	}

	for i, conn := range sig.conns {
		if conn.callable.ID() == c.ID() {
			sig.conns = append(sig.conns[:i], sig.conns[i+1:]...)
			return nil
		}
	}
	return errors.NotFound(errors.PhaseEngine, "connection", c.Name())
}

// IsConnected implements Engine.
func (e *LocalEngine) IsConnected(id InstanceID, signal string, c *Callable) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	ent, ok := e.objects[id]
	if !ok || !ent.valid {
		return false
	}
	sig, ok := ent.signals[signal]
	if !ok {
		return false
	}
	for _, conn := range sig.conns {
		if conn.callable.ID() == c.ID() {
			return true
		}
	}
	return false
}

// Emit implements Engine. Delivery is synchronous and in registration
// order; one-shot connections are removed before their callable runs, so
// re-entrant emission cannot fire them twice. Dispatch failures are
// logged and do not stop delivery.
func (e *LocalEngine) Emit(id InstanceID, signal string, args []variant.Variant) error {
	e.mu.Lock()
	ent, ok := e.objects[id]
	if !ok || !ent.valid {
		e.mu.Unlock()
		return errors.DeadObject(errors.PhaseEmit, uint64(id))
	}
	sig, ok := ent.signals[signal]
	if !ok {
		e.mu.Unlock()
		return errors.NotFound(errors.PhaseEmit, "signal", signal)
	}
	if len(args) != sig.arity {
		e.mu.Unlock()
		return errors.ArityMismatch(errors.PhaseEmit, len(args), sig.arity)
	}

	var fire []*Callable
	kept := sig.conns[:0]
	for _, conn := range sig.conns {
		if conn.flags&ConnectDeferred != 0 {
			e.deferred = append(e.deferred, deferredCall{
				signal:   signal,
				callable: conn.callable,
				args:     args,
			})
		} else {
			fire = append(fire, conn.callable)
		}
		if conn.flags&ConnectOneShot == 0 {
			kept = append(kept, conn)
		}
	}
	sig.conns = kept
	e.mu.Unlock()

	for _, c := range fire {
		e.invoke(signal, c, args)
	}
	return nil
}

// FlushDeferred delivers all queued deferred connections. The host calls
// this at its idle point; tests and the demo call it directly.
func (e *LocalEngine) FlushDeferred() {
	e.mu.Lock()
	queued := e.deferred
	e.deferred = nil
	e.mu.Unlock()

	for _, d := range queued {
		e.invoke(d.signal, d.callable, d.args)
	}
}

func (e *LocalEngine) invoke(signal string, c *Callable, args []variant.Variant) {
	if _, err := c.Invoke(args); err != nil {
		Logger().Warn("signal dispatch failed",
			zap.String("signal", signal),
			zap.String("callable", c.Name()),
			zap.Error(err))
	}
}

// IsInstanceValid implements Engine.
func (e *LocalEngine) IsInstanceValid(id InstanceID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	ent, ok := e.objects[id]
	return ok && ent.valid
}

// WeakRef implements Engine.
func (e *LocalEngine) WeakRef(id InstanceID) WeakRef {
	e.mu.Lock()
	e.weakLive++
	e.mu.Unlock()
	return &localWeakRef{eng: e, id: id}
}

// LiveWeakRefs returns the number of weak refs handed out and not yet
// disposed. Test hook for the single-disposal discipline.
func (e *LocalEngine) LiveWeakRefs() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.weakLive
}

// WithInstanceMut implements Engine.
func (e *LocalEngine) WithInstanceMut(id InstanceID, fn func(any) error) error {
	ent, err := e.liveEntry(id, errors.PhaseDispatch)
	if err != nil {
		return err
	}

	if !ent.instMu.TryLock() {
		return errors.InstanceLocked(errors.PhaseDispatch, uint64(id))
	}
	defer ent.instMu.Unlock()

	if ent.instance == nil {
		return errors.NoInstance(errors.PhaseDispatch, uint64(id))
	}
	return fn(ent.instance)
}

// WithInstanceRef implements Engine.
func (e *LocalEngine) WithInstanceRef(id InstanceID, fn func(any) error) error {
	ent, err := e.liveEntry(id, errors.PhaseDispatch)
	if err != nil {
		return err
	}

	if !ent.instMu.TryRLock() {
		return errors.InstanceLocked(errors.PhaseDispatch, uint64(id))
	}
	defer ent.instMu.RUnlock()

	if ent.instance == nil {
		return errors.NoInstance(errors.PhaseDispatch, uint64(id))
	}
	return fn(ent.instance)
}

// CanHotReload implements Engine.
func (e *LocalEngine) CanHotReload() bool {
	return e.cfg.HotReload
}

func (e *LocalEngine) liveEntry(id InstanceID, phase errors.Phase) (*objectEntry, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ent, ok := e.objects[id]
	if !ok || !ent.valid {
		return nil, errors.DeadObject(phase, uint64(id))
	}
	return ent, nil
}

type localWeakRef struct {
	eng      *LocalEngine
	id       InstanceID
	mu       sync.Mutex
	disposed bool
}

func (w *localWeakRef) IsValid() bool {
	w.mu.Lock()
	disposed := w.disposed
	w.mu.Unlock()
	if disposed {
		return false
	}
	return w.eng.IsInstanceValid(w.id)
}

// Dispose releases the weak ref. Disposing twice is a bug in the caller's
// take-once discipline and panics.
func (w *localWeakRef) Dispose() {
	w.mu.Lock()
	if w.disposed {
		w.mu.Unlock()
		panic("engine: weak ref disposed twice")
	}
	w.disposed = true
	w.mu.Unlock()

	w.eng.mu.Lock()
	w.eng.weakLive--
	w.eng.mu.Unlock()
}
