package registry

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/signal-runtime/engine"
)

// Registry is a mutex-guarded ledger of every connection whose callable
// is a foreign (non-engine-native) callback. Entries hold a non-owning
// weak handle to the receiver; the registry never keeps a connected
// object alive. On a hot reload the host drains the registry and forcibly
// disconnects every still-valid entry, so no foreign callable can fire
// after its code has been unloaded.
type Registry struct {
	mu      sync.Mutex
	entries []entry
}

type entry struct {
	// weak is a take-once slot: it is set to nil at the moment of
	// disposal so the handle can never be disposed twice.
	weak     engine.WeakRef
	eng      engine.Engine
	receiver engine.InstanceID
	signal   string
	callable *engine.Callable
}

// New creates an empty registry. Most callers use Default; separate
// instances exist for tests.
func New() *Registry {
	return &Registry{}
}

var defaultRegistry = New()

// Default returns the process-wide registry. It is created empty at
// process start and never torn down; its memory is reclaimed at process
// exit.
func Default() *Registry {
	return defaultRegistry
}

// Record tracks a connection so it can be severed before a hot reload.
// It must be called synchronously within the connect call that registered
// the callable, before control returns to the caller. In hosts that
// cannot hot-reload this is a no-op: nothing will ever invalidate the
// callable, so tracking overhead is not paid.
//
// Stale entries are pruned before the new one is appended, so dead
// connections cannot accumulate across long sessions.
func (r *Registry) Record(eng engine.Engine, receiver engine.InstanceID, signal string, c *engine.Callable) {
	if !eng.CanHotReload() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.pruneLocked()
	r.entries = append(r.entries, entry{
		weak:     eng.WeakRef(receiver),
		eng:      eng,
		receiver: receiver,
		signal:   signal,
		callable: c,
	})
}

// Prune removes entries whose receiver is no longer valid, disposing each
// weak handle exactly once. The validity of the signals themselves is not
// re-checked: connections to live objects are bounded by application
// design, whereas connections to freed objects accumulate without bound.
func (r *Registry) Prune() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pruneLocked()
}

func (r *Registry) pruneLocked() {
	kept := r.entries[:0]
	for i := range r.entries {
		e := r.entries[i]
		if e.weak == nil {
			continue
		}
		if !e.weak.IsValid() {
			w := e.weak
			e.weak = nil
			w.Dispose()
			continue
		}
		kept = append(kept, e)
	}
	// Zero the tail so dropped entries stop pinning their callables.
	for i := len(kept); i < len(r.entries); i++ {
		r.entries[i] = entry{}
	}
	r.entries = kept
}

// DrainAndDisconnect forcibly disconnects every still-valid tracked
// connection and empties the registry. The host invokes it once, from a
// single designated thread, when entering a reload. Calling it again is
// safe; with nothing pending it is a cheap no-op and emits no second
// warning.
func (r *Registry) DrainAndDisconnect() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.entries) == 0 {
		return
	}

	Logger().Warn("disconnecting all registered typed signal connections: " +
		"foreign callables become invalid after a hot reload; " +
		"reconnect them once the reload completes")

	for i := range r.entries {
		e := &r.entries[i]
		w := e.weak
		if w == nil {
			continue
		}
		e.weak = nil

		if !w.IsValid() {
			w.Dispose()
			continue
		}
		if e.eng.IsConnected(e.receiver, e.signal, e.callable) {
			if err := e.eng.Disconnect(e.receiver, e.signal, e.callable); err != nil {
				Logger().Warn("forced disconnect failed",
					zap.String("signal", e.signal),
					zap.String("callable", e.callable.Name()),
					zap.Error(err))
			}
		}
		w.Dispose()
	}

	r.entries = nil
}

// Len returns the number of tracked connections, including entries whose
// receiver has died but has not been pruned yet.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
