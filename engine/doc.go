// Package engine defines the host engine boundary consumed by the signal
// core, and provides LocalEngine, the in-memory reference host.
//
// # Boundary
//
// The Engine interface covers exactly the primitives the signal core
// needs from a host: connect/disconnect/is-connected, emit with a
// dynamically-typed argument array, object validity, weak-ref
// clone/dispose, and the hot-reload capability query. Everything else an
// engine does (scene management, rendering, scheduling) is invisible
// here.
//
// # Objects and callables
//
//	Object        - cheap-by-value handle {Engine, InstanceID}
//	Callable      - opaque foreign callback with uuid identity
//	ConnectHandle - one established connection, individually severable
//	SignalRef     - untyped signal reference (object + name)
//	WeakRef       - non-owning validity-checkable handle, explicit
//	                single-use Dispose
//
// # Reference host
//
// LocalEngine delivers emissions synchronously in registration order,
// honors Deferred/OneShot/ReferenceCounted connect flags, and tracks
// outstanding weak refs so tests can assert the single-disposal
// discipline. Instance IDs are never reused, so a stale weak ref can
// never alias a newer object.
package engine
