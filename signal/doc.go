// Package signal provides statically-typed signal handles over the
// engine's untyped connect and emit surface.
//
// A handle pairs an object with one of its declared signals. The typed
// wrappers (Typed0 through Typed9) fix the parameter types at compile
// time: Emit takes typed arguments and marshals them into variants,
// and the Connect family converts typed receivers into engine dispatch
// functions that unmarshal and type-check every invocation.
//
// Receivers come in four shapes. A plain function connects with
// Connect. A method on the signal's own class connects with
// ConnectSelf, which locks the object's bound instance for the duration
// of each call. A method on a different object connects with the
// package-level ConnectObjN functions. The builder adds the fourth
// shape, shared-access self methods, along with connect flags, a
// serialized thread mode and custom callable names.
//
// Handles are checked out of a per-object Collection one at a time and
// returned with Done. Every connection made through this package is
// recorded in the hot-reload registry when the host supports reloading,
// so the embedder can sever all module-owned connections before the
// code behind them is swapped out.
package signal
