// Package signalruntime provides a typed signal system with
// hot-reload-safe connection tracking.
//
// Signals are named, typed notification channels declared on host
// objects. Code connects receivers to them, emits them with typed
// arguments, and relies on the runtime to marshal arguments across the
// untyped host boundary and to sever every module-owned connection
// before the module's code is reloaded.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	signalruntime/       Root package, documentation only
//	├── signal/          Typed signal handles, connect builders, collections
//	├── registry/        Hot-reload connection registry and reload sweep
//	├── engine/          Host engine abstraction, callables, in-process engine
//	├── variant/         Dynamically typed value container for dispatch
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Declare a signal on an object and connect a typed receiver:
//
//	eng := engine.NewLocalEngine(engine.Config{HotReload: true})
//	obj := eng.NewObject()
//	eng.DeclareSignal(obj.ID(), "damaged", 1)
//
//	sig := signal.AsTyped1[Player, int](signal.New(obj, "damaged"))
//	sig.Connect(func(amount int) {
//	    fmt.Println("took", amount)
//	})
//	sig.Emit(25)
//
// Methods connect with their receiver shape preserved: ConnectSelf
// binds a method of the signal's own class, and the ConnectObjN
// functions bind a method of another live object. The builder exposes
// the remaining options:
//
//	sig.Builder().
//	    SelfMut((*Player).onDamaged).
//	    Flags(engine.ConnectOneShot).
//	    Done()
//
// # Hot Reload
//
// Every connection made through the signal package is recorded in the
// registry when the host reports hot-reload support. Before swapping
// the module's code out, the embedder runs
//
//	registry.Default().DrainAndDisconnect()
//
// which disconnects every tracked connection and releases the weak
// object references backing them. Connections made through the
// engine-native surface are not tracked and survive the sweep.
//
// # Thread Safety
//
// Callables are invoked on whatever goroutine emits the signal. A
// callable built with Sync serializes its invocations and may be
// connected to signals emitted from any goroutine; plain callables
// must only be reached from the goroutine that owns their state.
package signalruntime
