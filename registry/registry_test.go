package registry

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/signal-runtime/engine"
	"github.com/wippyai/signal-runtime/variant"
)

func newHotReloadEngine() *engine.LocalEngine {
	return engine.NewLocalEngine(engine.Config{HotReload: true})
}

func connectCounting(t *testing.T, e *engine.LocalEngine, obj engine.Object, signal string, count *int) *engine.Callable {
	t.Helper()
	c := engine.NewCallable("rcv", func(args []variant.Variant) (variant.Variant, error) {
		*count++
		return variant.Nil(), nil
	})
	if err := obj.Connect(signal, c, 0); err != nil {
		t.Fatalf("connect: %v", err)
	}
	return c
}

func declareObject(t *testing.T, e *engine.LocalEngine, signal string) engine.Object {
	t.Helper()
	obj := e.NewObject()
	if err := e.DeclareSignal(obj.ID(), signal, 0); err != nil {
		t.Fatalf("declare: %v", err)
	}
	return obj
}

func TestRecord_NoOpWithoutHotReload(t *testing.T) {
	e := engine.NewLocalEngine(engine.Config{})
	obj := declareObject(t, e, "ping")

	r := New()
	count := 0
	c := connectCounting(t, e, obj, "ping", &count)
	r.Record(e, obj.ID(), "ping", c)

	if r.Len() != 0 {
		t.Fatalf("expected empty registry in non-hot-reload host, got %d entries", r.Len())
	}
	if e.LiveWeakRefs() != 0 {
		t.Fatal("no weak refs should be created in non-hot-reload host")
	}
}

func TestRecord_PrunesStaleEntries(t *testing.T) {
	e := newHotReloadEngine()
	r := New()

	// N = 4 recorded connections, M = 2 receivers freed before the next
	// record. The following Record call must leave N - M + 1 entries.
	var objs []engine.Object
	count := 0
	for i := 0; i < 4; i++ {
		obj := declareObject(t, e, "ping")
		c := connectCounting(t, e, obj, "ping", &count)
		r.Record(e, obj.ID(), "ping", c)
		objs = append(objs, obj)
	}
	if r.Len() != 4 {
		t.Fatalf("expected 4 entries, got %d", r.Len())
	}

	if err := e.FreeObject(objs[0].ID()); err != nil {
		t.Fatalf("free: %v", err)
	}
	if err := e.FreeObject(objs[2].ID()); err != nil {
		t.Fatalf("free: %v", err)
	}

	obj := declareObject(t, e, "ping")
	c := connectCounting(t, e, obj, "ping", &count)
	r.Record(e, obj.ID(), "ping", c)

	if r.Len() != 3 {
		t.Fatalf("expected 4 - 2 + 1 = 3 entries, got %d", r.Len())
	}
	// 3 live entries hold exactly 3 weak refs; the pruned ones were
	// disposed.
	if n := e.LiveWeakRefs(); n != 3 {
		t.Fatalf("expected 3 live weak refs, got %d", n)
	}
}

func TestPrune_Standalone(t *testing.T) {
	e := newHotReloadEngine()
	r := New()

	obj := declareObject(t, e, "ping")
	count := 0
	c := connectCounting(t, e, obj, "ping", &count)
	r.Record(e, obj.ID(), "ping", c)

	if err := e.FreeObject(obj.ID()); err != nil {
		t.Fatalf("free: %v", err)
	}

	r.Prune()
	if r.Len() != 0 {
		t.Fatalf("expected empty registry after prune, got %d", r.Len())
	}
	if e.LiveWeakRefs() != 0 {
		t.Fatal("pruned weak ref was not disposed")
	}
}

func TestDrainAndDisconnect(t *testing.T) {
	core, logged := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	e := newHotReloadEngine()
	r := New()

	obj := declareObject(t, e, "ping")
	tracked := 0
	c := connectCounting(t, e, obj, "ping", &tracked)
	r.Record(e, obj.ID(), "ping", c)

	// An engine-native connection the registry knows nothing about.
	untracked := 0
	connectCounting(t, e, obj, "ping", &untracked)

	r.DrainAndDisconnect()

	if r.Len() != 0 {
		t.Fatalf("registry not empty after drain: %d", r.Len())
	}
	if e.LiveWeakRefs() != 0 {
		t.Fatal("weak refs leaked by drain")
	}
	if obj.IsConnected("ping", c) {
		t.Fatal("tracked connection still connected after drain")
	}

	if err := obj.Emit("ping"); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if tracked != 0 {
		t.Fatal("tracked callable fired after drain")
	}
	if untracked != 1 {
		t.Fatalf("untracked connection should still fire, got %d", untracked)
	}

	if got := logged.Len(); got != 1 {
		t.Fatalf("expected exactly one warning, got %d", got)
	}
}

func TestDrainAndDisconnect_Idempotent(t *testing.T) {
	core, logged := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	e := newHotReloadEngine()
	r := New()

	obj := declareObject(t, e, "ping")
	count := 0
	c := connectCounting(t, e, obj, "ping", &count)
	r.Record(e, obj.ID(), "ping", c)

	r.DrainAndDisconnect()
	r.DrainAndDisconnect()

	if got := logged.Len(); got != 1 {
		t.Fatalf("second drain must not warn again, got %d warnings", got)
	}
}

func TestDrain_DeadReceiverSkipped(t *testing.T) {
	e := newHotReloadEngine()
	r := New()

	obj := declareObject(t, e, "ping")
	count := 0
	c := connectCounting(t, e, obj, "ping", &count)
	r.Record(e, obj.ID(), "ping", c)

	if err := e.FreeObject(obj.ID()); err != nil {
		t.Fatalf("free: %v", err)
	}

	// Must not attempt to disconnect a dead object, and must still
	// dispose the weak handle exactly once.
	r.DrainAndDisconnect()

	if r.Len() != 0 {
		t.Fatalf("registry not empty: %d", r.Len())
	}
	if e.LiveWeakRefs() != 0 {
		t.Fatal("weak ref leaked")
	}
}

func TestDrain_AlreadyDisconnectedEntry(t *testing.T) {
	e := newHotReloadEngine()
	r := New()

	obj := declareObject(t, e, "ping")
	count := 0
	c := connectCounting(t, e, obj, "ping", &count)
	r.Record(e, obj.ID(), "ping", c)

	// Explicitly disconnected before the sweep; drain checks the host's
	// is-connected query and skips the native disconnect.
	if err := obj.Disconnect("ping", c); err != nil {
		t.Fatalf("disconnect: %v", err)
	}

	r.DrainAndDisconnect()
	if r.Len() != 0 || e.LiveWeakRefs() != 0 {
		t.Fatal("drain left state behind for a disconnected entry")
	}
}
