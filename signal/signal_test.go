package signal

import (
	stderrors "errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/wippyai/signal-runtime/engine"
	"github.com/wippyai/signal-runtime/errors"
	"github.com/wippyai/signal-runtime/registry"
	"github.com/wippyai/signal-runtime/variant"
)

// turret is the user class used across these tests.
type turret struct {
	shots int
	last  string
}

func (t *turret) onFire(target string, power int) {
	t.shots++
	t.last = target
}

func (t *turret) onReload() {
	t.shots = 0
}

type scoreboard struct {
	total int
}

func (s *scoreboard) addHit(target string, power int) {
	s.total += power
}

func newTestEngine() *engine.LocalEngine {
	return engine.NewLocalEngine(engine.Config{})
}

func declareSignal(t *testing.T, e *engine.LocalEngine, name string, arity int) engine.Object {
	t.Helper()
	obj := e.NewObject()
	if err := e.DeclareSignal(obj.ID(), name, arity); err != nil {
		t.Fatalf("declare %s: %v", name, err)
	}
	return obj
}

func TestTypedConnectAndEmit(t *testing.T) {
	e := newTestEngine()
	obj := declareSignal(t, e, "fired", 2)

	sig := AsTyped2[turret, string, int](New(obj, "fired"))

	var gotTarget string
	var gotPower int
	if _, err := sig.Connect(func(target string, power int) {
		gotTarget = target
		gotPower = power
	}); err != nil {
		t.Fatalf("connect: %v", err)
	}

	if err := sig.Emit("drone", 42); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if gotTarget != "drone" || gotPower != 42 {
		t.Fatalf("receiver got (%q, %d), want (drone, 42)", gotTarget, gotPower)
	}
}

func TestConnectSelf(t *testing.T) {
	e := newTestEngine()
	obj := declareSignal(t, e, "fired", 2)

	inst := &turret{}
	if err := e.BindInstance(obj.ID(), inst); err != nil {
		t.Fatalf("bind: %v", err)
	}

	sig := AsTyped2[turret, string, int](New(obj, "fired"))
	if _, err := sig.ConnectSelf((*turret).onFire); err != nil {
		t.Fatalf("connect self: %v", err)
	}

	if err := sig.Emit("tank", 7); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if err := sig.Emit("jeep", 3); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if inst.shots != 2 || inst.last != "jeep" {
		t.Fatalf("instance state = %+v, want 2 shots, last jeep", inst)
	}
}

func TestConnectObj(t *testing.T) {
	e := newTestEngine()
	emitter := declareSignal(t, e, "fired", 2)

	board := e.NewObject()
	inst := &scoreboard{}
	if err := e.BindInstance(board.ID(), inst); err != nil {
		t.Fatalf("bind: %v", err)
	}

	sig := AsTyped2[turret, string, int](New(emitter, "fired"))
	if _, err := ConnectObj2(sig, board, (*scoreboard).addHit); err != nil {
		t.Fatalf("connect obj: %v", err)
	}

	if err := sig.Emit("drone", 10); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if err := sig.Emit("drone", 5); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if inst.total != 15 {
		t.Fatalf("scoreboard total = %d, want 15", inst.total)
	}
}

func TestBuilder_SelfRefSeesValueCopy(t *testing.T) {
	e := newTestEngine()
	obj := declareSignal(t, e, "reloaded", 0)

	inst := &turret{shots: 9}
	if err := e.BindInstance(obj.ID(), inst); err != nil {
		t.Fatalf("bind: %v", err)
	}

	var seen int
	sig := AsTyped0[turret](New(obj, "reloaded"))
	_, err := sig.Builder().
		SelfRef(func(c turret) {
			seen = c.shots
			c.shots = 0
		}).
		Done()
	if err != nil {
		t.Fatalf("done: %v", err)
	}

	if err := sig.Emit(); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if seen != 9 {
		t.Fatalf("receiver saw %d shots, want 9", seen)
	}
	// Mutating the copy must not touch the bound instance.
	if inst.shots != 9 {
		t.Fatalf("bound instance mutated through value copy: %d", inst.shots)
	}
}

func TestBuilder_MissingReceiver(t *testing.T) {
	e := newTestEngine()
	obj := declareSignal(t, e, "fired", 2)

	sig := AsTyped2[turret, string, int](New(obj, "fired"))
	_, err := sig.Builder().Sync().Flags(engine.ConnectOneShot).Done()
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseConnect, Kind: errors.KindMissingReceiver}) {
		t.Fatalf("expected missing_receiver, got %v", err)
	}
}

func TestBuilder_OneShot(t *testing.T) {
	e := newTestEngine()
	obj := declareSignal(t, e, "reloaded", 0)

	count := 0
	sig := AsTyped0[turret](New(obj, "reloaded"))
	if _, err := sig.Builder().
		Function(func() { count++ }).
		Flags(engine.ConnectOneShot).
		Done(); err != nil {
		t.Fatalf("done: %v", err)
	}

	if err := sig.Emit(); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if err := sig.Emit(); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if count != 1 {
		t.Fatalf("one-shot receiver fired %d times", count)
	}
}

func TestBuilder_ConfigurationOrderIndependent(t *testing.T) {
	e := newTestEngine()
	obj := declareSignal(t, e, "reloaded", 0)

	// Flags before the receiver and after it must configure the same
	// connection; both are one-shot here.
	countA, countB := 0, 0
	sig := AsTyped0[turret](New(obj, "reloaded"))
	if _, err := sig.Builder().
		Flags(engine.ConnectOneShot).
		Function(func() { countA++ }).
		Done(); err != nil {
		t.Fatalf("done: %v", err)
	}
	if _, err := sig.Builder().
		Function(func() { countB++ }).
		Flags(engine.ConnectOneShot).
		Done(); err != nil {
		t.Fatalf("done: %v", err)
	}

	if err := sig.Emit(); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if err := sig.Emit(); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if countA != 1 || countB != 1 {
		t.Fatalf("counts = (%d, %d), want (1, 1)", countA, countB)
	}
}

func TestBuilder_Deferred(t *testing.T) {
	e := newTestEngine()
	obj := declareSignal(t, e, "reloaded", 0)

	count := 0
	sig := AsTyped0[turret](New(obj, "reloaded"))
	if _, err := sig.Builder().
		Function(func() { count++ }).
		Flags(engine.ConnectDeferred).
		Done(); err != nil {
		t.Fatalf("done: %v", err)
	}

	if err := sig.Emit(); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if count != 0 {
		t.Fatal("deferred receiver fired synchronously")
	}
	e.FlushDeferred()
	if count != 1 {
		t.Fatalf("deferred receiver fired %d times after flush", count)
	}
}

func TestBuilder_SyncSerializesInvocations(t *testing.T) {
	e := newTestEngine()
	obj := declareSignal(t, e, "reloaded", 0)

	// The counter is unsynchronized on purpose; the serialized callable
	// is the only thing keeping concurrent emits from racing on it.
	count := 0
	sig := AsTyped0[turret](New(obj, "reloaded"))
	if _, err := sig.Builder().
		Function(func() { count++ }).
		Sync().
		Done(); err != nil {
		t.Fatalf("done: %v", err)
	}

	const emitters = 8
	const perEmitter = 50
	var wg sync.WaitGroup
	for i := 0; i < emitters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perEmitter; j++ {
				if err := sig.Emit(); err != nil {
					t.Errorf("emit: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	if count != emitters*perEmitter {
		t.Fatalf("count = %d, want %d", count, emitters*perEmitter)
	}
}

func TestBuilder_CustomName(t *testing.T) {
	e := newTestEngine()
	obj := declareSignal(t, e, "reloaded", 0)

	sig := AsTyped0[turret](New(obj, "reloaded"))
	h, err := sig.Builder().
		Function(func() {}).
		Name("turret_reload_watcher").
		Done()
	if err != nil {
		t.Fatalf("done: %v", err)
	}
	if got := h.Callable().Name(); got != "turret_reload_watcher" {
		t.Fatalf("callable name = %q", got)
	}
}

func TestCallableNameDerivedFromSymbol(t *testing.T) {
	e := newTestEngine()
	obj := declareSignal(t, e, "fired", 2)

	inst := &turret{}
	if err := e.BindInstance(obj.ID(), inst); err != nil {
		t.Fatalf("bind: %v", err)
	}

	sig := AsTyped2[turret, string, int](New(obj, "fired"))
	h, err := sig.ConnectSelf((*turret).onFire)
	if err != nil {
		t.Fatalf("connect self: %v", err)
	}
	if name := h.Callable().Name(); !strings.Contains(name, "onFire") {
		t.Fatalf("derived name %q does not mention the method", name)
	}
}

func TestCollection_SingleCheckout(t *testing.T) {
	e := newTestEngine()
	obj := declareSignal(t, e, "fired", 2)
	if err := e.DeclareSignal(obj.ID(), "reloaded", 0); err != nil {
		t.Fatalf("declare: %v", err)
	}

	coll := NewCollection(obj)
	first := coll.Take("fired")

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("second Take with an outstanding handle must panic")
			}
		}()
		coll.Take("reloaded")
	}()

	first.Done()
	second := coll.Take("reloaded")
	if second.Name() != "reloaded" {
		t.Fatalf("took %q after Done", second.Name())
	}
	second.Done()
}

func TestEmit_ArityMismatch(t *testing.T) {
	e := newTestEngine()
	obj := declareSignal(t, e, "fired", 2)

	s := New(obj, "fired")
	err := s.EmitRaw(variant.New("only one"))
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseEmit, Kind: errors.KindArityMismatch}) {
		t.Fatalf("expected arity_mismatch, got %v", err)
	}
}

func TestDispatch_TypeMismatchDropsInvocation(t *testing.T) {
	e := newTestEngine()
	obj := declareSignal(t, e, "scored", 1)

	sig := AsTyped1[turret, int](New(obj, "scored"))
	fired := false
	if _, err := sig.Connect(func(points int) { fired = true }); err != nil {
		t.Fatalf("connect: %v", err)
	}

	// The emit itself succeeds; the per-callable conversion failure is
	// reported through the engine log, not the emitter.
	if err := sig.EmitRaw(variant.New("not an int")); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if fired {
		t.Fatal("receiver ran despite argument type mismatch")
	}

	if err := sig.Emit(3); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if !fired {
		t.Fatal("receiver did not run for well-typed emit")
	}
}

func TestConnectHandle_Disconnect(t *testing.T) {
	e := newTestEngine()
	obj := declareSignal(t, e, "reloaded", 0)

	count := 0
	sig := AsTyped0[turret](New(obj, "reloaded"))
	h, err := sig.Connect(func() { count++ })
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	if err := h.Disconnect(); err != nil {
		t.Fatalf("disconnect: %v", err)
	}
	if h.IsConnected() {
		t.Fatal("handle still reports connected")
	}
	if err := sig.Emit(); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if count != 0 {
		t.Fatal("disconnected receiver fired")
	}
}

func TestUntypedRef(t *testing.T) {
	e := newTestEngine()
	obj := declareSignal(t, e, "fired", 2)

	ref := New(obj, "fired").Untyped()

	var got []variant.Variant
	c := engine.NewCallable("raw", func(args []variant.Variant) (variant.Variant, error) {
		got = append(got[:0], args...)
		return variant.Nil(), nil
	})
	if _, err := ref.Connect(c, 0); err != nil {
		t.Fatalf("connect: %v", err)
	}

	if err := ref.Emit(variant.New("x"), variant.New(1)); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("raw receiver got %d args", len(got))
	}
}

func TestHotReload_ConnectionsAreSwept(t *testing.T) {
	e := engine.NewLocalEngine(engine.Config{HotReload: true})
	obj := declareSignal(t, e, "reloaded", 0)

	base := registry.Default().Len()

	count := 0
	sig := AsTyped0[turret](New(obj, "reloaded"))
	h, err := sig.Connect(func() { count++ })
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if got := registry.Default().Len(); got != base+1 {
		t.Fatalf("registry len = %d, want %d", got, base+1)
	}

	registry.Default().DrainAndDisconnect()

	if registry.Default().Len() != 0 {
		t.Fatalf("registry not empty after drain")
	}
	if h.IsConnected() {
		t.Fatal("tracked connection survived the reload sweep")
	}
	if err := sig.Emit(); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if count != 0 {
		t.Fatal("receiver fired after the reload sweep")
	}
	if e.LiveWeakRefs() != 0 {
		t.Fatal("weak refs leaked across the sweep")
	}
}

// telemetry carries one parameter of a distinct type per position, so a
// transposed argument index anywhere in the nine-argument path fails the
// conversion instead of passing silently.
type telemetry struct {
	got []any
}

func (m *telemetry) capture(a int, b string, c bool, d float64, e int8, f uint16, g int32, h float32, i int64) {
	m.got = []any{a, b, c, d, e, f, g, h, i}
}

func declareTelemetry(t *testing.T, e *engine.LocalEngine) engine.Object {
	t.Helper()
	obj := e.NewObject()
	if err := e.DeclareSignal(obj.ID(), "telemetry", 9); err != nil {
		t.Fatalf("declare: %v", err)
	}
	return obj
}

func telemetrySignal(obj engine.Object) Typed9[telemetry, int, string, bool, float64, int8, uint16, int32, float32, int64] {
	return AsTyped9[telemetry, int, string, bool, float64, int8, uint16, int32, float32, int64](New(obj, "telemetry"))
}

var telemetryWant = []any{1, "two", true, 4.5, int8(5), uint16(6), int32(7), float32(8.5), int64(9)}

func emitTelemetry(t *testing.T, sig Typed9[telemetry, int, string, bool, float64, int8, uint16, int32, float32, int64]) {
	t.Helper()
	if err := sig.Emit(1, "two", true, 4.5, int8(5), uint16(6), int32(7), float32(8.5), int64(9)); err != nil {
		t.Fatalf("emit: %v", err)
	}
}

func TestMaxArity_ConnectDeliversInDeclarationOrder(t *testing.T) {
	e := newTestEngine()
	obj := declareTelemetry(t, e)
	sig := telemetrySignal(obj)

	var got []any
	if _, err := sig.Connect(func(a int, b string, c bool, d float64, e int8, f uint16, g int32, h float32, i int64) {
		got = []any{a, b, c, d, e, f, g, h, i}
	}); err != nil {
		t.Fatalf("connect: %v", err)
	}

	emitTelemetry(t, sig)
	if !reflect.DeepEqual(got, telemetryWant) {
		t.Fatalf("arguments out of declaration order:\n got %v\nwant %v", got, telemetryWant)
	}
}

func TestMaxArity_ConnectSelf(t *testing.T) {
	e := newTestEngine()
	obj := declareTelemetry(t, e)

	inst := &telemetry{}
	if err := e.BindInstance(obj.ID(), inst); err != nil {
		t.Fatalf("bind: %v", err)
	}

	sig := telemetrySignal(obj)
	if _, err := sig.ConnectSelf((*telemetry).capture); err != nil {
		t.Fatalf("connect self: %v", err)
	}

	emitTelemetry(t, sig)
	if !reflect.DeepEqual(inst.got, telemetryWant) {
		t.Fatalf("self receiver got %v, want %v", inst.got, telemetryWant)
	}
}

func TestMaxArity_ConnectObj(t *testing.T) {
	e := newTestEngine()
	emitter := declareTelemetry(t, e)

	sink := e.NewObject()
	inst := &telemetry{}
	if err := e.BindInstance(sink.ID(), inst); err != nil {
		t.Fatalf("bind: %v", err)
	}

	sig := telemetrySignal(emitter)
	if _, err := ConnectObj9(sig, sink, (*telemetry).capture); err != nil {
		t.Fatalf("connect obj: %v", err)
	}

	emitTelemetry(t, sig)
	if !reflect.DeepEqual(inst.got, telemetryWant) {
		t.Fatalf("object receiver got %v, want %v", inst.got, telemetryWant)
	}
}

func TestMaxArity_BuilderObj(t *testing.T) {
	e := newTestEngine()
	emitter := declareTelemetry(t, e)

	sink := e.NewObject()
	inst := &telemetry{}
	if err := e.BindInstance(sink.ID(), inst); err != nil {
		t.Fatalf("bind: %v", err)
	}

	sig := telemetrySignal(emitter)
	b := sig.Builder().Flags(engine.ConnectOneShot)
	if _, err := BuilderObj9(b, sink, (*telemetry).capture).Done(); err != nil {
		t.Fatalf("done: %v", err)
	}

	emitTelemetry(t, sig)
	if !reflect.DeepEqual(inst.got, telemetryWant) {
		t.Fatalf("builder object receiver got %v, want %v", inst.got, telemetryWant)
	}

	// One-shot: the second emit must not overwrite the capture.
	inst.got = nil
	emitTelemetry(t, sig)
	if inst.got != nil {
		t.Fatal("one-shot builder connection fired twice")
	}
}

func TestMaxArity_BuilderSelfRef(t *testing.T) {
	e := newTestEngine()
	obj := declareTelemetry(t, e)

	inst := &telemetry{got: []any{"sentinel"}}
	if err := e.BindInstance(obj.ID(), inst); err != nil {
		t.Fatalf("bind: %v", err)
	}

	var got []any
	var snapshot []any
	sig := telemetrySignal(obj)
	if _, err := sig.Builder().
		SelfRef(func(c telemetry, a int, b string, cc bool, d float64, e int8, f uint16, g int32, h float32, i int64) {
			snapshot = c.got
			got = []any{a, b, cc, d, e, f, g, h, i}
		}).
		Done(); err != nil {
		t.Fatalf("done: %v", err)
	}

	emitTelemetry(t, sig)
	if !reflect.DeepEqual(got, telemetryWant) {
		t.Fatalf("shared-access receiver got %v, want %v", got, telemetryWant)
	}
	if len(snapshot) != 1 || snapshot[0] != "sentinel" {
		t.Fatalf("receiver did not see the bound instance state: %v", snapshot)
	}
}
