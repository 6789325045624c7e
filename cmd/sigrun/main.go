package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/signal-runtime/engine"
	"github.com/wippyai/signal-runtime/registry"
	"github.com/wippyai/signal-runtime/signal"
)

func main() {
	var (
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		emits       = flag.Int("emits", 3, "Number of scripted fire emissions")
		verbose     = flag.Bool("v", false, "Verbose engine logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		engine.SetLogger(logger)
		registry.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Interactive mode requires a terminal; run without -i.")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*emits); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// turretState is the demo emitter class: a turret that tracks its own
// fire count through a self-connected method.
type turretState struct {
	Shots int
	Last  string
}

func (t *turretState) onFire(target string, power int) {
	t.Shots++
	t.Last = target
}

func (t *turretState) onReload() {
	t.Shots = 0
}

// scoreState lives on a second object and accumulates hits through an
// object-receiver connection.
type scoreState struct {
	Total int
}

func (s *scoreState) addHit(target string, power int) {
	s.Total += power
}

// scene wires two objects and three signals together the way a host
// extension would: typed handles, self and object receivers, a one-shot
// builder connection, all recorded for the hot-reload sweep.
type scene struct {
	eng    *engine.LocalEngine
	turret engine.Object
	board  engine.Object

	turretInst *turretState
	scoreInst  *scoreState

	fired    signal.Typed2[turretState, string, int]
	reloaded signal.Typed0[turretState]
	acquired signal.Typed1[turretState, string]

	mu     sync.Mutex
	events []string
}

func (s *scene) logf(format string, args ...any) {
	s.mu.Lock()
	s.events = append(s.events, fmt.Sprintf(format, args...))
	s.mu.Unlock()
}

func (s *scene) eventTail(n int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) <= n {
		return append([]string(nil), s.events...)
	}
	return append([]string(nil), s.events[len(s.events)-n:]...)
}

func buildScene() (*scene, error) {
	sc := &scene{
		eng:        engine.NewLocalEngine(engine.Config{HotReload: true}),
		turretInst: &turretState{},
		scoreInst:  &scoreState{},
	}

	sc.turret = sc.eng.NewObject()
	if err := sc.eng.BindInstance(sc.turret.ID(), sc.turretInst); err != nil {
		return nil, err
	}
	for name, arity := range map[string]int{"fired": 2, "reloaded": 0, "target_acquired": 1} {
		if err := sc.eng.DeclareSignal(sc.turret.ID(), name, arity); err != nil {
			return nil, err
		}
	}

	sc.board = sc.eng.NewObject()
	if err := sc.eng.BindInstance(sc.board.ID(), sc.scoreInst); err != nil {
		return nil, err
	}

	coll := signal.NewCollection(sc.turret)

	sc.fired = signal.AsTyped2[turretState, string, int](coll.Take("fired"))
	if _, err := sc.fired.Connect(func(target string, power int) {
		sc.logf("fired -> closure: %s at power %d", target, power)
	}); err != nil {
		return nil, err
	}
	if _, err := sc.fired.ConnectSelf((*turretState).onFire); err != nil {
		return nil, err
	}
	if _, err := signal.ConnectObj2(sc.fired, sc.board, (*scoreState).addHit); err != nil {
		return nil, err
	}
	sc.fired.Done()

	sc.reloaded = signal.AsTyped0[turretState](coll.Take("reloaded"))
	if _, err := sc.reloaded.Builder().
		SelfMut((*turretState).onReload).
		Name("turret_reload").
		Done(); err != nil {
		return nil, err
	}
	if _, err := sc.reloaded.Connect(func() {
		sc.logf("reloaded -> closure: shot counter cleared")
	}); err != nil {
		return nil, err
	}
	sc.reloaded.Done()

	sc.acquired = signal.AsTyped1[turretState, string](coll.Take("target_acquired"))
	if _, err := sc.acquired.Builder().
		Function(func(target string) {
			sc.logf("target_acquired -> one-shot: first lock on %s", target)
		}).
		Flags(engine.ConnectOneShot).
		Done(); err != nil {
		return nil, err
	}
	sc.acquired.Done()

	return sc, nil
}

// sweep severs every tracked connection, as a host would right before
// swapping the extension's code out.
func (s *scene) sweep() {
	registry.Default().DrainAndDisconnect()
}

func run(emits int) error {
	sc, err := buildScene()
	if err != nil {
		return err
	}

	fmt.Printf("Scene: turret (object %d), scoreboard (object %d)\n", sc.turret.ID(), sc.board.ID())
	fmt.Printf("Tracked connections: %d\n\n", registry.Default().Len())

	targets := []string{"drone", "tank", "jeep", "apc", "heli"}
	if err := sc.acquired.Emit(targets[0]); err != nil {
		return err
	}
	if err := sc.acquired.Emit(targets[0]); err != nil {
		return err
	}
	for i := 0; i < emits; i++ {
		target := targets[i%len(targets)]
		if err := sc.fired.Emit(target, (i+1)*10); err != nil {
			return err
		}
	}
	if err := sc.reloaded.Emit(); err != nil {
		return err
	}

	for _, ev := range sc.eventTail(100) {
		fmt.Println("  " + ev)
	}
	fmt.Printf("\nTurret: %d shots recorded, last target %q (reloaded: %d)\n",
		emits, sc.turretInst.Last, sc.turretInst.Shots)
	fmt.Printf("Scoreboard total: %d\n", sc.scoreInst.Total)

	fmt.Printf("\nSimulating hot reload: severing %d tracked connections...\n", registry.Default().Len())
	sc.sweep()

	before := sc.scoreInst.Total
	if err := sc.fired.Emit("ghost", 99); err != nil {
		return err
	}
	if sc.scoreInst.Total != before {
		return fmt.Errorf("connection survived the sweep")
	}
	fmt.Println("Post-sweep emit delivered to 0 receivers, as expected.")
	fmt.Printf("Live weak refs: %d\n", sc.eng.LiveWeakRefs())
	return nil
}
