package signal

import (
	"fmt"

	"github.com/wippyai/signal-runtime/engine"
)

// Collection is the per-object signal accessor. It enforces the
// one-signal-configuration-at-a-time discipline: the object handle lives
// in an internal slot that is emptied when a signal is checked out and
// restored by Signal.Done. Checking out a second signal while one is
// outstanding is a programmer error and panics.
//
// Generated per-class accessors wrap a Collection and expose one typed
// method per declared signal.
type Collection struct {
	slot *engine.Object
}

// NewCollection builds a collection for the given object.
func NewCollection(obj engine.Object) *Collection {
	return &Collection{slot: &obj}
}

// Take checks out the named signal. It panics if a previously taken
// signal has not been finalized with Done.
func (c *Collection) Take(name string) *Signal {
	if c.slot == nil {
		panic(fmt.Sprintf(
			"signal: Take(%q) while another signal handle is checked out; "+
				"only one signal configuration is allowed at a time - call Done() on the previous handle first",
			name))
	}
	obj := *c.slot
	c.slot = nil
	return &Signal{obj: obj, name: name, coll: c}
}

func (c *Collection) restore(obj engine.Object) {
	c.slot = &obj
}
