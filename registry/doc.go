// Package registry tracks signal connections that must be severed before
// a hot reload.
//
// A foreign callable connected to an engine signal is a pointer into this
// library's code. If the host unloads and reloads that code while the
// process keeps running, every such pointer becomes invalid, and the next
// emission would fire into unloaded memory. The registry prevents that:
// every connection created through a typed signal in a hot-reload-capable
// host is recorded here, and the host drains the registry - forcibly
// disconnecting every still-valid entry - at the single point where it
// enters a reload.
//
// Entries hold only a weak, validity-checkable handle to the receiver, so
// the registry never extends an object's lifetime. Handles are disposed
// explicitly and exactly once, through a take-once slot. Stale entries
// (dead receivers) are pruned lazily on each Record call.
//
// In hosts that cannot hot-reload, Record is a no-op and the registry
// stays empty for the life of the process.
package registry
