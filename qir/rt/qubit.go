package rt

import "github.com/joshuapare/qirkit/qir/alloc"

// Qubit identifies a logical qubit. The substrate performs no gate-level
// simulation, so allocation is a stub that always yields qubit 0, exactly as
// the target runtime does.
type Qubit int32

// Result is a measurement outcome.
type Result int32

const (
	ResultZero Result = 0
	ResultOne  Result = 1
)

// QubitAllocate claims a qubit. Stub: the constrained target models a single
// implicit qubit register.
func (r *Runtime) QubitAllocate() Qubit { return 0 }

// QubitRelease releases any buffer tied to a qubit-scope resource. Qubit and
// array lifetimes share the unified reference-count path, so this is the same
// operation as ArrayUnreference.
func (r *Runtime) QubitRelease(h alloc.Handle) { r.tab.RemoveRef(h) }

// ResultEqual compares two measurement outcomes.
func (r *Runtime) ResultEqual(a, b Result) bool { return a == b }

// ResultUnreference drops a result-scope resource. Same unified lifetime path
// as arrays.
func (r *Runtime) ResultUnreference(h alloc.Handle) { r.tab.RemoveRef(h) }
