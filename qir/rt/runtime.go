// Package rt implements the runtime intrinsics that compiled
// quantum-circuit programs call: 1-D array management, qubit and result
// lifetime, and interop strings. All buffer state lives in the slot table
// from qir/alloc; this package is the facade over it.
//
// Like the table it wraps, a Runtime is single-threaded by design.
package rt

import (
	"github.com/joshuapare/qirkit/qir/alloc"
)

// Runtime exposes the intrinsic operations over one slot table.
type Runtime struct {
	tab *alloc.Table
}

// New builds a Runtime over tab. A nil tab gets a table with default
// geometry.
func New(tab *alloc.Table) *Runtime {
	if tab == nil {
		tab = alloc.New()
	}
	return &Runtime{tab: tab}
}

// Table returns the underlying slot table, mainly for stats and tests.
func (r *Runtime) Table() *alloc.Table { return r.tab }

// Reset returns the runtime to its initial state: every slot free, pool
// rewound. Called once at process start.
func (r *Runtime) Reset() { r.tab.Reset() }
