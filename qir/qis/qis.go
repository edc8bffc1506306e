// Package qis provides the quantum-instruction stubs. The substrate performs
// no gate-level simulation: gates are accepted and discarded, and measurement
// draws from a classical random source. Programs compiled against the real
// instruction set link against these placeholders unchanged.
package qis

import (
	"math/rand"

	"github.com/joshuapare/qirkit/qir/rt"
)

// Intrinsics is the stubbed instruction set. The random source behind Measure
// is injectable so tests are deterministic.
type Intrinsics struct {
	rng *rand.Rand
}

// New builds an Intrinsics drawing measurement bits from rng. A nil rng gets
// a fixed-seed source.
func New(rng *rand.Rand) *Intrinsics {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Intrinsics{rng: rng}
}

// Gate stubs. Each accepts its qubit and does nothing.

func (q *Intrinsics) H(rt.Qubit)    {}
func (q *Intrinsics) X(rt.Qubit)    {}
func (q *Intrinsics) Z(rt.Qubit)    {}
func (q *Intrinsics) S(rt.Qubit)    {}
func (q *Intrinsics) Rx(rt.Qubit)   {}
func (q *Intrinsics) Rz(rt.Qubit)   {}
func (q *Intrinsics) Mz(rt.Qubit)   {}
func (q *Intrinsics) CNOT(rt.Qubit) {}

// Measure collapses the qubit to a classical bit. Stub: a fair coin from the
// injected random source.
func (q *Intrinsics) Measure(rt.Qubit) rt.Result {
	if q.rng.Intn(2) == 1 {
		return rt.ResultOne
	}
	return rt.ResultZero
}

// IntAsDouble converts a runtime integer to a double.
func (q *Intrinsics) IntAsDouble(v int32) float64 { return float64(v) }
