// Package qrng is the built-in quantum random number generator program, the
// workload the runtime substrate was built to host. Each iteration fills a
// pooled-size array with 31 random 32-bit integers composed from measured
// bits and returns its handle to the driver.
package qrng

import (
	"fmt"
	"math/rand"

	"github.com/joshuapare/qirkit/pkg/result"
	"github.com/joshuapare/qirkit/qir/alloc"
	"github.com/joshuapare/qirkit/qir/qis"
	"github.com/joshuapare/qirkit/qir/rt"
)

const (
	// elements is the size of the output array in int32 slots. 64 elements
	// is 256 bytes, the table's pooled size, so iterations rotate between
	// two pre-committed buffers instead of churning slots.
	elements = 64

	bitsPerInt = 32
)

// Program generates random integers by repeated measurement. The seed drives
// the classical source behind the measurement stub; the same seed reproduces
// the same run.
type Program struct {
	q *qis.Intrinsics
}

// New builds a Program with the given measurement seed.
func New(seed int64) *Program {
	return &Program{q: qis.New(rand.New(rand.NewSource(seed)))}
}

// Run produces one result frame: a 256-byte array whose elements 1..31 are
// fresh random integers. Slot 0 is left to the driver.
func (p *Program) Run(r *rt.Runtime) (alloc.Handle, error) {
	out, err := r.ArrayCreate1D(4, elements)
	if err != nil {
		return 0, err
	}

	q := r.QubitAllocate()
	for i := 1; i < result.Slots; i++ {
		v, err := p.randomInt(q)
		if err != nil {
			return 0, err
		}
		if err := r.SetInt32At(out, i, v); err != nil {
			return 0, err
		}
	}

	// Scratch round-trip: copy the frame and immediately drop both the copy
	// and an extra reference. Exercises the copy and shared-ownership paths
	// every iteration without leaving anything live.
	scratch, err := r.ArrayCreate1D(4, 8)
	if err != nil {
		return 0, err
	}
	dup, err := r.ArrayCopy(scratch)
	if err != nil {
		return 0, fmt.Errorf("qrng: scratch copy: %w", err)
	}
	r.ArrayReference(dup)
	r.ArrayUnreference(dup)
	r.ArrayUnreference(dup)
	r.ArrayUnreference(scratch)

	return out, nil
}

// randomInt composes one integer from 32 measured bits: put the qubit in
// superposition, measure, shift the bit in.
func (p *Program) randomInt(q rt.Qubit) (int32, error) {
	var v int32
	for b := 0; b < bitsPerInt; b++ {
		p.q.H(q)
		if p.q.Measure(q) == rt.ResultOne {
			v |= 1 << b
		}
	}
	return v, nil
}
