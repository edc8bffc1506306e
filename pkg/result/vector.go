// Package result defines the fixed result vector shared between the runtime
// and its execution harness. The layout is bit-exact: 32 little-endian int32
// slots (128 bytes). Slot 0 carries the iteration counter while the program
// is healthy and a negative sentinel code after a fatal error; slots 1..31
// carry the program's output.
package result

import (
	"fmt"

	"github.com/joshuapare/qirkit/internal/format"
)

const (
	// Slots is the number of int32 slots in the vector.
	Slots = format.VectorSlots

	// Size is the encoded size of the vector in bytes.
	Size = format.VectorSize
)

// Sentinel codes written to slot 0 before the harness stops. Negative values
// are reserved for failures; healthy iterations count up from 1.
const (
	// CodeHandleNotFound reports a lookup on a handle with no in-use slot.
	CodeHandleNotFound int32 = -1

	// CodeTableFull reports slot-table exhaustion.
	CodeTableFull int32 = -2
)

// Vector is one result frame.
type Vector [Slots]int32

// Status returns slot 0.
func (v *Vector) Status() int32 { return v[0] }

// SetStatus stores code in slot 0.
func (v *Vector) SetStatus(code int32) { v[0] = code }

// Failed reports whether slot 0 holds a fatal sentinel.
func (v *Vector) Failed() bool { return v[0] < 0 }

// MarshalBinary encodes the vector in its on-wire layout.
func (v *Vector) MarshalBinary() ([]byte, error) {
	out := make([]byte, Size)
	v.Encode(out)
	return out, nil
}

// Encode writes the vector into b, which must hold at least Size bytes.
func (v *Vector) Encode(b []byte) {
	for i, val := range v {
		format.PutI32(b, i*format.SlotSize, val)
	}
}

// UnmarshalBinary decodes a vector from its on-wire layout.
func (v *Vector) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return fmt.Errorf("result: vector must be %d bytes, got %d", Size, len(data))
	}
	for i := range v {
		v[i] = format.ReadI32(data, i*format.SlotSize)
	}
	return nil
}

// StatusString renders slot 0 for humans.
func StatusString(code int32) string {
	switch {
	case code == CodeHandleNotFound:
		return "fatal: handle not found"
	case code == CodeTableFull:
		return "fatal: slot table full"
	case code < 0:
		return fmt.Sprintf("fatal: unknown sentinel %d", code)
	case code == 0:
		return "no iterations recorded"
	default:
		return fmt.Sprintf("iteration %d", code)
	}
}
