// Package format houses the low-level layout constants and decoders for the
// runtime's external binary surfaces. The goal is to keep the byte-level
// details focused and independent from the public API so higher-level
// packages can orchestrate the data in a more ergonomic form.
package format

const (
	// VectorSlots is the number of fixed-width integer slots in the result
	// vector shared with the execution harness. Slot 0 carries the loop
	// counter (or a fatal sentinel code); slots 1..31 carry payload.
	VectorSlots = 32

	// SlotSize is the width of a single result-vector slot in bytes.
	// Slots are little-endian int32 values.
	SlotSize = 4

	// VectorSize is the total on-wire size of a result vector in bytes.
	VectorSize = VectorSlots * SlotSize

	// ElementSize is the width of a single array element in bytes. Compiled
	// programs address arrays as sequences of 32-bit integers, so element
	// pointer arithmetic always advances in 4-byte steps.
	ElementSize = 4

	// HandleBase is the first virtual address handed out by the slot table.
	// Address 0 is reserved so a zero Handle is always invalid.
	HandleBase = 0x1000

	// HandleAlignment is the required alignment of buffer base addresses in
	// the virtual address space.
	HandleAlignment = 8
)

// Align8 rounds n up to the next multiple of 8.
func Align8(n int) int {
	return (n + 7) &^ 7
}
