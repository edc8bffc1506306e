// Package alloc provides the fixed-capacity, reference-counted buffer table
// that backs array allocation in the runtime.
//
// # Overview
//
// This package implements the memory-management substrate for executing
// compiled quantum-circuit programs on a resource-constrained target: a
// bounded table of slots, each binding an opaque Handle to a buffer of fixed
// length and a reference count. There is no general-purpose heap behind it:
// exhausting the table is a terminal condition, not a recoverable error.
//
// # Slot Table
//
// The core abstraction is the Table, which supports:
//
//   - Allocate(length): obtain a fresh buffer and a Handle to it
//   - LengthOf(ref) / Bytes(ref): resolve a Handle back to its metadata
//   - AddRef(ref) / RemoveRef(ref): adjust shared ownership
//   - Reset(): mark every slot free (process start)
//
// A slot is in use exactly while its reference count is positive. Storage is
// released on the transition to zero, never before and never twice. Both the
// free-slot search and Handle resolution walk the table in index order, so
// slot reuse is deterministic and reproducible.
//
// # Handles
//
// A Handle is a virtual address in a flat space starting at 0x1000. Fresh
// allocations receive monotonically increasing, 8-byte-aligned addresses, so
// no two in-use slots ever share an address. Handle 0 is never valid.
//
// # Pooled size
//
// One designated buffer length (256 bytes by default) is served from a small
// rotating pool instead of the general path. The first requests fill the pool
// through ordinary allocation; every later request hands back one of the
// pooled buffers round-robin. Pooled buffers are owned by the pool for the
// life of the process; they are never reference-counted for release, and
// AddRef/RemoveRef on them are deliberate no-ops. On a constrained target
// this trades a small fixed memory cost for eliminating allocate/free churn
// on the hot size.
//
// # Failure policy
//
// Allocate returns ErrTableFull when no free slot exists, and LengthOf/Bytes
// return ErrHandleNotFound for a Handle with no in-use slot. Both are
// terminal: the execution driver records a sentinel code in the result vector
// and stops. AddRef and RemoveRef instead ignore unknown handles silently.
// That asymmetry is inherited from the target runtime ABI and is load-bearing
// for programs that over-release.
//
// # Thread safety
//
// Table instances are not thread-safe. The runtime executes programs on a
// single sequential context and the table assumes exactly that; callers that
// want concurrency must synchronize externally.
package alloc
