package alloc

import (
	"errors"
	"testing"
)

// Test_Table_CapacityInvariant verifies that allocation fails with
// ErrTableFull once every slot is in use, and never before.
func Test_Table_CapacityInvariant(t *testing.T) {
	tab := New(WithSlots(4), WithPool(0, 0))

	for i := 0; i < 4; i++ {
		if _, err := tab.Allocate(16); err != nil {
			t.Fatalf("allocation %d failed early: %v", i, err)
		}
	}
	if _, err := tab.Allocate(16); !errors.Is(err, ErrTableFull) {
		t.Fatalf("expected ErrTableFull, got %v", err)
	}
	if got := tab.Stats().InUse; got != 4 {
		t.Fatalf("in-use slots: got %d, want 4", got)
	}
}

// Test_Table_RefcountLifecycle verifies that storage is released exactly once,
// on the transition to refcount zero.
func Test_Table_RefcountLifecycle(t *testing.T) {
	mem := NewCheckedStorage(nil)
	tab := New(WithSlots(4), WithPool(0, 0), WithStorage(mem))

	h, err := tab.Allocate(64)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	mem.AssertSize(t, 64)

	// N AddRefs followed by N RemoveRefs must return to the initial count
	// without releasing anything.
	const n = 5
	for i := 0; i < n; i++ {
		tab.AddRef(h)
	}
	for i := 0; i < n; i++ {
		tab.RemoveRef(h)
	}
	mem.AssertSize(t, 64)
	if _, err := tab.LengthOf(h); err != nil {
		t.Fatalf("buffer released early: %v", err)
	}

	// The final RemoveRef releases the storage, exactly once.
	tab.RemoveRef(h)
	mem.AssertSize(t, 0)
	if _, err := tab.LengthOf(h); !errors.Is(err, ErrHandleNotFound) {
		t.Fatalf("expected ErrHandleNotFound after release, got %v", err)
	}

	// Releasing again is a silent no-op, not a double free.
	tab.RemoveRef(h)
	mem.AssertSize(t, 0)
}

// Test_Table_FailFastLookup verifies the asymmetric policy: lookups on an
// unknown handle are errors, reference changes are silently ignored.
func Test_Table_FailFastLookup(t *testing.T) {
	tab := New(WithSlots(4))

	if _, err := tab.LengthOf(0xdead); !errors.Is(err, ErrHandleNotFound) {
		t.Fatalf("LengthOf unknown handle: got %v, want ErrHandleNotFound", err)
	}
	if _, err := tab.Bytes(0xdead); !errors.Is(err, ErrHandleNotFound) {
		t.Fatalf("Bytes unknown handle: got %v, want ErrHandleNotFound", err)
	}

	// These must not panic and must not disturb the table.
	tab.AddRef(0xdead)
	tab.RemoveRef(0xdead)
	if got := tab.Stats().InUse; got != 0 {
		t.Fatalf("unknown-handle ops disturbed the table: %d slots in use", got)
	}
}

// Test_Table_SlotReuse verifies that a released slot is reusable by the next
// allocation and that the free-slot search is deterministic.
func Test_Table_SlotReuse(t *testing.T) {
	tab := New(WithSlots(2), WithPool(0, 0))

	h1, err := tab.Allocate(8)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if _, err := tab.Allocate(8); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if _, err := tab.Allocate(8); !errors.Is(err, ErrTableFull) {
		t.Fatalf("expected full table, got %v", err)
	}

	tab.RemoveRef(h1)
	h3, err := tab.Allocate(24)
	if err != nil {
		t.Fatalf("Allocate after release: %v", err)
	}
	if ln, err := tab.LengthOf(h3); err != nil || ln != 24 {
		t.Fatalf("LengthOf reused slot: %d, %v", ln, err)
	}
	if got := tab.Stats().InUse; got != 2 {
		t.Fatalf("in-use slots after reuse: got %d, want 2", got)
	}
}

// Test_Table_DeterministicHandles verifies that identical operation sequences
// produce identical handle sequences, which matters for reproducing target runs.
func Test_Table_DeterministicHandles(t *testing.T) {
	run := func() []Handle {
		tab := New(WithSlots(8))
		var out []Handle
		for _, ln := range []int{16, 256, 64, 256, 256, 8} {
			h, err := tab.Allocate(ln)
			if err != nil {
				t.Fatalf("Allocate(%d): %v", ln, err)
			}
			out = append(out, h)
		}
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("handle %d differs between runs: 0x%x vs 0x%x", i, a[i], b[i])
		}
	}
}

func Test_Table_RejectsNegativeLength(t *testing.T) {
	tab := New()
	if _, err := tab.Allocate(-1); !errors.Is(err, ErrBadLength) {
		t.Fatalf("expected ErrBadLength, got %v", err)
	}
}

func Test_Table_ZeroLengthHandlesDistinct(t *testing.T) {
	tab := New(WithPool(0, 0))
	h1, err := tab.Allocate(0)
	if err != nil {
		t.Fatalf("Allocate(0): %v", err)
	}
	h2, err := tab.Allocate(0)
	if err != nil {
		t.Fatalf("Allocate(0): %v", err)
	}
	if h1 == h2 {
		t.Fatalf("zero-length buffers share handle 0x%x", h1)
	}
}

func Test_Table_ResetReleasesEverything(t *testing.T) {
	mem := NewCheckedStorage(nil)
	tab := New(WithSlots(8), WithStorage(mem))

	if _, err := tab.Allocate(32); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if _, err := tab.Allocate(256); err != nil {
		t.Fatalf("Allocate pooled: %v", err)
	}
	tab.Reset()

	mem.AssertSize(t, 0)
	st := tab.Stats()
	if st.InUse != 0 || st.Pooled != 0 {
		t.Fatalf("stats after reset: %+v", st)
	}

	// The table must be fully usable again.
	if _, err := tab.Allocate(32); err != nil {
		t.Fatalf("Allocate after reset: %v", err)
	}
}

func Test_Table_StatsHighWater(t *testing.T) {
	tab := New(WithSlots(8), WithPool(0, 0))

	var hs []Handle
	for i := 0; i < 3; i++ {
		h, err := tab.Allocate(8)
		if err != nil {
			t.Fatalf("Allocate: %v", err)
		}
		hs = append(hs, h)
	}
	for _, h := range hs {
		tab.RemoveRef(h)
	}

	st := tab.Stats()
	if st.InUse != 0 {
		t.Fatalf("in-use after release: %d", st.InUse)
	}
	if st.HighWater != 3 {
		t.Fatalf("high water: got %d, want 3", st.HighWater)
	}
}
