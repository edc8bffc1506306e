package alloc

import (
	"fmt"
	"os"

	"github.com/joshuapare/qirkit/internal/format"
)

// Runtime debug flag for allocation tracing - controlled by QIRKIT_LOG_ALLOC env var.
var logAlloc = os.Getenv("QIRKIT_LOG_ALLOC") != ""

// Table is the fixed-capacity slot table. It owns every live buffer and the
// metadata binding handles to lengths and reference counts. Not thread-safe;
// see the package documentation.
type Table struct {
	slots []slot
	pool  *sizePool
	mem   Storage

	// nextAddr is the next virtual address to hand out. Addresses only grow,
	// so an address never refers to two different allocations.
	nextAddr Handle

	highWater int
	poolHits  int
}

// New builds a Table with all slots free.
func New(opts ...Option) *Table {
	o := defaultTableOptions()
	for _, opt := range opts {
		opt(o)
	}
	t := &Table{
		slots: make([]slot, o.slots),
		pool:  newSizePool(o.poolSize, o.poolCap),
		mem:   o.storage,
	}
	t.Reset()
	return t
}

// Reset marks every slot free and rewinds the pool and address space.
// Buffers still live at reset time are returned to storage.
func (t *Table) Reset() {
	for i := range t.slots {
		s := &t.slots[i]
		if s.inUse() && s.data != nil {
			t.mem.Free(s.data)
		}
		t.slots[i] = slot{}
	}
	t.pool.reset()
	t.nextAddr = format.HandleBase
	t.highWater = 0
	t.poolHits = 0
}

// Allocate obtains a buffer of length bytes and returns its handle with a
// reference count of one. Requests for the pooled size are served by the
// rotation once its fill is complete. Returns ErrTableFull when no free slot
// exists; the table cannot grow, so callers treat this as terminal.
func (t *Table) Allocate(length int) (Handle, error) {
	if length < 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadLength, length)
	}
	idx, ok := t.freeSlot()
	if !ok {
		if logAlloc {
			fmt.Fprintf(os.Stderr, "[ALLOC] request for %d bytes: no free slot of %d\n",
				length, len(t.slots))
		}
		return 0, ErrTableFull
	}
	if t.pool.enabled() && length == t.pool.size {
		return t.allocatePooled(idx), nil
	}
	return t.fill(idx, length, false), nil
}

// freeSlot finds the lowest-index free slot. Scanning in table order keeps
// slot reuse deterministic.
func (t *Table) freeSlot() (int, bool) {
	for i := range t.slots {
		if !t.slots[i].inUse() {
			return i, true
		}
	}
	return 0, false
}

// fill commits a fresh buffer into the free slot at idx.
func (t *Table) fill(idx, length int, pooled bool) Handle {
	addr := t.nextAddr
	spacing := format.Align8(length)
	if spacing == 0 {
		spacing = format.HandleAlignment
	}
	t.nextAddr += Handle(spacing)

	t.slots[idx] = slot{
		addr:   addr,
		length: length,
		refs:   1,
		pooled: pooled,
		data:   t.mem.Allocate(length),
	}
	if n := t.countInUse(); n > t.highWater {
		t.highWater = n
	}
	if logAlloc {
		fmt.Fprintf(os.Stderr, "[ALLOC] new %d-byte buffer at slot %d, handle 0x%x (pooled=%v)\n",
			length, idx, uint32(addr), pooled)
	}
	return addr
}

// allocatePooled serves a request for the designated size. During the fill
// phase the free slot found by Allocate is consumed as usual; afterwards the
// rotation hands back an existing pooled buffer and the free slot is left
// untouched. Rotation pins the pooled slot's count back to one; pooled
// buffers are not reference-counted for release.
func (t *Table) allocatePooled(freeIdx int) Handle {
	if t.pool.filled() {
		idx := t.pool.next()
		s := &t.slots[idx]
		s.refs = 1
		t.poolHits++
		if logAlloc {
			fmt.Fprintf(os.Stderr, "[ALLOC] pooled rotation -> slot %d, handle 0x%x\n",
				idx, uint32(s.addr))
		}
		return s.addr
	}
	h := t.fill(freeIdx, t.pool.size, true)
	t.pool.register(freeIdx)
	return h
}

// lookup resolves a handle to its in-use slot, scanning in table order.
// Returns nil when no in-use slot has that address.
func (t *Table) lookup(ref Handle) *slot {
	for i := range t.slots {
		s := &t.slots[i]
		if s.inUse() && s.addr == ref {
			return s
		}
	}
	return nil
}

// LengthOf returns the byte length recorded for ref. An unknown handle is a
// caller programming error and yields ErrHandleNotFound; there is no safe
// degraded behavior on the target, so callers fail fast.
func (t *Table) LengthOf(ref Handle) (int, error) {
	s := t.lookup(ref)
	if s == nil {
		return 0, fmt.Errorf("%w: 0x%x", ErrHandleNotFound, uint32(ref))
	}
	return s.length, nil
}

// Bytes returns the backing buffer for ref. The slice is loaned to the
// caller: the table remains the owner and may release it when the reference
// count reaches zero. Unknown handles yield ErrHandleNotFound.
func (t *Table) Bytes(ref Handle) ([]byte, error) {
	s := t.lookup(ref)
	if s == nil {
		return nil, fmt.Errorf("%w: 0x%x", ErrHandleNotFound, uint32(ref))
	}
	return s.data, nil
}

// AddRef registers another logical owner of ref. Unknown handles and pooled
// buffers are ignored: reference counting is meaningless for the pool, and
// the target ABI treats stray references as benign.
func (t *Table) AddRef(ref Handle) {
	s := t.lookup(ref)
	if s == nil || s.pooled {
		return
	}
	s.refs++
}

// RemoveRef drops one logical owner of ref. When the count reaches zero the
// backing storage is released and the slot becomes free for reuse. Unknown
// handles and pooled buffers are ignored.
func (t *Table) RemoveRef(ref Handle) {
	s := t.lookup(ref)
	if s == nil || s.pooled {
		return
	}
	s.refs--
	if s.refs == 0 {
		t.mem.Free(s.data)
		s.data = nil
		if logAlloc {
			fmt.Fprintf(os.Stderr, "[ALLOC] handle 0x%x freed (%d bytes)\n",
				uint32(s.addr), s.length)
		}
	}
}

// Stats returns a snapshot of table occupancy.
func (t *Table) Stats() Stats {
	st := Stats{
		Capacity:  len(t.slots),
		HighWater: t.highWater,
		PoolHits:  t.poolHits,
	}
	for i := range t.slots {
		s := &t.slots[i]
		if !s.inUse() {
			continue
		}
		st.InUse++
		st.LiveBytes += s.length
		if s.pooled {
			st.Pooled++
		}
	}
	return st
}

func (t *Table) countInUse() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].inUse() {
			n++
		}
	}
	return n
}
