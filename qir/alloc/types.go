package alloc

// Handle is an opaque buffer reference: a virtual address in the table's flat
// address space. Callers hold and pass handles without any knowledge of the
// slot layout behind them. The zero Handle is never valid.
type Handle uint32

// slot is one entry in the table: the binding between a handle, its backing
// buffer, and the count of active logical owners.
type slot struct {
	addr   Handle
	length int
	refs   int
	pooled bool
	data   []byte
}

// inUse reports whether the slot currently backs a live buffer.
func (s *slot) inUse() bool { return s.refs > 0 }

// Stats is a point-in-time snapshot of table occupancy.
type Stats struct {
	Capacity  int // total slots in the table
	InUse     int // slots with a positive reference count
	Pooled    int // slots owned by the rotating pool
	LiveBytes int // bytes currently backed by in-use slots
	HighWater int // maximum simultaneous in-use slots observed
	PoolHits  int // pooled requests served by rotation instead of allocation
}
