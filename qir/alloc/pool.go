package alloc

// sizePool is the rotation state for the one designated buffer length that
// bypasses per-request allocation. The first `capacity` requests fill the
// pool through the general path; afterwards a monotonically increasing
// request counter selects slots round-robin.
type sizePool struct {
	size     int   // designated byte length; 0 disables the pool
	capacity int   // number of pre-committed slots in the rotation
	rotation []int // table indices of pooled slots, in fill order
	count    int   // total pooled requests served (fill + rotation)
}

func newSizePool(size, capacity int) *sizePool {
	return &sizePool{
		size:     size,
		capacity: capacity,
		rotation: make([]int, 0, capacity),
	}
}

// enabled reports whether the pooled path is active at all.
func (p *sizePool) enabled() bool { return p.size > 0 && p.capacity > 0 }

// filled reports whether the initial fill is complete and requests should
// rotate instead of allocating.
func (p *sizePool) filled() bool { return len(p.rotation) == p.capacity }

// register records a freshly allocated slot index during the fill phase.
func (p *sizePool) register(idx int) {
	p.rotation = append(p.rotation, idx)
	p.count++
}

// next selects the slot index for a post-fill request. The counter keeps
// increasing for the life of the pool, so the selection walks the rotation
// round-robin starting from the first pooled slot.
func (p *sizePool) next() int {
	idx := p.rotation[p.count%p.capacity]
	p.count++
	return idx
}

func (p *sizePool) reset() {
	p.rotation = p.rotation[:0]
	p.count = 0
}
