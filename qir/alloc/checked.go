package alloc

import "unsafe"

// CheckedStorage wraps another Storage and accounts every allocation so tests
// can assert that buffers are released exactly once and that nothing leaks.
// Like the table itself it is not thread-safe.
type CheckedStorage struct {
	mem  Storage
	sz   int
	live map[uintptr]int

	// DoubleFrees counts Free calls on buffers that were not live.
	DoubleFrees int
}

// NewCheckedStorage wraps mem with allocation accounting.
func NewCheckedStorage(mem Storage) *CheckedStorage {
	if mem == nil {
		mem = GoStorage{}
	}
	return &CheckedStorage{mem: mem, live: make(map[uintptr]int)}
}

// CurrentAlloc returns the number of live bytes.
func (c *CheckedStorage) CurrentAlloc() int { return c.sz }

// LiveBuffers returns the number of outstanding allocations.
func (c *CheckedStorage) LiveBuffers() int { return len(c.live) }

func (c *CheckedStorage) Allocate(size int) []byte {
	out := c.mem.Allocate(size)
	c.sz += size
	if size > 0 {
		c.live[uintptr(unsafe.Pointer(&out[0]))] = size
	}
	return out
}

func (c *CheckedStorage) Free(b []byte) {
	defer c.mem.Free(b)
	if len(b) == 0 {
		return
	}
	ptr := uintptr(unsafe.Pointer(&b[0]))
	size, ok := c.live[ptr]
	if !ok {
		c.DoubleFrees++
		return
	}
	delete(c.live, ptr)
	c.sz -= size
}

// TestingT is the subset of *testing.T needed by AssertSize.
type TestingT interface {
	Errorf(format string, args ...interface{})
	Helper()
}

// AssertSize fails t when the number of live bytes differs from sz or when
// any buffer was freed twice.
func (c *CheckedStorage) AssertSize(t TestingT, sz int) {
	t.Helper()
	if c.sz != sz {
		t.Errorf("invalid live size exp=%d, got=%d (%d buffers outstanding)", sz, c.sz, len(c.live))
	}
	if c.DoubleFrees != 0 {
		t.Errorf("%d double-free(s) detected", c.DoubleFrees)
	}
}

var _ Storage = (*CheckedStorage)(nil)
