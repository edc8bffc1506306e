package alloc

// Default table geometry. The defaults mirror the reference target runtime:
// 20 slots, one pooled size of 256 bytes served by a 2-entry rotation.
const (
	DefaultSlots    = 20
	DefaultPoolSize = 256
	DefaultPoolCap  = 2
)

// Option configures a Table at construction time.
type Option func(*tableOptions)

type tableOptions struct {
	slots    int
	poolSize int
	poolCap  int
	storage  Storage
}

func defaultTableOptions() *tableOptions {
	return &tableOptions{
		slots:    DefaultSlots,
		poolSize: DefaultPoolSize,
		poolCap:  DefaultPoolCap,
		storage:  GoStorage{},
	}
}

// WithSlots sets the fixed slot capacity of the table.
func WithSlots(n int) Option {
	return func(o *tableOptions) {
		if n > 0 {
			o.slots = n
		}
	}
}

// WithPool designates the pooled buffer length and the rotation capacity.
// A size of 0 disables the pooled path entirely.
func WithPool(size, capacity int) Option {
	return func(o *tableOptions) {
		if size >= 0 {
			o.poolSize = size
		}
		if capacity > 0 {
			o.poolCap = capacity
		}
	}
}

// WithStorage sets the raw storage primitive backing the table. Tests use
// this to substitute a CheckedStorage.
func WithStorage(s Storage) Option {
	return func(o *tableOptions) {
		if s != nil {
			o.storage = s
		}
	}
}
