package alloc

// Storage is the raw buffer primitive behind the slot table: obtain N bytes,
// release them. The table treats it as an opaque external service so tests
// can interpose accounting.
type Storage interface {
	Allocate(size int) []byte
	Free(b []byte)
}

// GoStorage is the default Storage, backed by the Go runtime. Free is a
// no-op; the garbage collector reclaims released buffers once the table
// drops its reference.
type GoStorage struct{}

func (GoStorage) Allocate(size int) []byte { return make([]byte, size) }

func (GoStorage) Free(b []byte) {}

var _ Storage = GoStorage{}
