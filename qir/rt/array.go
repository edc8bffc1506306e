package rt

import (
	"fmt"

	"github.com/joshuapare/qirkit/internal/buf"
	"github.com/joshuapare/qirkit/internal/format"
	"github.com/joshuapare/qirkit/qir/alloc"
)

// ArrayCreate1D allocates a one-dimensional array of count elements of
// elemSize bytes each. The product is checked for overflow before it reaches
// the allocator.
func (r *Runtime) ArrayCreate1D(elemSize int, count int64) (alloc.Handle, error) {
	total, ok := buf.MulOverflowSafe(elemSize, int(count))
	if !ok {
		return 0, fmt.Errorf("rt: array size overflow: %d * %d", elemSize, count)
	}
	h, err := r.tab.Allocate(total)
	if err != nil {
		return 0, fmt.Errorf("rt: array create: %w", err)
	}
	return h, nil
}

// ArrayGetElementPtr1D returns a handle offset to element index. This is
// pure pointer arithmetic over 4-byte elements with no bounds check: the
// compiled program upstream is trusted to stay in range, and the result is
// meant for element access, not for table lookups.
func (r *Runtime) ArrayGetElementPtr1D(h alloc.Handle, index int64) alloc.Handle {
	return h + alloc.Handle(index*format.ElementSize)
}

// ArrayCopy duplicates the array behind h into an independent buffer with a
// fresh reference count. Source and destination never share storage.
func (r *Runtime) ArrayCopy(h alloc.Handle) (alloc.Handle, error) {
	src, err := r.tab.Bytes(h)
	if err != nil {
		return 0, fmt.Errorf("rt: array copy: %w", err)
	}
	out, err := r.tab.Allocate(len(src))
	if err != nil {
		return 0, fmt.Errorf("rt: array copy: %w", err)
	}
	dst, err := r.tab.Bytes(out)
	if err != nil {
		return 0, fmt.Errorf("rt: array copy: %w", err)
	}
	copy(dst, src)
	return out, nil
}

// ArrayReference registers another owner of the array. Unknown handles and
// pooled buffers are ignored, matching the target ABI.
func (r *Runtime) ArrayReference(h alloc.Handle) { r.tab.AddRef(h) }

// ArrayUnreference drops one owner of the array, releasing the storage when
// the count reaches zero.
func (r *Runtime) ArrayUnreference(h alloc.Handle) { r.tab.RemoveRef(h) }

// Int32At reads the little-endian element at index through the array's base
// handle. Unknown handles fail fast like any lookup.
func (r *Runtime) Int32At(h alloc.Handle, index int) (int32, error) {
	data, err := r.tab.Bytes(h)
	if err != nil {
		return 0, err
	}
	off := index * format.ElementSize
	if !buf.Has(data, off, format.ElementSize) {
		return 0, fmt.Errorf("rt: element %d out of range for %d-byte array", index, len(data))
	}
	return format.ReadI32(data, off), nil
}

// SetInt32At writes the little-endian element at index through the array's
// base handle.
func (r *Runtime) SetInt32At(h alloc.Handle, index int, v int32) error {
	data, err := r.tab.Bytes(h)
	if err != nil {
		return err
	}
	off := index * format.ElementSize
	if !buf.Has(data, off, format.ElementSize) {
		return fmt.Errorf("rt: element %d out of range for %d-byte array", index, len(data))
	}
	format.PutI32(data, off, v)
	return nil
}

// TupleCreate allocates a tuple buffer of size bytes through the same table
// and lifetime rules as arrays.
func (r *Runtime) TupleCreate(size int64) (alloc.Handle, error) {
	h, err := r.tab.Allocate(int(size))
	if err != nil {
		return 0, fmt.Errorf("rt: tuple create: %w", err)
	}
	return h, nil
}
