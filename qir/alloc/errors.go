package alloc

import "errors"

var (
	// ErrTableFull indicates that no free slot exists for a new allocation.
	// The table cannot grow; callers treat this as terminal.
	ErrTableFull = errors.New("alloc: slot table full")

	// ErrHandleNotFound indicates a lookup on a handle with no in-use slot.
	// This is a caller programming error, not a recoverable condition.
	ErrHandleNotFound = errors.New("alloc: handle not found")

	// ErrBadLength indicates an allocation request with a negative length.
	ErrBadLength = errors.New("alloc: negative length")
)
