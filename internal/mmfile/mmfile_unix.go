//go:build unix

// Package mmfile provides platform-specific helpers for sharing a small
// fixed-size region with an external harness through a memory-mapped file.
package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Region is a writable fixed-size file-backed region. On unix it is a shared
// memory mapping, so an external reader mapping the same file observes
// updates after each Sync.
type Region struct {
	f    *os.File
	data []byte
}

// Create opens (or creates) the file at path, sizes it to size bytes, and
// maps it read-write.
func Create(path string, size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmfile: invalid region size %d", size)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	if err := f.Truncate(int64(size)); err != nil {
		_ = f.Close()
		return nil, err
	}
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("mmfile: mmap failed: %w", err)
	}
	return &Region{f: f, data: data}, nil
}

// Bytes returns the mapped region. Writes land in the shared mapping.
func (r *Region) Bytes() []byte { return r.data }

// Sync flushes the mapped region to the backing file.
func (r *Region) Sync() error {
	return unix.Msync(r.data, unix.MS_SYNC)
}

// Close unmaps the region and closes the backing file.
func (r *Region) Close() error {
	var first error
	if r.data != nil {
		err := unix.Munmap(r.data)
		if err != nil && !errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			first = err
		}
		r.data = nil
	}
	if r.f != nil {
		if err := r.f.Close(); err != nil && first == nil {
			first = err
		}
		r.f = nil
	}
	return first
}
