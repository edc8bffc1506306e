//go:build !unix

// Package mmfile provides platform-specific helpers for sharing a small
// fixed-size region with an external harness through a memory-mapped file.
package mmfile

import (
	"fmt"
	"os"
)

// Region is a writable fixed-size file-backed region. Without mmap support
// it is an in-memory buffer written back to the file on Sync.
type Region struct {
	f    *os.File
	data []byte
}

// Create opens (or creates) the file at path, sizes it to size bytes, and
// buffers it in memory.
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
	return &Region{f: f, data: make([]byte, size)}, nil
}

// Bytes returns the buffered region. Call Sync to persist writes.
func (r *Region) Bytes() []byte { return r.data }

// Sync writes the buffered region back to the file.
func (r *Region) Sync() error {
	if _, err := r.f.WriteAt(r.data, 0); err != nil {
		return err
	}
	return r.f.Sync()
}

// Close syncs and closes the backing file.
func (r *Region) Close() error {
	if r.f == nil {
		return nil
	}
	err := r.Sync()
	if cerr := r.f.Close(); err == nil {
		err = cerr
	}
	r.f = nil
	return err
}
