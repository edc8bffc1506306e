package rt

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/qirkit/qir/alloc"
)

// Interop strings. Compiled programs hand string literals to the runtime as
// immutable byte buffers; they live in the same slot table as arrays and
// share the unified reference-count lifetime.

// StringCreate copies s into a fresh runtime buffer and returns its handle.
func (r *Runtime) StringCreate(s string) (alloc.Handle, error) {
	h, err := r.tab.Allocate(len(s))
	if err != nil {
		return 0, fmt.Errorf("rt: string create: %w", err)
	}
	data, err := r.tab.Bytes(h)
	if err != nil {
		return 0, fmt.Errorf("rt: string create: %w", err)
	}
	copy(data, s)
	return h, nil
}

// StringData returns the UTF-8 contents of the string behind h.
func (r *Runtime) StringData(h alloc.Handle) (string, error) {
	data, err := r.tab.Bytes(h)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// StringUTF16 returns the string encoded as UTF-16LE without a BOM, the form
// expected by Windows-hosted harness builds.
func (r *Runtime) StringUTF16(h alloc.Handle) ([]byte, error) {
	data, err := r.tab.Bytes(h)
	if err != nil {
		return nil, err
	}
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	out, err := enc.Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("rt: utf-16 encode: %w", err)
	}
	return out, nil
}

// StringReference registers another owner of the string.
func (r *Runtime) StringReference(h alloc.Handle) { r.tab.AddRef(h) }

// StringUnreference drops one owner of the string.
func (r *Runtime) StringUnreference(h alloc.Handle) { r.tab.RemoveRef(h) }
