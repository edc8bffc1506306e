package result

import (
	"fmt"
	"os"

	"github.com/joshuapare/qirkit/internal/mmfile"
)

// File is a vector shared with an external harness through a memory-mapped
// file. The region is exactly Size bytes; every Write updates it in place and
// flushes, so a reader mapping the same file observes each frame.
type File struct {
	region *mmfile.Region
}

// CreateFile opens (or creates) path as a shared vector region.
func CreateFile(path string) (*File, error) {
	region, err := mmfile.Create(path, Size)
	if err != nil {
		return nil, fmt.Errorf("result: %w", err)
	}
	return &File{region: region}, nil
}

// Write encodes v into the shared region and flushes it.
func (f *File) Write(v *Vector) error {
	v.Encode(f.region.Bytes())
	return f.region.Sync()
}

// Close releases the mapping and the underlying file.
func (f *File) Close() error { return f.region.Close() }

// ReadVectorFile decodes a vector from the file at path.
func ReadVectorFile(path string) (*Vector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	v := new(Vector)
	if err := v.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return v, nil
}
