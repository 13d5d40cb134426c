// File: csvio/destination.go
package csvio

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Destination is a write target that can carry a pre-existing encoding.
// The hint feeds Resolve at writer construction: a destination whose
// encoding is already fixed (an existing file, a downstream consumer with a
// contract) reports it here; one with no such constraint reports
// EncodingUnspecified.
type Destination interface {
	Write(p []byte) (int, error)
	EncodingHint() Encoding
}

// BufferDestination collects output in memory. It carries no encoding hint.
type BufferDestination struct {
	buf bytes.Buffer
}

// NewBuffer creates an empty in-memory destination.
func NewBuffer() *BufferDestination {
	return &BufferDestination{}
}

func (b *BufferDestination) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}

// EncodingHint always returns EncodingUnspecified for a buffer.
func (b *BufferDestination) EncodingHint() Encoding {
	return EncodingUnspecified
}

// Bytes returns the accumulated output.
func (b *BufferDestination) Bytes() []byte { return b.buf.Bytes() }

// String returns the accumulated output as a string.
func (b *BufferDestination) String() string { return b.buf.String() }

// Len returns the number of bytes accumulated.
func (b *BufferDestination) Len() int { return b.buf.Len() }

// FileDestination writes to a file with a declared encoding. Output goes to
// a temporary file in the target directory and is renamed over the target on
// Close, so readers never observe a partially written file.
type FileDestination struct {
	path     string
	declared Encoding
	tmp      *os.File
	done     bool
}

// CreateFile opens a file destination for path. declared is the encoding the
// file is committed to, surfaced as the hint during resolution; pass
// EncodingUnspecified when the file has no fixed encoding.
func CreateFile(path string, declared Encoding) (*FileDestination, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file in '%s': %w", dir, err)
	}
	return &FileDestination{path: path, declared: declared, tmp: tmp}, nil
}

func (f *FileDestination) Write(p []byte) (int, error) {
	if f.done {
		return 0, fmt.Errorf("destination '%s' is closed", f.path)
	}
	return f.tmp.Write(p)
}

// EncodingHint returns the encoding declared at creation.
func (f *FileDestination) EncodingHint() Encoding {
	return f.declared
}

// Close syncs the temporary file and atomically renames it to the target
// path.
func (f *FileDestination) Close() error {
	if f.done {
		return nil
	}
	f.done = true

	tmpPath := f.tmp.Name()
	if err := f.tmp.Sync(); err != nil {
		f.tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp file '%s': %w", tmpPath, err)
	}
	if err := f.tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file '%s': %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions on temp file '%s': %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file '%s' to '%s': %w", tmpPath, f.path, err)
	}
	return nil
}

// Abort discards the temporary file without touching the target path.
func (f *FileDestination) Abort() error {
	if f.done {
		return nil
	}
	f.done = true

	tmpPath := f.tmp.Name()
	if err := f.tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file '%s': %w", tmpPath, err)
	}
	if err := os.Remove(tmpPath); err != nil {
		return fmt.Errorf("failed to remove temp file '%s': %w", tmpPath, err)
	}
	return nil
}

// Path returns the target path.
func (f *FileDestination) Path() string { return f.path }
