package store

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// FileGrid couples a Grid with an on-disk snapshot. The grid is the live
// store; Commit flushes it, Load restores it. A missing or unreadable
// snapshot leaves the grid zeroed, which the land layer treats as an empty
// save slot rather than an error.
type FileGrid struct {
	*Grid
	path string
}

// NewFileGrid creates a zeroed grid with the reference geometry bound to the
// given snapshot path. An empty path disables persistence.
func NewFileGrid(path string) *FileGrid {
	return &FileGrid{Grid: Default(), path: path}
}

// Load restores the grid from the snapshot file. A corrupt snapshot resets
// the grid to zeros; only unexpected read failures surface as errors.
func (f *FileGrid) Load() error {
	if f.path == "" {
		return nil
	}
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	dec, err := zstd.NewReader(bytes.NewReader(raw))
	if err != nil {
		f.Reset()
		return nil
	}
	defer dec.Close()
	buf, err := io.ReadAll(dec)
	if err != nil {
		f.Reset()
		return nil
	}
	f.Reset()
	copy(f.data, buf)
	return nil
}

// Commit writes the whole grid to the snapshot file.
func (f *FileGrid) Commit() error {
	if f.path == "" {
		return nil
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	fh, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(fh, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		fh.Close()
		return err
	}
	if _, err := enc.Write(f.data); err != nil {
		enc.Close()
		fh.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}
