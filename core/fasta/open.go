package fasta

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Open indexes the FASTA file at path and keeps it open for queries.
// A missing file fails with ErrNotFound before any scanning.
func Open(path string) (*Store, error) {
	fh, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, err
	}
	s, err := newStore(fh, fh)
	if err != nil {
		_ = fh.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.path = path
	s.closer = fh
	return s, nil
}

// OpenReader indexes the first size bytes of r. The caller keeps ownership of
// r; Close on the returned Store does not close it.
func OpenReader(r io.ReaderAt, size int64) (*Store, error) {
	return newStore(r, io.NewSectionReader(r, 0, size))
}

func newStore(r io.ReaderAt, scan io.Reader) (*Store, error) {
	index, order, err := buildIndex(scan)
	if err != nil {
		return nil, err
	}
	return &Store{r: r, index: index, order: order}, nil
}
