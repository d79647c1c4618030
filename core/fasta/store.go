// Package fasta answers random-access sequence queries against line-wrapped
// FASTA files.
//
// Open scans the file once and records, per chromosome, where every sequence
// line starts and how many bases it holds. Queries then read only the bytes
// they need with positioned reads, so the sequences themselves never have to
// fit in memory. Nothing is written back to disk; the index lives as long as
// the Store.
//
// A Store reads through io.ReaderAt and keeps no cursor of its own, so it may
// be queried from several goroutines at once.
package fasta

import (
	"fmt"
	"io"
	"sync"

	"ngsio-core/interval"
)

// Store is an indexed FASTA file.
type Store struct {
	path   string
	r      io.ReaderAt
	closer io.Closer

	mu     sync.RWMutex
	closed bool

	index map[string]*LineIndex
	order []string
}

// Path is the file the store was opened from ("" for OpenReader).
func (s *Store) Path() string { return s.path }

// Close releases the underlying file. Later queries fail with ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

// Chromosomes lists the indexed chromosome ids in file order.
func (s *Store) Chromosomes() []string {
	return append([]string(nil), s.order...)
}

// Contains reports whether chrom is indexed.
func (s *Store) Contains(chrom string) bool {
	_, ok := s.index[chrom]
	return ok
}

// ContainsInterval reports whether iv is aligned to an indexed chromosome.
func (s *Store) ContainsInterval(iv interval.Interval) bool {
	return !iv.IsZero() && s.Contains(iv.Chromosome())
}

// Index returns the line index of chrom.
func (s *Store) Index(chrom string) (*LineIndex, error) {
	x, ok := s.index[chrom]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChromosome, chrom)
	}
	return x, nil
}

// Len returns the length of chrom in bases.
func (s *Store) Len(chrom string) (int, error) {
	x, err := s.Index(chrom)
	if err != nil {
		return 0, err
	}
	return x.Len(), nil
}
