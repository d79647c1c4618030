package fasta

import "errors"

var (
	// ErrNotFound is returned by Open when the file does not exist.
	ErrNotFound = errors.New("fasta: file not found")

	// ErrUnknownChromosome is returned for queries naming an unindexed chromosome.
	ErrUnknownChromosome = errors.New("fasta: unknown chromosome")

	// ErrOutOfRange is returned when a range extends past the end of its chromosome.
	ErrOutOfRange = errors.New("fasta: out of range")

	// ErrMalformed is returned when the file cannot be indexed.
	ErrMalformed = errors.New("fasta: malformed input")

	// ErrClosed is returned for queries on a closed Store.
	ErrClosed = errors.New("fasta: store is closed")
)
