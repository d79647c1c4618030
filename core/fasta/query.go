// core/fasta/query.go
package fasta

import (
	"bytes"
	"fmt"
	"strings"

	"ngsio-core/interval"
	"ngsio-core/nucleotide"
)

// Span names a half-open range [start, stop) on one chromosome.
// interval.Interval satisfies it, as do Range and Pos.
type Span interface {
	Bounds() (start, stop int)
	Reverse() bool
}

// Range is a bare coordinate range with an optional orientation.
type Range struct {
	Start, Stop int
	Orientation interval.Orientation
}

func (r Range) Bounds() (int, int) { return r.Start, r.Stop }
func (r Range) Reverse() bool      { return r.Orientation == interval.Reverse }

// Pos is a single base, the range [Pos, Pos+1).
type Pos int

func (p Pos) Bounds() (int, int) { return int(p), int(p) + 1 }
func (p Pos) Reverse() bool      { return false }

// Seqs holds batch results in request order.
type Seqs []string

// Single returns the only sequence of a one-element batch.
func (q Seqs) Single() (string, bool) {
	if len(q) != 1 {
		return "", false
	}
	return q[0], true
}

// Join concatenates the batch.
func (q Seqs) Join() string { return strings.Join(q, "") }

// Slice returns the forward-strand bases of chrom in [start, stop).
func (s *Store) Slice(chrom string, start, stop int) (string, error) {
	return s.span(chrom, start, stop, false)
}

// Base returns the single base at pos.
func (s *Store) Base(chrom string, pos int) (string, error) {
	return s.span(chrom, pos, pos+1, false)
}

// Chromosome returns the whole sequence of chrom.
func (s *Store) Chromosome(chrom string) (string, error) {
	x, err := s.Index(chrom)
	if err != nil {
		return "", err
	}
	if x.Len() == 0 {
		return "", nil
	}
	return s.span(chrom, 0, x.Len(), false)
}

// Fetch returns the bases under iv, reverse complemented when iv is on the
// minus strand.
func (s *Store) Fetch(iv interval.Interval) (string, error) {
	if iv.IsZero() {
		return "", fmt.Errorf("%w: interval has no orientation", interval.ErrInvalidArgument)
	}
	return s.span(iv.Chromosome(), iv.Start(), iv.Stop(), iv.Reverse())
}

// Batch resolves spans on chrom in order. The first failing span aborts the
// batch. A span that carries its own chromosome must name chrom.
func (s *Store) Batch(chrom string, spans ...Span) (Seqs, error) {
	out := make(Seqs, 0, len(spans))
	for i, sp := range spans {
		if c, ok := sp.(interface{ Chromosome() string }); ok && c.Chromosome() != chrom {
			return nil, fmt.Errorf("%w: span %d is on %q, batch is on %q", interval.ErrInvalidArgument, i, c.Chromosome(), chrom)
		}
		start, stop := sp.Bounds()
		seq, err := s.span(chrom, start, stop, sp.Reverse())
		if err != nil {
			return nil, err
		}
		out = append(out, seq)
	}
	return out, nil
}

// Extend widens iv like interval.Extend but fills the new bases from the
// store instead of placeholders. The bases already in iv are kept.
func (s *Store) Extend(iv interval.Interval, left, right int) (interval.Interval, error) {
	start, stop, err := iv.ExtendBounds(left, right)
	if err != nil {
		return interval.Interval{}, err
	}
	x, err := s.Index(iv.Chromosome())
	if err != nil {
		return interval.Interval{}, err
	}
	if stop > x.Len() {
		return interval.Interval{}, fmt.Errorf("%w: [%d,%d) on %s (length %d)", ErrOutOfRange, start, stop, iv.Chromosome(), x.Len())
	}
	ext, err := iv.Extend(left, right)
	if err != nil {
		return interval.Interval{}, err
	}
	var lo, hi string
	if left > 0 {
		if lo, err = s.span(iv.Chromosome(), ext.Start(), iv.Start(), false); err != nil {
			return interval.Interval{}, err
		}
	}
	if right > 0 {
		if hi, err = s.span(iv.Chromosome(), iv.Stop(), ext.Stop(), false); err != nil {
			return interval.Interval{}, err
		}
	}
	return ext.WithRaw(lo + iv.Raw() + hi)
}

func (s *Store) span(chrom string, start, stop int, reverse bool) (string, error) {
	x, err := s.Index(chrom)
	if err != nil {
		return "", err
	}
	switch {
	case start < 0 || stop <= start:
		return "", fmt.Errorf("%w: range [%d,%d) on %s", interval.ErrInvalidArgument, start, stop, chrom)
	case stop > x.Len():
		return "", fmt.Errorf("%w: [%d,%d) on %s (length %d)", ErrOutOfRange, start, stop, chrom, x.Len())
	}

	buf, err := s.read(x, start, stop)
	if err != nil {
		return "", err
	}
	buf = bytes.ToUpper(buf)
	if !reverse {
		return string(buf), nil
	}
	return nucleotide.ReverseComplement(string(buf))
}

// read stitches [start, stop) together from consecutive lines.
func (s *Store) read(x *LineIndex, start, stop int) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	buf := make([]byte, stop-start)
	pos, got := start, 0
	for i := x.locate(start); got < len(buf); i++ {
		ln := x.Lines[i]
		within := pos - x.starts[i]
		n := min(ln.Len-within, len(buf)-got)
		if m, err := s.r.ReadAt(buf[got:got+n], ln.Offset+int64(within)); m < n {
			return nil, fmt.Errorf("%w: [%d,%d) on %s: short read: %w", ErrOutOfRange, start, stop, x.Name, err)
		}
		got += n
		pos += n
	}
	return buf, nil
}
