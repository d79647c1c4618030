// Package intersect reads tables pairing query intervals with the annotated
// features they overlap, as written by bedtools intersect -wa -wb over a BED6
// query and a GFF feature file and cut down to nine columns:
//
//	chrom  start  end  qname  strand  type  fstart  fstop  fid
//
// start/end are BED coordinates (0-based, half-open). fstart/fstop come from
// the GFF side (1-based, closed) and are converted on parse.
package intersect

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"ngsio-core/interval"
)

// ErrMalformed is returned for lines that are not valid records.
var ErrMalformed = errors.New("intersect: malformed record")

// Record is one row of the table.
type Record struct {
	Chrom      string
	Start, End int
	QName      string
	Strand     interval.Orientation
	Type       string
	FStart     int // 0-based, inclusive
	FStop      int // 0-based, exclusive
	FID        string
}

// ParseLine parses one tab-separated row.
func ParseLine(line string) (Record, error) {
	c := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	if len(c) != 9 {
		return Record{}, fmt.Errorf("%w: %d columns, want 9", ErrMalformed, len(c))
	}
	var n [4]int
	for i, col := range []int{1, 2, 6, 7} {
		v, err := strconv.Atoi(c[col])
		if err != nil {
			return Record{}, fmt.Errorf("%w: column %d: %v", ErrMalformed, col+1, err)
		}
		n[i] = v
	}
	o, err := interval.ParseOrientation(c[4])
	if err != nil {
		if c[4] != "." {
			return Record{}, fmt.Errorf("%w: strand %q", ErrMalformed, c[4])
		}
		o = interval.Forward
	}
	r := Record{
		Chrom:  c[0],
		Start:  n[0],
		End:    n[1],
		QName:  c[3],
		Strand: o,
		Type:   c[5],
		FStart: n[2] - 1,
		FStop:  n[3],
		FID:    c[8],
	}
	if r.Start < 0 || r.End <= r.Start {
		return Record{}, fmt.Errorf("%w: query range %d-%d", ErrMalformed, r.Start, r.End)
	}
	if r.FStart < 0 || r.FStop <= r.FStart {
		return Record{}, fmt.Errorf("%w: feature range %d-%d", ErrMalformed, n[2], n[3])
	}
	return r, nil
}

// Interval covers the query side of the row with placeholder bases.
func (r Record) Interval() (interval.Interval, error) {
	return interval.NewPlaceholder(r.Chrom, r.Start, r.End, r.Strand)
}

// FeatureInterval covers the feature side of the row, on the query strand.
func (r Record) FeatureInterval() (interval.Interval, error) {
	return interval.NewPlaceholder(r.Chrom, r.FStart, r.FStop, r.Strand)
}

// Overlap is the number of bases the query and the feature share.
func (r Record) Overlap() int {
	return max(0, min(r.End, r.FStop)-max(r.Start, r.FStart))
}

// Scan passes every row of r to emit. Blank lines and '#' comments are
// skipped.
func Scan(r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if strings.TrimSpace(line) == "" || line[0] == '#' {
			continue
		}
		rec, err := ParseLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", ln, err)
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
	return sc.Err()
}

// ScanFile is Scan over the file at path.
func ScanFile(path string, emit func(Record) error) error {
	fh, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = fh.Close() }()
	if err := Scan(fh, emit); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
