package sam

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"ngsio-core/interval"
)

// ErrStop may be returned by an emit callback to end a scan early without
// error.
var ErrStop = errors.New("sam: stop")

// Scan parses every record of r in order and passes it to emit. Header lines
// and blank lines are skipped. Errors carry the 1-based line number.
func Scan(r io.Reader, emit func(Read) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if strings.TrimSpace(line) == "" || line[0] == '@' {
			continue
		}
		rec, err := ParseLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", ln, err)
		}
		if err := emit(rec); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}
	}
	return sc.Err()
}

// ScanFile is Scan over the file at path.
func ScanFile(path string, emit func(Read) error) error {
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

// ScanAligned passes only placed reads to emit, together with their interval.
// skip, if non-nil, receives reads that have no placement.
func ScanAligned(r io.Reader, emit func(Read, interval.Interval) error, skip func(Read)) error {
	return Scan(r, func(rec Read) error {
		iv, err := rec.Interval()
		if errors.Is(err, ErrUnaligned) {
			if skip != nil {
				skip(rec)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", rec.QName, err)
		}
		return emit(rec, iv)
	})
}
