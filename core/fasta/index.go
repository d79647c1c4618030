// core/fasta/index.go
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sort"
)

const space = " \t\r\n\v\f"

// Line locates one wrapped sequence line in the file.
type Line struct {
	Offset int64 // file position of the first base
	Len    int   // bases on the line, terminator and surrounding blanks excluded
}

// LineIndex is the ordered list of lines holding one chromosome.
// starts[i] is the chromosome coordinate of the first base on Lines[i].
type LineIndex struct {
	Name   string
	Lines  []Line
	starts []int
	length int
}

// Len is the chromosome length in bases.
func (x *LineIndex) Len() int { return x.length }

// Start returns the chromosome coordinate of the first base on line i.
func (x *LineIndex) Start(i int) int { return x.starts[i] }

func (x *LineIndex) add(offset int64, n int) {
	x.Lines = append(x.Lines, Line{Offset: offset, Len: n})
	x.starts = append(x.starts, x.length)
	x.length += n
}

// locate returns the line holding coordinate pos. pos must be in [0, Len).
func (x *LineIndex) locate(pos int) int {
	return sort.Search(len(x.starts), func(i int) bool { return x.starts[i] > pos }) - 1
}

// scannedLine describes one physical line of input.
type scannedLine struct {
	header string // chromosome id, set for '>' lines
	isHdr  bool
	lead   int   // blank bytes before the first non-blank byte
	n      int   // bytes between the first and last non-blank byte, inclusive
	raw    int64 // bytes consumed, terminator included
}

// readLine consumes one line without holding it in memory, so single-line
// chromosomes longer than the reader's buffer are fine.
func readLine(br *bufio.Reader) (scannedLine, error) {
	var (
		sl   scannedLine
		pos  int
		lead = -1
		last = -1
	)
	for {
		chunk, err := br.ReadSlice('\n')
		if lead < 0 {
			if t := bytes.TrimLeft(chunk, space); len(t) > 0 {
				lead = pos + len(chunk) - len(t)
				if t[0] == '>' {
					sl.isHdr = true
					sl.header = parseHeaderID(t[1:])
				}
			}
		}
		if t := bytes.TrimRight(chunk, space); len(t) > 0 {
			last = pos + len(t) - 1
		}
		pos += len(chunk)
		if err == bufio.ErrBufferFull {
			continue
		}
		sl.raw = int64(pos)
		if lead >= 0 {
			sl.lead = lead
			sl.n = last - lead + 1
		}
		return sl, err
	}
}

// buildIndex performs the single forward scan over a FASTA stream.
func buildIndex(r io.Reader) (map[string]*LineIndex, []string, error) {
	br := bufio.NewReaderSize(r, 64*1024)

	var (
		index  = make(map[string]*LineIndex)
		order  []string
		cur    *LineIndex
		offset int64
		ln     int
	)
	for {
		sl, err := readLine(br)
		if sl.raw > 0 {
			ln++
			switch {
			case sl.isHdr:
				if sl.header == "" {
					return nil, nil, fmt.Errorf("%w: empty header at line %d", ErrMalformed, ln)
				}
				if _, dup := index[sl.header]; dup {
					return nil, nil, fmt.Errorf("%w: duplicate chromosome %q at line %d", ErrMalformed, sl.header, ln)
				}
				cur = &LineIndex{Name: sl.header}
				index[sl.header] = cur
				order = append(order, sl.header)
			case sl.n > 0:
				if cur == nil {
					return nil, nil, fmt.Errorf("%w: sequence before first header at line %d", ErrMalformed, ln)
				}
				cur.add(offset+int64(sl.lead), sl.n)
			}
			offset += sl.raw
		}
		if err == io.EOF {
			return index, order, nil
		}
		if err != nil {
			return nil, nil, fmt.Errorf("fasta scan: %w", err)
		}
	}
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, space); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
