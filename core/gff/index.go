package gff

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/biogo/store/interval"
)

// Scan passes every feature of r to emit in file order. Comments and
// directives are skipped; a ##FASTA directive ends the feature section.
func Scan(r io.Reader, emit func(Feature) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if line[0] == '#' {
			if strings.HasPrefix(line, "##FASTA") {
				break
			}
			continue
		}
		if line[0] == '>' {
			break
		}
		f, err := ParseLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", ln, err)
		}
		if err := emit(f); err != nil {
			return err
		}
	}
	return sc.Err()
}

// Index holds the features of one file, addressable by ID and by position.
type Index struct {
	features []Feature
	byID     map[string][]int
	trees    map[string]*interval.IntTree
	order    []string
}

// node adapts a feature to the biogo interval tree.
type node struct {
	idx        int
	start, end int
}

func (n node) Overlap(b interval.IntRange) bool { return n.end > b.Start && n.start < b.End }
func (n node) ID() uintptr                      { return uintptr(n.idx) }
func (n node) Range() interval.IntRange         { return interval.IntRange{Start: n.start, End: n.end} }

type query struct{ start, end int }

func (q query) Overlap(b interval.IntRange) bool { return q.end > b.Start && q.start < b.End }

// Load reads and indexes the features in the file at path.
func Load(path string) (*Index, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	x, err := Read(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return x, nil
}

// Read indexes the features in r.
func Read(r io.Reader) (*Index, error) {
	x := &Index{
		byID:  make(map[string][]int),
		trees: make(map[string]*interval.IntTree),
	}
	err := Scan(r, func(f Feature) error {
		i := len(x.features)
		x.features = append(x.features, f)
		if id := f.ID(); id != "" {
			x.byID[id] = append(x.byID[id], i)
		}
		t, ok := x.trees[f.SeqID]
		if !ok {
			t = &interval.IntTree{}
			x.trees[f.SeqID] = t
			x.order = append(x.order, f.SeqID)
		}
		return t.Insert(node{idx: i, start: f.Start, end: f.End}, true)
	})
	if err != nil {
		return nil, err
	}
	for _, t := range x.trees {
		t.AdjustRanges()
	}
	return x, nil
}

// Len is the number of features.
func (x *Index) Len() int { return len(x.features) }

// Features returns all features in file order.
func (x *Index) Features() []Feature { return append([]Feature(nil), x.features...) }

// SeqIDs lists the sequence ids that carry features, in first-seen order.
func (x *Index) SeqIDs() []string { return append([]string(nil), x.order...) }

// Contains reports whether a feature with the given ID exists.
func (x *Index) Contains(id string) bool { return len(x.byID[id]) > 0 }

// Get returns the first feature with the given ID. Multi-line features such
// as split CDS records share one ID; All returns every line.
func (x *Index) Get(id string) (Feature, bool) {
	ix := x.byID[id]
	if len(ix) == 0 {
		return Feature{}, false
	}
	return x.features[ix[0]], true
}

// All returns every feature line that carries the given ID, in file order.
func (x *Index) All(id string) []Feature {
	var out []Feature
	for _, i := range x.byID[id] {
		out = append(out, x.features[i])
	}
	return out
}

// Overlapping returns the features on seqID that share at least one base with
// [start, stop), ordered by start and then file position.
func (x *Index) Overlapping(seqID string, start, stop int) []Feature {
	t, ok := x.trees[seqID]
	if !ok || stop <= start {
		return nil
	}
	hits := t.Get(query{start: start, end: stop})
	ix := make([]int, 0, len(hits))
	for _, h := range hits {
		ix = append(ix, h.(node).idx)
	}
	sort.Slice(ix, func(a, b int) bool {
		fa, fb := x.features[ix[a]], x.features[ix[b]]
		if fa.Start != fb.Start {
			return fa.Start < fb.Start
		}
		return ix[a] < ix[b]
	})
	out := make([]Feature, len(ix))
	for i, j := range ix {
		out[i] = x.features[j]
	}
	return out
}
