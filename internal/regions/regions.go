// Package regions reads the regions a user asks for, either as command-line
// strings or as a YAML manifest.
//
// Coordinates are 0-based and half-open throughout. A Stop of 0 means "to the
// end of the chromosome".
package regions

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"

	"ngsio-core/interval"
)

// ErrInvalid is returned for region strings and manifest entries that cannot
// describe a range.
var ErrInvalid = errors.New("regions: invalid region")

// Region is one requested range.
type Region struct {
	Name       string `yaml:"name"`
	Chromosome string `yaml:"chromosome"`
	Start      int    `yaml:"start"`
	Stop       int    `yaml:"stop"`
	Strand     string `yaml:"strand"`
}

// Manifest is the top level of a regions file:
//
//	regions:
//	  - name: GEN001A
//	    chromosome: chrI
//	    start: 9
//	    stop: 15
//	    strand: "+"
type Manifest struct {
	Regions []Region `yaml:"regions"`
}

// Orientation parses Strand.
func (r Region) Orientation() (interval.Orientation, error) {
	o, err := interval.ParseOrientation(r.Strand)
	if err != nil {
		return interval.Unknown, fmt.Errorf("%w: %s: strand %q", ErrInvalid, r.Label(), r.Strand)
	}
	return o, nil
}

// Whole reports whether the region runs to the end of its chromosome.
func (r Region) Whole() bool { return r.Stop == 0 }

// Bounds resolves the range against a chromosome of the given length.
func (r Region) Bounds(length int) (start, stop int) {
	if r.Whole() {
		return r.Start, length
	}
	return r.Start, r.Stop
}

// Label is Name, or the region formatted as a region string.
func (r Region) Label() string {
	if r.Name != "" {
		return r.Name
	}
	s := r.Chromosome
	if r.Start != 0 || r.Stop != 0 {
		s += ":" + strconv.Itoa(r.Start) + "-"
		if r.Stop != 0 {
			s += strconv.Itoa(r.Stop)
		}
	}
	if r.Strand == "-" {
		s += ":-"
	}
	return s
}

// Validate checks the fields that do not depend on the sequence store.
func (r Region) Validate() error {
	switch {
	case r.Chromosome == "":
		return fmt.Errorf("%w: %s: missing chromosome", ErrInvalid, r.Label())
	case r.Start < 0:
		return fmt.Errorf("%w: %s: start %d < 0", ErrInvalid, r.Label(), r.Start)
	case r.Stop < 0, r.Stop != 0 && r.Stop <= r.Start:
		return fmt.Errorf("%w: %s: stop %d", ErrInvalid, r.Label(), r.Stop)
	}
	_, err := r.Orientation()
	return err
}

// Parse reads chrom, chrom:start-stop, chrom:start- or any of those with a
// trailing :+ or :-. Thousands separators in numbers are accepted. A ':'
// not followed by a range is part of the chromosome name.
func Parse(s string) (Region, error) {
	orig := s
	s = strings.TrimSpace(s)
	r := Region{Name: orig}

	if i := strings.LastIndexByte(s, ':'); i >= 0 && (s[i+1:] == "+" || s[i+1:] == "-") {
		r.Strand = s[i+1:]
		s = s[:i]
	}
	// Chromosome names may contain ':' (HLA-A*01:01), so the span is the
	// segment after the last ':' and only when it holds a '-'.
	chrom, span, hasSpan := s, "", false
	if i := strings.LastIndexByte(s, ':'); i >= 0 && strings.Contains(s[i+1:], "-") {
		chrom, span, hasSpan = s[:i], s[i+1:], true
	}
	r.Chromosome = chrom
	if hasSpan {
		a, b, _ := strings.Cut(span, "-")
		var err error
		if r.Start, err = atoi(a); err != nil {
			return Region{}, fmt.Errorf("%w: %q: start: %v", ErrInvalid, orig, err)
		}
		if b != "" {
			if r.Stop, err = atoi(b); err != nil {
				return Region{}, fmt.Errorf("%w: %q: stop: %v", ErrInvalid, orig, err)
			}
			if r.Stop <= r.Start {
				return Region{}, fmt.Errorf("%w: %q: stop <= start", ErrInvalid, orig)
			}
		}
	}
	if err := r.Validate(); err != nil {
		return Region{}, err
	}
	return r, nil
}

func atoi(s string) (int, error) {
	return strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
}

// Load reads and validates a YAML manifest. Unknown keys are rejected so
// typos do not silently fall back to defaults.
func Load(path string) ([]Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.UnmarshalStrict(data, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for i, r := range m.Regions {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("%s: region %d: %w", path, i+1, err)
		}
	}
	return m.Regions, nil
}
