// Package formats maps annotation files to named genomic intervals,
// dispatching on the file extension.
package formats

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"ngsio-core/interval"
)

// ErrUnsupported is returned for extensions and kinds without a reader.
var ErrUnsupported = errors.New("formats: unsupported format")

// Kind names one annotation format.
type Kind string

const (
	SAM       Kind = "sam"
	FASTA     Kind = "fasta"
	GFF       Kind = "gff"
	Intersect Kind = "intersect"
)

// Named is an interval with a display name (read name, feature ID, ...).
type Named struct {
	Name     string
	Interval interval.Interval
}

// Reader streams the intervals of the file at path. skip receives a short
// reason for every record that carries no usable interval.
type Reader func(path string, emit func(Named) error, skip func(reason string)) error

var (
	extensions = map[string]Kind{}
	readers    = map[Kind]Reader{}
)

// Register binds a reader to kind and to each extension (without the dot).
func Register(kind Kind, r Reader, exts ...string) {
	readers[kind] = r
	for _, e := range exts {
		extensions[strings.ToLower(e)] = kind
	}
}

// Names lists the registered kinds, sorted.
func Names() []string {
	out := make([]string, 0, len(readers))
	for k := range readers {
		out = append(out, string(k))
	}
	sort.Strings(out)
	return out
}

// ParseKind accepts a kind name or any registered extension.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimPrefix(s, "."))
	if _, ok := readers[Kind(s)]; ok {
		return Kind(s), nil
	}
	if k, ok := extensions[s]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
}

// Detect picks the kind from the extension of path.
func Detect(path string) (Kind, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnsupported, path)
	}
	k, ok := extensions[strings.ToLower(ext)]
	if !ok {
		return "", fmt.Errorf("%w: extension %q of %s", ErrUnsupported, ext, path)
	}
	return k, nil
}

// Intervals streams the intervals of path. An empty kind is detected from
// the extension.
func Intervals(path string, kind Kind, emit func(Named) error, skip func(reason string)) error {
	if kind == "" {
		var err error
		if kind, err = Detect(path); err != nil {
			return err
		}
	}
	r, ok := readers[kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupported, kind)
	}
	if skip == nil {
		skip = func(string) {}
	}
	return r(path, emit, skip)
}
