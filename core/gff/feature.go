// Package gff reads GFF3 feature annotations.
//
// Coordinates in the file are 1-based and closed; a Feature holds them
// 0-based and half-open, the same convention as the interval package.
package gff

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"ngsio-core/interval"
)

// ErrMalformed is returned for lines that are not valid feature records.
var ErrMalformed = errors.New("gff: malformed record")

// Attribute is one key=value pair from column nine, in file order.
type Attribute struct {
	Key, Value string
}

// Feature is one annotation line.
type Feature struct {
	SeqID      string
	Source     string
	Type       string
	Start      int     // 0-based, inclusive
	End        int     // 0-based, exclusive
	Score      float64 // NaN when "."
	Strand     byte    // '+', '-', '.' or '?'
	Phase      int     // -1 when "."
	Attributes []Attribute
}

// Attr looks up an attribute value. Keys compare case-insensitively.
func (f Feature) Attr(key string) (string, bool) {
	for _, a := range f.Attributes {
		if strings.EqualFold(a.Key, key) {
			return a.Value, true
		}
	}
	return "", false
}

// ID is the value of the ID attribute, or "".
func (f Feature) ID() string {
	v, _ := f.Attr("ID")
	return v
}

// Orientation maps the strand column; anything but '-' reads forward.
func (f Feature) Orientation() interval.Orientation {
	if f.Strand == '-' {
		return interval.Reverse
	}
	return interval.Forward
}

// Interval covers the feature with placeholder bases. Resolve the bases
// through a sequence store.
func (f Feature) Interval() (interval.Interval, error) {
	return interval.NewPlaceholder(f.SeqID, f.Start, f.End, f.Orientation())
}

/* ------------------------------ parsing ------------------------------ */

// ParseLine parses one nine-column feature line.
func ParseLine(line string) (Feature, error) {
	c := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	if len(c) != 9 {
		return Feature{}, fmt.Errorf("%w: %d columns, want 9", ErrMalformed, len(c))
	}
	start, err := strconv.Atoi(c[3])
	if err != nil {
		return Feature{}, fmt.Errorf("%w: start: %v", ErrMalformed, err)
	}
	end, err := strconv.Atoi(c[4])
	if err != nil {
		return Feature{}, fmt.Errorf("%w: end: %v", ErrMalformed, err)
	}
	if start < 1 || end < start {
		return Feature{}, fmt.Errorf("%w: range %d-%d", ErrMalformed, start, end)
	}

	f := Feature{
		SeqID:  unescape(c[0]),
		Source: c[1],
		Type:   c[2],
		Start:  start - 1,
		End:    end,
		Score:  math.NaN(),
		Phase:  -1,
	}
	if c[5] != "." {
		if f.Score, err = strconv.ParseFloat(c[5], 64); err != nil {
			return Feature{}, fmt.Errorf("%w: score: %v", ErrMalformed, err)
		}
	}
	switch c[6] {
	case "+", "-", ".", "?":
		f.Strand = c[6][0]
	default:
		return Feature{}, fmt.Errorf("%w: strand %q", ErrMalformed, c[6])
	}
	switch c[7] {
	case ".":
	case "0", "1", "2":
		f.Phase = int(c[7][0] - '0')
	default:
		return Feature{}, fmt.Errorf("%w: phase %q", ErrMalformed, c[7])
	}
	f.Attributes = parseAttributes(c[8])
	return f, nil
}

func parseAttributes(s string) []Attribute {
	if s == "." {
		return nil
	}
	var out []Attribute
	for _, kv := range strings.Split(s, ";") {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		k, v, _ := strings.Cut(kv, "=")
		out = append(out, Attribute{Key: unescape(strings.TrimSpace(k)), Value: unescape(strings.TrimSpace(v))})
	}
	return out
}

// unescape decodes GFF3 percent escapes, keeping the input when it is not
// valid escaping.
func unescape(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	if u, err := url.PathUnescape(s); err == nil {
		return u
	}
	return s
}
