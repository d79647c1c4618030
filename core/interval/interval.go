// Package interval holds the genomic interval shared by every record format:
// a half-open range [Start, Stop) on a named chromosome with an orientation and
// the forward-strand bases that cover it.
//
// Record parsers translate their own coordinate conventions into this one.
package interval

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"ngsio-core/nucleotide"
)

var (
	// ErrInvalidArgument is returned for negative padding or trim amounts,
	// trims that empty the range, and malformed constructor input.
	ErrInvalidArgument = errors.New("interval: invalid argument")

	// ErrBoundary is returned when an extension would move Start below zero.
	ErrBoundary = errors.New("interval: boundary")
)

// Placeholder is the symbol used for bases an interval does not know.
const Placeholder = 'N'

// Orientation is the strand an interval reads from.
type Orientation int8

const (
	Unknown Orientation = iota // zero value; only the zero Interval carries it
	Forward
	Reverse
)

func (o Orientation) String() string {
	switch o {
	case Forward:
		return "+"
	case Reverse:
		return "-"
	default:
		return "."
	}
}

// ParseOrientation accepts "+", "-", "" (forward), "forward" and "reverse".
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "", "+", "forward", "fwd":
		return Forward, nil
	case "-", "reverse", "rev":
		return Reverse, nil
	}
	return Unknown, fmt.Errorf("%w: orientation %q", ErrInvalidArgument, s)
}

// Interval is an immutable value. Methods that change the range return a new
// Interval and leave the receiver untouched.
type Interval struct {
	chrom  string
	start  int
	stop   int
	orient Orientation
	raw    string
}

// New validates and builds an interval. raw is the forward-strand sequence
// and must be exactly stop-start symbols long; it is stored upper-cased.
func New(chrom string, start, stop int, o Orientation, raw string) (Interval, error) {
	switch {
	case chrom == "":
		return Interval{}, fmt.Errorf("%w: empty chromosome", ErrInvalidArgument)
	case start < 0:
		return Interval{}, fmt.Errorf("%w: start %d < 0", ErrInvalidArgument, start)
	case stop <= start:
		return Interval{}, fmt.Errorf("%w: stop %d <= start %d", ErrInvalidArgument, stop, start)
	case o != Forward && o != Reverse:
		return Interval{}, fmt.Errorf("%w: orientation %v", ErrInvalidArgument, o)
	case len(raw) != stop-start:
		return Interval{}, fmt.Errorf("%w: sequence length %d != %d", ErrInvalidArgument, len(raw), stop-start)
	}
	raw = strings.ToUpper(raw)
	if err := nucleotide.Validate(raw); err != nil {
		return Interval{}, err
	}
	return Interval{chrom: chrom, start: start, stop: stop, orient: o, raw: raw}, nil
}

// NewPlaceholder builds an interval whose bases are all unknown.
func NewPlaceholder(chrom string, start, stop int, o Orientation) (Interval, error) {
	n := stop - start
	if n < 0 {
		n = 0
	}
	return New(chrom, start, stop, o, strings.Repeat(string(Placeholder), n))
}

func (iv Interval) Chromosome() string       { return iv.chrom }
func (iv Interval) Start() int               { return iv.start }
func (iv Interval) Stop() int                { return iv.stop }
func (iv Interval) Len() int                 { return iv.stop - iv.start }
func (iv Interval) Orientation() Orientation { return iv.orient }
func (iv Interval) Raw() string              { return iv.raw }

// Bounds returns the half-open coordinate range.
func (iv Interval) Bounds() (start, stop int) { return iv.start, iv.stop }

// Reverse reports whether the interval reads from the minus strand.
func (iv Interval) Reverse() bool { return iv.orient == Reverse }

// IsZero reports whether iv is the zero value, i.e. it was never aligned.
func (iv Interval) IsZero() bool { return iv.orient == Unknown }

// Sequence is the orientation-corrected sequence: Raw for forward intervals,
// its reverse complement otherwise.
func (iv Interval) Sequence() string {
	if iv.orient != Reverse {
		return iv.raw
	}
	// raw was validated in New.
	return nucleotide.MustReverseComplement(iv.raw)
}

// Extend widens the range by left bases below Start and right bases above
// Stop. Left and right follow ascending coordinates regardless of
// orientation. The added bases are Placeholder symbols.
func (iv Interval) Extend(left, right int) (Interval, error) {
	start, stop, err := iv.ExtendBounds(left, right)
	if err != nil {
		return Interval{}, err
	}
	var b strings.Builder
	b.Grow(stop - start)
	for i := 0; i < left; i++ {
		b.WriteByte(Placeholder)
	}
	b.WriteString(iv.raw)
	for i := 0; i < right; i++ {
		b.WriteByte(Placeholder)
	}
	return Interval{chrom: iv.chrom, start: start, stop: stop, orient: iv.orient, raw: b.String()}, nil
}

// ExtendBounds returns the range Extend would produce without building its
// sequence, so callers can check it against a chromosome length first.
func (iv Interval) ExtendBounds(left, right int) (start, stop int, err error) {
	switch {
	case iv.IsZero():
		return 0, 0, fmt.Errorf("%w: extend of the zero interval", ErrInvalidArgument)
	case left < 0 || right < 0:
		return 0, 0, fmt.Errorf("%w: extend(%d, %d)", ErrInvalidArgument, left, right)
	case right > math.MaxInt-iv.stop:
		return 0, 0, fmt.Errorf("%w: extend(%d, %d) of %v overflows", ErrInvalidArgument, left, right, iv)
	}
	// start >= 0, so start-left cannot overflow.
	start = iv.start - left
	if start < 0 {
		return 0, 0, fmt.Errorf("%w: extend(%d, %d) of %v starts at %d", ErrBoundary, left, right, iv, start)
	}
	return start, iv.stop + right, nil
}

// Shrink removes left bases from the low end and right bases from the high
// end. The result must keep at least one base.
func (iv Interval) Shrink(left, right int) (Interval, error) {
	if iv.IsZero() {
		return Interval{}, fmt.Errorf("%w: shrink of the zero interval", ErrInvalidArgument)
	}
	if left < 0 || right < 0 {
		return Interval{}, fmt.Errorf("%w: shrink(%d, %d)", ErrInvalidArgument, left, right)
	}
	start, stop := iv.start+left, iv.stop-right
	if stop <= start {
		return Interval{}, fmt.Errorf("%w: shrink(%d, %d) of %v leaves [%d,%d)", ErrInvalidArgument, left, right, iv, start, stop)
	}
	return Interval{chrom: iv.chrom, start: start, stop: stop, orient: iv.orient, raw: iv.raw[left : len(iv.raw)-right]}, nil
}

// WithRaw returns a copy of iv carrying raw as its forward-strand sequence.
func (iv Interval) WithRaw(raw string) (Interval, error) {
	return New(iv.chrom, iv.start, iv.stop, iv.orient, raw)
}

// String formats iv as chrom:start-stop(strand), 0-based half-open.
func (iv Interval) String() string {
	return fmt.Sprintf("%s:%d-%d(%v)", iv.chrom, iv.start, iv.stop, iv.orient)
}
