// Package sam reads alignment records from SAM text files.
//
// Only the eleven mandatory columns are interpreted; optional tags are kept
// verbatim. Coordinates are converted to the 0-based convention used by the
// interval package on parse.
package sam

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ngsio-core/interval"
)

var (
	// ErrMalformed is returned for lines that are not valid SAM records.
	ErrMalformed = errors.New("sam: malformed record")

	// ErrUnaligned is returned by Read.Interval for reads with no placement.
	ErrUnaligned = errors.New("sam: read is not aligned")
)

// Flag is the SAM bitwise FLAG column.
type Flag uint16

const (
	FlagPaired        Flag = 0x1
	FlagProperPair    Flag = 0x2
	FlagUnmapped      Flag = 0x4
	FlagMateUnmapped  Flag = 0x8
	FlagReverse       Flag = 0x10
	FlagMateReverse   Flag = 0x20
	FlagRead1         Flag = 0x40
	FlagRead2         Flag = 0x80
	FlagSecondary     Flag = 0x100
	FlagQCFail        Flag = 0x200
	FlagDuplicate     Flag = 0x400
	FlagSupplementary Flag = 0x800
)

// Has reports whether every bit of x is set.
func (f Flag) Has(x Flag) bool { return f&x == x }

// Read is one alignment line. Missing values ("*" in the file) are empty
// strings; missing positions are -1.
type Read struct {
	QName string
	Flag  Flag
	RName string
	Pos   int // 0-based leftmost position
	MapQ  int
	Cigar string
	RNext string // "=" is resolved to RName
	PNext int    // 0-based, -1 when unset
	TLen  int
	Seq   string
	Qual  string
	Tags  []string
}

/* ------------------------------ parsing ------------------------------ */

func field(s string) string {
	if s == "*" {
		return ""
	}
	return s
}

// ParseLine parses one tab-separated record. Header lines ("@") are not
// records and must be filtered by the caller.
func ParseLine(line string) (Read, error) {
	f := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	if len(f) < 11 {
		return Read{}, fmt.Errorf("%w: %d columns, want at least 11", ErrMalformed, len(f))
	}
	ints := make([]int, 5)
	for i, col := range []int{1, 3, 4, 7, 8} {
		v, err := strconv.Atoi(f[col])
		if err != nil {
			return Read{}, fmt.Errorf("%w: column %d: %v", ErrMalformed, col+1, err)
		}
		ints[i] = v
	}
	if ints[0] < 0 || ints[0] > 0xffff {
		return Read{}, fmt.Errorf("%w: flag %d", ErrMalformed, ints[0])
	}

	r := Read{
		QName: field(f[0]),
		Flag:  Flag(ints[0]),
		RName: field(f[2]),
		Pos:   ints[1] - 1,
		MapQ:  ints[2],
		Cigar: field(f[5]),
		RNext: field(f[6]),
		PNext: ints[3] - 1,
		TLen:  ints[4],
		Seq:   field(f[9]),
		Qual:  field(f[10]),
	}
	if r.RNext == "=" {
		r.RNext = r.RName
	}
	if len(f) > 11 {
		r.Tags = f[11:]
	}
	return r, nil
}

/* ------------------------------ queries ------------------------------ */

// Aligned reports whether the read has a placement on a reference.
func (r Read) Aligned() bool {
	return !r.Flag.Has(FlagUnmapped) && r.RName != "" && r.Pos >= 0
}

// ReverseComplemented reports whether SEQ was stored reverse complemented.
func (r Read) ReverseComplemented() bool { return r.Flag.Has(FlagReverse) }

// Tag returns the value of the optional field named tag (e.g. "NM") and its
// SAM type letter.
func (r Read) Tag(tag string) (value string, typ byte, ok bool) {
	for _, t := range r.Tags {
		if len(t) >= 5 && t[:2] == tag && t[2] == ':' && t[4] == ':' {
			return t[5:], t[3], true
		}
	}
	return "", 0, false
}

// Interval places the read on its reference. The range covers len(SEQ)
// bases from Pos and Raw holds SEQ as stored in the file, which is always the
// forward reference strand. A read without SEQ gets placeholder bases over
// the reference span of its CIGAR.
func (r Read) Interval() (interval.Interval, error) {
	if !r.Aligned() {
		return interval.Interval{}, fmt.Errorf("%w: %s", ErrUnaligned, r.QName)
	}
	o := interval.Forward
	if r.ReverseComplemented() {
		o = interval.Reverse
	}
	if r.Seq != "" {
		return interval.New(r.RName, r.Pos, r.Pos+len(r.Seq), o, r.Seq)
	}
	n, err := RefLen(r.Cigar)
	if err != nil {
		return interval.Interval{}, err
	}
	if n == 0 {
		return interval.Interval{}, fmt.Errorf("%w: %s has neither SEQ nor CIGAR", ErrMalformed, r.QName)
	}
	return interval.NewPlaceholder(r.RName, r.Pos, r.Pos+n, o)
}

// RefLen is the number of reference bases a CIGAR string consumes.
func RefLen(cigar string) (int, error) {
	n, num := 0, 0
	seen := false
	for i := 0; i < len(cigar); i++ {
		c := cigar[i]
		if c >= '0' && c <= '9' {
			num = num*10 + int(c-'0')
			seen = true
			continue
		}
		if !seen {
			return 0, fmt.Errorf("%w: cigar %q", ErrMalformed, cigar)
		}
		switch c {
		case 'M', 'D', 'N', '=', 'X':
			n += num
		case 'I', 'S', 'H', 'P':
		default:
			return 0, fmt.Errorf("%w: cigar op %q", ErrMalformed, c)
		}
		num, seen = 0, false
	}
	if seen {
		return 0, fmt.Errorf("%w: cigar %q", ErrMalformed, cigar)
	}
	return n, nil
}
