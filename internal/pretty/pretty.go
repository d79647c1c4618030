// Package pretty renders a resolved slice as a numbered sequence block for
// the text output, in the style of a GenBank ORIGIN section. Every line is
// prefixed with "# " so the block never parses as a TSV row.
package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"ngsio-core/nucleotide"
	"ngsio/pkg/api"
)

// Options control the ASCII rendering.
type Options struct {
	// Bases per row. If <=0, use default (60).
	Width int

	// Bases per space-separated group within a row. If <=0, no grouping.
	Group int

	// Draw the complementary strand under every row.
	ShowComplement bool

	// Rows kept before the middle of a long block is elided; the first and
	// last MaxRows/2 rows are shown. 0 disables elision.
	MaxRows int

	// Fills the elision line. Default ".".
	GapGlyph string
}

// DefaultOptions is what --pretty uses.
var DefaultOptions = Options{
	Width:          60,
	Group:          10,
	ShowComplement: true,
	MaxRows:        20,
	GapGlyph:       ".",
}

const linePrefix = "# "

// Render returns the block for s, one "\n"-terminated line per row. Records
// without bases render as the title line alone.
func Render(s api.SliceV1) string { return RenderWithOptions(s, DefaultOptions) }

func RenderWithOptions(s api.SliceV1, o Options) string {
	if o.Width <= 0 {
		o.Width = DefaultOptions.Width
	}
	if o.GapGlyph == "" {
		o.GapGlyph = "."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s %s:%d-%d(%s) len=%d\n", linePrefix, s.Name, s.Chromosome, s.Start, s.Stop, s.Strand, s.Length)
	if s.Seq == "" {
		return b.String()
	}

	rows := (len(s.Seq) + o.Width - 1) / o.Width
	label := labeler(s)
	lw := len(strconv.Itoa(max(label(0), label(len(s.Seq)-1))))

	skipFrom, skipTo := rows, rows
	if o.MaxRows > 0 && rows > o.MaxRows {
		keep := max(o.MaxRows/2, 1)
		skipFrom, skipTo = keep, rows-keep
	}

	for r := 0; r < rows; r++ {
		if r == skipFrom {
			hidden := (skipTo - skipFrom) * o.Width
			fmt.Fprintf(&b, "%s%*s %s %d bases %s\n", linePrefix, lw, "", strings.Repeat(o.GapGlyph, 3), hidden, strings.Repeat(o.GapGlyph, 3))
			r = skipTo - 1
			continue
		}
		off := r * o.Width
		chunk := s.Seq[off:min(off+o.Width, len(s.Seq))]
		fmt.Fprintf(&b, "%s%*d %s\n", linePrefix, lw, label(off), group(chunk, o.Group))
		if o.ShowComplement {
			fmt.Fprintf(&b, "%s%*s %s\n", linePrefix, lw, "", group(complement(chunk), o.Group))
		}
	}
	return b.String()
}

// labeler maps an offset in s.Seq to its 1-based reference position. On the
// minus strand the sequence runs from Stop down to Start+1.
func labeler(s api.SliceV1) func(int) int {
	if s.Strand == "-" {
		return func(off int) int { return s.Stop - off }
	}
	return func(off int) int { return s.Start + off + 1 }
}

func group(seq string, n int) string {
	if n <= 0 || len(seq) <= n {
		return seq
	}
	var b strings.Builder
	b.Grow(len(seq) + len(seq)/n)
	for i := 0; i < len(seq); i += n {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(seq[i:min(i+n, len(seq))])
	}
	return b.String()
}

// complement pairs every base without reversing. Unknown symbols are copied.
func complement(seq string) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		c, ok := nucleotide.Complement(seq[i])
		if !ok {
			c = seq[i]
		}
		out[i] = c
	}
	return string(out)
}
