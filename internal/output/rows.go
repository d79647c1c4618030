// internal/output/rows.go
package output

import (
	"fmt"

	"ngsio-core/interval"
	"ngsio/pkg/api"
)

// FromInterval builds the wire record for iv resolved to seq.
func FromInterval(name string, iv interval.Interval, seq, source string) api.SliceV1 {
	if name == "" {
		name = iv.String()
	}
	return api.SliceV1{
		Name:       name,
		Chromosome: iv.Chromosome(),
		Start:      iv.Start(),
		Stop:       iv.Stop(),
		Strand:     iv.Orientation().String(),
		Length:     iv.Len(),
		Seq:        seq,
		SourceFile: source,
	}
}

// FormatRowTSV returns the 7 columns of one record (no trailing newline).
func FormatRowTSV(s api.SliceV1) string {
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%s\t%d\t%s",
		s.Name, s.Chromosome, s.Start, s.Stop, s.Strand, s.Length, s.Seq)
}

// FormatChromosomeTSV returns one row of the index table.
func FormatChromosomeTSV(c api.ChromosomeV1) string {
	return fmt.Sprintf("%s\t%d\t%d", c.Name, c.Length, c.Lines)
}
