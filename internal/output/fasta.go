package output

import (
	"fmt"
	"io"

	"ngsio/pkg/api"
)

// writeRecord writes s as one FASTA record, wrapping the sequence every wrap
// bases (0 keeps it on one line). Records without a sequence are skipped.
func writeRecord(w io.Writer, s api.SliceV1, wrap int) error {
	if s.Seq == "" {
		return nil
	}
	if _, err := fmt.Fprintf(w, ">%s %s:%d-%d(%s) len=%d\n", s.Name, s.Chromosome, s.Start, s.Stop, s.Strand, s.Length); err != nil {
		return err
	}
	seq := s.Seq
	if wrap <= 0 {
		wrap = len(seq)
	}
	for len(seq) > 0 {
		n := min(wrap, len(seq))
		if _, err := io.WriteString(w, seq[:n]+"\n"); err != nil {
			return err
		}
		seq = seq[n:]
	}
	return nil
}

// StreamFASTA streams FASTA records from a channel to the writer.
func StreamFASTA(w io.Writer, in <-chan api.SliceV1, wrap int) error {
	for s := range in {
		if err := writeRecord(w, s, wrap); err != nil {
			return err
		}
	}
	return nil
}

// WriteFASTA writes a slice of records as FASTA.
func WriteFASTA(w io.Writer, list []api.SliceV1, wrap int) error {
	for _, s := range list {
		if err := writeRecord(w, s, wrap); err != nil {
			return err
		}
	}
	return nil
}
