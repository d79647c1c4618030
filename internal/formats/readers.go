package formats

import (
	"fmt"

	"ngsio-core/fasta"
	"ngsio-core/gff"
	"ngsio-core/intersect"
	"ngsio-core/interval"
	"ngsio-core/sam"
)

func init() {
	Register(SAM, readSAM, "sam")
	Register(FASTA, readFASTA, "fasta", "fa", "fna")
	Register(GFF, readGFF, "gff", "gff3")
	Register(Intersect, readIntersect, "tab", "intersect")
}

func readSAM(path string, emit func(Named) error, skip func(string)) error {
	return sam.ScanFile(path, func(r sam.Read) error {
		iv, err := r.Interval()
		if err != nil {
			skip(fmt.Sprintf("read %s: %v", r.QName, err))
			return nil
		}
		return emit(Named{Name: r.QName, Interval: iv})
	})
}

// readFASTA yields every record of a FASTA file as a whole-sequence interval
// carrying its own bases.
func readFASTA(path string, emit func(Named) error, skip func(string)) error {
	s, err := fasta.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	for _, name := range s.Chromosomes() {
		seq, err := s.Chromosome(name)
		if err != nil {
			return err
		}
		if seq == "" {
			skip(fmt.Sprintf("record %s is empty", name))
			continue
		}
		iv, err := interval.New(name, 0, len(seq), interval.Forward, seq)
		if err != nil {
			skip(fmt.Sprintf("record %s: %v", name, err))
			continue
		}
		if err := emit(Named{Name: name, Interval: iv}); err != nil {
			return err
		}
	}
	return nil
}

// readGFF names features by ID, falling back to type:seqid:start-end.
func readGFF(path string, emit func(Named) error, skip func(string)) error {
	x, err := gff.Load(path)
	if err != nil {
		return err
	}
	for _, f := range x.Features() {
		iv, err := f.Interval()
		if err != nil {
			skip(fmt.Sprintf("feature %s: %v", f.ID(), err))
			continue
		}
		name := f.ID()
		if name == "" {
			name = fmt.Sprintf("%s:%s:%d-%d", f.Type, f.SeqID, f.Start, f.End)
		}
		if err := emit(Named{Name: name, Interval: iv}); err != nil {
			return err
		}
	}
	return nil
}

func readIntersect(path string, emit func(Named) error, skip func(string)) error {
	return intersect.ScanFile(path, func(r intersect.Record) error {
		iv, err := r.Interval()
		if err != nil {
			skip(fmt.Sprintf("row %s: %v", r.QName, err))
			return nil
		}
		return emit(Named{Name: r.QName, Interval: iv})
	})
}
