package fasta

import (
	"github.com/biogo/hts/fai"
)

// FaiIndex describes the store in samtools faidx terms. Only chromosomes whose
// lines share one width and one byte stride can be expressed that way; the
// others are returned in skipped, in file order.
func (s *Store) FaiIndex() (idx fai.Index, skipped []string) {
	idx = make(fai.Index)
	for _, name := range s.order {
		rec, ok := faiRecord(s.index[name])
		if !ok {
			skipped = append(skipped, name)
			continue
		}
		idx[name] = rec
	}
	return idx, skipped
}

func faiRecord(x *LineIndex) (fai.Record, bool) {
	if len(x.Lines) == 0 {
		return fai.Record{}, false
	}
	width := x.Lines[0].Len
	stride := int64(width + 1)
	if len(x.Lines) > 1 {
		stride = x.Lines[1].Offset - x.Lines[0].Offset
	}
	for i, ln := range x.Lines {
		last := i == len(x.Lines)-1
		if ln.Len > width || (!last && ln.Len != width) {
			return fai.Record{}, false
		}
		if i > 0 && ln.Offset-x.Lines[i-1].Offset != stride {
			return fai.Record{}, false
		}
	}
	return fai.Record{
		Name:         x.Name,
		Length:       x.Len(),
		Start:        x.Lines[0].Offset,
		BasesPerLine: width,
		BytesPerLine: int(stride),
	}, true
}
