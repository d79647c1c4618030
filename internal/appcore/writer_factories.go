package appcore

import (
	"io"

	"ngsio/internal/output"
	"ngsio/internal/writers"
	"ngsio/pkg/api"
)

// SliceWriterFactory starts the registered writer for one output format.
type SliceWriterFactory struct {
	writers.Options
	NoSeq bool // coordinates only
}

func NewSliceWriterFactory(format string, sort, header, noSeq bool, wrap int) SliceWriterFactory {
	return SliceWriterFactory{
		Options: writers.Options{Format: format, Sort: sort, Header: header, Wrap: wrap},
		NoSeq:   noSeq,
	}
}

// WithPretty turns on the sequence block of the text output.
func (w SliceWriterFactory) WithPretty(on bool) SliceWriterFactory {
	w.Pretty = on
	return w
}

// NeedSeq reports whether records must carry bases. FASTA output and the
// pretty text block always do.
func (w SliceWriterFactory) NeedSeq() bool {
	return w.Format == output.FormatFASTA || (w.Format == output.FormatText && w.Pretty) || !w.NoSeq
}

func (w SliceWriterFactory) Start(out io.Writer, bufSize int) (chan<- api.SliceV1, <-chan error) {
	return writers.StartSliceWriter(out, w.Options, bufSize)
}
