// internal/writers/slice.go
package writers

import (
	"io"
	"sort"

	"ngsio/internal/output"
	"ngsio/internal/pretty"
	"ngsio/pkg/api"
)

// Options controls how slices are rendered.
type Options struct {
	Format string
	Header bool // text only
	Sort   bool // by chromosome, start, stop, name
	Wrap   int  // FASTA line width, 0 = single line
	Pretty bool // text only: sequence block after every row
}

type sliceArgs struct {
	Options
	In <-chan api.SliceV1
}

func drainSlices(ch <-chan api.SliceV1) []api.SliceV1 {
	list := make([]api.SliceV1, 0, 128)
	for s := range ch {
		list = append(list, s)
	}
	return list
}

// SortSlices orders records by chromosome, start, stop and name.
func SortSlices(list []api.SliceV1) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Chromosome != b.Chromosome {
			return a.Chromosome < b.Chromosome
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.Stop != b.Stop {
			return a.Stop < b.Stop
		}
		return a.Name < b.Name
	})
}

func init() {
	// JSON array
	RegisterSlice(output.FormatJSON, func(w io.Writer, payload interface{}) error {
		args := payload.(sliceArgs)
		list := drainSlices(args.In)
		if args.Sort {
			SortSlices(list)
		}
		return output.WriteJSON(w, list)
	})

	// JSONL streaming
	RegisterSlice(output.FormatJSONL, func(w io.Writer, payload interface{}) error {
		args := payload.(sliceArgs)
		var list []api.SliceV1
		if args.Sort {
			list = drainSlices(args.In)
			SortSlices(list)
		}
		pipe, done := StartSliceJSONLWriter(w, 64)
		if args.Sort {
			for _, s := range list {
				pipe <- s
			}
		} else {
			for s := range args.In {
				pipe <- s
			}
		}
		close(pipe)
		return <-done
	})

	// FASTA (stream or buffered+sort)
	RegisterSlice(output.FormatFASTA, func(w io.Writer, payload interface{}) error {
		args := payload.(sliceArgs)
		if args.Sort {
			list := drainSlices(args.In)
			SortSlices(list)
			return output.WriteFASTA(w, list, args.Wrap)
		}
		return output.StreamFASTA(w, args.In, args.Wrap)
	})

	// TEXT/TSV
	RegisterSlice(output.FormatText, func(w io.Writer, payload interface{}) error {
		args := payload.(sliceArgs)
		var render output.Renderer
		if args.Pretty {
			render = pretty.Render
		}
		if args.Sort {
			list := drainSlices(args.In)
			SortSlices(list)
			return output.WriteTextWithRenderer(w, list, args.Header, render)
		}
		return output.StreamTextWithRenderer(w, args.In, args.Header, render)
	})
}

// StartSliceWriter spins up a writer goroutine. Send records on the returned
// channel, close it, then read the single result from the error channel.
// An unknown format still drains the channel so senders never block.
func StartSliceWriter(out io.Writer, opt Options, bufSize int) (chan<- api.SliceV1, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan api.SliceV1, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := WriteSlices(opt.Format, out, sliceArgs{Options: opt, In: in})
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}
