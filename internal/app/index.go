package app

import (
	"bufio"
	"fmt"
	"sort"

	"github.com/biogo/hts/fai"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"ngsio-core/fasta"
	"ngsio/internal/cli"
	"ngsio/internal/jsonutil"
	"ngsio/internal/output"
	"ngsio/pkg/api"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func (r *runner) indexCmd() *cobra.Command {
	var ixo cli.IndexOptions
	cmd := &cobra.Command{
		Use:   "index FASTA",
		Short: "List the chromosomes of a FASTA file",
		Long: `Without flags, prints every chromosome with its length and line count.
--fai writes a samtools-compatible index; chromosomes whose lines are not all
the same width cannot be described that way and are left out with a warning.`,
		Example: `  ngsio index genom.fasta
  ngsio index genom.fasta --fai > genom.fasta.fai`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ixo.Validate(); err != nil {
				return err
			}
			if !ixo.Fai && !ixo.Dump && r.opts.Output == output.FormatFASTA {
				return fmt.Errorf("index: --output %s is not supported", r.opts.Output)
			}
			s, err := r.openStore(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			outw := bufio.NewWriter(r.stdout)
			var n int
			switch {
			case ixo.Fai:
				n, err = r.writeFai(outw, s)
			case ixo.Dump:
				n, err = r.dumpIndex(outw, s)
			default:
				n, err = r.writeChromosomes(outw, s)
			}
			r.code = r.finish(outw, err, n)
			return nil
		},
	}
	cli.BindIndex(cmd.Flags(), &ixo)
	return cmd
}

func (r *runner) writeFai(w *bufio.Writer, s *fasta.Store) (int, error) {
	idx, skipped := s.FaiIndex()
	for _, name := range skipped {
		r.log.Warnf("%s: empty or lines of unequal width, left out of the .fai", name)
	}
	return len(idx), fai.WriteTo(w, idx)
}

func (r *runner) dumpIndex(w *bufio.Writer, s *fasta.Store) (int, error) {
	names := s.Chromosomes()
	for _, name := range names {
		x, err := s.Index(name)
		if err != nil {
			return 0, err
		}
		dumpConfig.Fdump(w, x)
	}
	return len(names), nil
}

func (r *runner) writeChromosomes(w *bufio.Writer, s *fasta.Store) (int, error) {
	var list []api.ChromosomeV1
	for _, name := range s.Chromosomes() {
		x, err := s.Index(name)
		if err != nil {
			return 0, err
		}
		list = append(list, api.ChromosomeV1{Name: name, Length: x.Len(), Lines: len(x.Lines)})
	}
	if r.opts.Sort {
		sortChromosomes(list)
	}

	var err error
	switch r.opts.Output {
	case output.FormatJSON:
		err = output.WriteChromosomesJSON(w, list)
	case output.FormatJSONL:
		enc := jsonutil.NewEncoder(w, false)
		for _, c := range list {
			if err = enc.Encode(c); err != nil {
				break
			}
		}
	default:
		err = output.WriteChromosomes(w, list, r.opts.Header)
	}
	return len(list), err
}

func sortChromosomes(list []api.ChromosomeV1) {
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
}
