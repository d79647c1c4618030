package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ngsio-core/fasta"
	"ngsio-core/interval"
	"ngsio/internal/appcore"
	"ngsio/internal/output"
	"ngsio/internal/regions"
	"ngsio/pkg/api"
)

func (r *runner) sliceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slice FASTA REGION...",
		Short: "Print the bases of one or more regions",
		Long: `REGION is chrom, chrom:start-stop or chrom:start- (to the end), optionally
followed by :+ or :- to choose the strand. Coordinates are 0-based, half-open.`,
		Example: `  ngsio slice genom.fasta chrI:0-10
  ngsio slice genom.fasta chrII:9-15:- chrI -o fasta`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			regs := make([]regions.Region, 0, len(args)-1)
			for _, a := range args[1:] {
				reg, err := regions.Parse(a)
				if err != nil {
					return err
				}
				regs = append(regs, reg)
			}
			return r.resolveRegions(cmd.Context(), args[0], regs)
		},
	}
}

func (r *runner) regionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions FASTA MANIFEST.yaml",
		Short: "Print the bases of every region listed in a YAML manifest",
		Example: `  cat regions.yaml
  regions:
    - name: GEN001A
      chromosome: chrI
      start: 9
      stop: 15
  ngsio regions genom.fasta regions.yaml -o json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			regs, err := regions.Load(args[1])
			if err != nil {
				return err
			}
			r.log.Debugf("loaded %d regions from %s", len(regs), args[1])
			return r.resolveRegions(cmd.Context(), args[0], regs)
		},
	}
}

func (r *runner) resolveRegions(ctx context.Context, fastaPath string, regs []regions.Region) error {
	s, err := r.openStore(fastaPath)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	wf := r.writerFactory()
	produce := func(emit func(regions.Region) error) error {
		for _, reg := range regs {
			if err := emit(reg); err != nil {
				return err
			}
		}
		return nil
	}
	r.code = appcore.Run[regions.Region](ctx, r.stdout, r.stderr, r.coreOptions(), produce, regionVisitor(s, wf.NeedSeq()), wf)
	return nil
}

// regionVisitor resolves a region against s. Every failure is an input error:
// the user asked for something the reference does not have, and that includes
// any region on a chromosome whose header has no sequence lines.
func regionVisitor(s *fasta.Store, needSeq bool) appcore.VisitorFunc[regions.Region] {
	return func(reg regions.Region) (bool, api.SliceV1, error) {
		fail := func(err error) (bool, api.SliceV1, error) {
			err = fmt.Errorf("%s: %w", reg.Label(), err)
			if dataError(err) {
				err = appcore.Input(err)
			}
			return false, api.SliceV1{}, err
		}

		n, err := s.Len(reg.Chromosome)
		if err != nil {
			return fail(err)
		}
		if n == 0 {
			return fail(fmt.Errorf("%w: %s has no sequence", fasta.ErrOutOfRange, reg.Chromosome))
		}
		o, err := reg.Orientation()
		if err != nil {
			return false, api.SliceV1{}, appcore.Input(err)
		}
		start, stop := reg.Bounds(n)

		var seq string
		if needSeq {
			seqs, err := s.Batch(reg.Chromosome, fasta.Range{Start: start, Stop: stop, Orientation: o})
			if err != nil {
				return fail(err)
			}
			seq, _ = seqs.Single()
		} else if err := checkBounds(s, reg.Chromosome, start, stop); err != nil {
			return fail(err)
		}

		iv, err := interval.NewPlaceholder(reg.Chromosome, start, stop, o)
		if err != nil {
			return fail(err)
		}
		return true, output.FromInterval(reg.Label(), iv, seq, s.Path()), nil
	}
}
