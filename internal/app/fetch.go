package app

import (
	"github.com/spf13/cobra"

	"ngsio-core/fasta"
	"ngsio/internal/appcore"
	"ngsio/internal/cli"
	"ngsio/internal/cliutil"
	"ngsio/internal/formats"
	"ngsio/internal/output"
	"ngsio/pkg/api"
)

func (r *runner) fetchCmd() *cobra.Command {
	var fo cli.FetchOptions
	cmd := &cobra.Command{
		Use:   "fetch FASTA ANNOTATIONS...",
		Short: "Print the reference bases under reads, features or intersection rows",
		Long: `ANNOTATIONS are SAM, GFF3, bedtools intersection tables or FASTA files; the
format is taken from the extension unless --format is given. Globs are
expanded. Records on chromosomes the reference does not have are skipped with
a warning, as are unaligned reads.`,
		Example: `  ngsio fetch genom.fasta reads.sam --pad 5,5
  ngsio fetch genom.fasta genes.gff3 -o fasta
  ngsio fetch genom.fasta 'hits/*.tab' --format intersect -o jsonl`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := fo.Validate(); err != nil {
				return err
			}
			paths, err := cliutil.ExpandPositionals(args[1:])
			if err != nil {
				return err
			}
			var kind formats.Kind
			if fo.Format != "" {
				kind, _ = formats.ParseKind(fo.Format)
			} else {
				for _, p := range paths {
					if _, err := formats.Detect(p); err != nil {
						return err
					}
				}
			}

			s, err := r.openStore(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			wf := r.writerFactory()
			produce := func(emit func(formats.Named) error) error {
				for _, p := range paths {
					r.log.Debugf("reading %s", p)
					var sendErr error
					err := formats.Intervals(p, kind, func(n formats.Named) error {
						if err := emit(n); err != nil {
							sendErr = err
							return err
						}
						return nil
					}, func(reason string) { r.log.Warnf("%s: skipped %s", p, reason) })
					if err != nil {
						if sendErr != nil {
							return err
						}
						return appcore.Input(err)
					}
				}
				return nil
			}
			r.code = appcore.Run[formats.Named](cmd.Context(), r.stdout, r.stderr, r.coreOptions(), produce, r.fetchVisitor(s, fo, wf.NeedSeq()), wf)
			return nil
		},
	}
	cli.BindFetch(cmd.Flags(), &fo)
	return cmd
}

// fetchVisitor pads and resolves one annotation record. Records the reference
// cannot serve are dropped with a warning instead of failing the run.
func (r *runner) fetchVisitor(s *fasta.Store, fo cli.FetchOptions, needSeq bool) appcore.VisitorFunc[formats.Named] {
	return func(n formats.Named) (bool, api.SliceV1, error) {
		skip := func(err error) (bool, api.SliceV1, error) {
			if dataError(err) {
				r.log.Warnf("%s: skipped: %v", n.Name, err)
				return false, api.SliceV1{}, nil
			}
			return false, api.SliceV1{}, err
		}

		iv := n.Interval
		if !s.ContainsInterval(iv) {
			r.log.WarnOnce(iv.Chromosome(), "chromosome %q is not in %s; skipping its records (first: %s)", iv.Chromosome(), s.Path(), n.Name)
			return false, api.SliceV1{}, nil
		}

		var err error
		if fo.Left > 0 || fo.Right > 0 {
			// Check the widened range before any padding is allocated.
			var start, stop int
			if start, stop, err = iv.ExtendBounds(fo.Left, fo.Right); err == nil {
				err = checkBounds(s, iv.Chromosome(), start, stop)
			}
			if err != nil {
				return skip(err)
			}
			if fo.RealPad {
				iv, err = s.Extend(iv, fo.Left, fo.Right)
			} else {
				iv, err = iv.Extend(fo.Left, fo.Right)
			}
			if err != nil {
				return skip(err)
			}
		}

		var seq string
		switch {
		case !needSeq:
			err = checkBounds(s, iv.Chromosome(), iv.Start(), iv.Stop())
		case fo.RecordSeq:
			seq = iv.Sequence()
			err = checkBounds(s, iv.Chromosome(), iv.Start(), iv.Stop())
		default:
			seq, err = s.Fetch(iv)
		}
		if err != nil {
			return skip(err)
		}
		return true, output.FromInterval(n.Name, iv, seq, s.Path()), nil
	}
}
