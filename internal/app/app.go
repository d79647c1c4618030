// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"ngsio-core/fasta"
	"ngsio-core/interval"
	"ngsio/internal/appcore"
	"ngsio/internal/cli"
	"ngsio/internal/cmdutil"
	"ngsio/internal/version"
	"ngsio/internal/writers"
)

// runner carries the state of one invocation.
type runner struct {
	stdout, stderr io.Writer
	opts           cli.Options
	log            *cmdutil.Logger
	prof           interface{ Stop() }
	code           int
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	r := &runner{stdout: stdout, stderr: stderr, log: cmdutil.NewLogger(stderr, false, false)}
	root := r.rootCmd()
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if r.prof != nil {
		r.prof.Stop()
	}
	if n := r.log.Warnings(); n > 0 {
		r.log.Debugf("%d warnings", n)
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return appcore.ExitUsage
	}
	return r.code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func (r *runner) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ngsio",
		Short: "Random-access slicing of FASTA references by region, read or feature",
		Long: `ngsio indexes a FASTA reference once and answers sequence queries against it.
Regions come from the command line, a YAML manifest, or SAM/GFF/intersection
files. Coordinates are 0-based and half-open.`,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := r.opts.Validate(); err != nil {
				return err
			}
			r.log = cmdutil.NewLogger(r.stderr, r.opts.Quiet, r.opts.Verbose)
			r.startProfile()
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	cli.Bind(root.PersistentFlags(), &r.opts)

	root.AddCommand(r.sliceCmd(), r.regionsCmd(), r.fetchCmd(), r.indexCmd())
	return root
}

func (r *runner) startProfile() {
	var mode func(*profile.Profile)
	switch r.opts.Profile {
	case cli.ProfileCPU:
		mode = profile.CPUProfile
	case cli.ProfileMem:
		mode = profile.MemProfile
	case cli.ProfileBlock:
		mode = profile.BlockProfile
	default:
		return
	}
	r.prof = profile.Start(mode, profile.ProfilePath(r.opts.ProfileDir), profile.NoShutdownHook, profile.Quiet)
	r.log.Debugf("%s profile enabled in %s", r.opts.Profile, r.opts.ProfileDir)
}

/* ------------------------------ helpers ------------------------------ */

func (r *runner) openStore(path string) (*fasta.Store, error) {
	s, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	r.log.Debugf("indexed %s: %d chromosomes", path, len(s.Chromosomes()))
	return s, nil
}

func (r *runner) coreOptions() appcore.Options {
	return appcore.Options{Quiet: r.opts.Quiet, NoMatchExitCode: r.opts.NoMatchExitCode, Threads: r.opts.Threads}
}

func (r *runner) writerFactory() appcore.SliceWriterFactory {
	o := r.opts
	return appcore.NewSliceWriterFactory(o.Output, o.Sort, o.Header, o.NoSeq, o.Wrap).WithPretty(o.Pretty)
}

// dataError reports whether err comes from the query itself (bad or
// unreachable coordinates) rather than from reading the file.
func dataError(err error) bool {
	return errors.Is(err, fasta.ErrUnknownChromosome) ||
		errors.Is(err, fasta.ErrOutOfRange) ||
		errors.Is(err, interval.ErrInvalidArgument) ||
		errors.Is(err, interval.ErrBoundary)
}

// checkBounds validates [start, stop) on chrom without reading bases.
func checkBounds(s *fasta.Store, chrom string, start, stop int) error {
	n, err := s.Len(chrom)
	if err != nil {
		return err
	}
	if start < 0 || stop <= start {
		return fmt.Errorf("%w: range [%d,%d) on %s", interval.ErrInvalidArgument, start, stop, chrom)
	}
	if stop > n {
		return fmt.Errorf("%w: [%d,%d) on %s (length %d)", fasta.ErrOutOfRange, start, stop, chrom, n)
	}
	return nil
}

// finish flushes a buffered command output and picks the exit code.
func (r *runner) finish(outw *bufio.Writer, werr error, written int) int {
	if werr == nil {
		werr = outw.Flush()
	}
	if writers.IsBrokenPipe(werr) {
		return appcore.ExitOK
	}
	if werr != nil {
		_, _ = fmt.Fprintln(r.stderr, "error:", werr)
		return appcore.ExitRuntime
	}
	if written == 0 {
		return r.opts.NoMatchExitCode
	}
	return appcore.ExitOK
}
