// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"ngsio/internal/formats"
	"ngsio/internal/output"
)

// Profile modes accepted by --profile.
const (
	ProfileCPU   = "cpu"
	ProfileMem   = "mem"
	ProfileBlock = "block"
)

// Options holds the flags shared by every subcommand.
type Options struct {
	// Output
	Output   string
	NoHeader bool
	Header   bool // set by Validate: !NoHeader
	Sort     bool
	NoSeq    bool
	Wrap     int
	Pretty   bool

	// Diagnostics
	Quiet   bool
	Verbose bool

	Threads         int
	NoMatchExitCode int
	Profile         string
	ProfileDir      string
}

// Bind registers the shared flags on fs. Flag defaults are written into o.
func Bind(fs *pflag.FlagSet, o *Options) {
	fs.StringVarP(&o.Output, "output", "o", output.FormatText, "output format: "+strings.Join(output.Formats, " | "))
	fs.BoolVar(&o.NoHeader, "no-header", false, "suppress header line in text/TSV")
	fs.BoolVar(&o.Sort, "sort", false, "sort records by chromosome, start, stop, name")
	fs.BoolVar(&o.NoSeq, "no-seq", false, "emit coordinates only (ignored for fasta)")
	fs.IntVar(&o.Wrap, "wrap", 60, "FASTA line width (0 = single line)")
	fs.BoolVar(&o.Pretty, "pretty", false, "text output: print a numbered sequence block under every row")

	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "suppress warnings on stderr")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "print debug diagnostics on stderr")
	fs.IntVarP(&o.Threads, "threads", "t", 0, "worker threads (0 = all CPUs); output order is unchanged")
	fs.IntVar(&o.NoMatchExitCode, "no-match-exit", 0, "exit code when no records are written")

	fs.StringVar(&o.Profile, "profile", "", "write a runtime profile: cpu | mem | block")
	fs.StringVar(&o.ProfileDir, "profile-dir", ".", "directory for --profile output")
	_ = fs.MarkHidden("profile")
	_ = fs.MarkHidden("profile-dir")
}

// Validate checks flag combinations after parsing.
func (o *Options) Validate() error {
	o.Header = !o.NoHeader
	if !slices.Contains(output.Formats, o.Output) {
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.Wrap < 0 {
		return errors.New("--wrap must be ≥ 0")
	}
	if o.Pretty && o.Output != output.FormatText {
		return errors.New("--pretty only applies to --output text")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 125 {
		return errors.New("--no-match-exit must be in 0..125")
	}
	if o.Quiet && o.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	switch o.Profile {
	case "", ProfileCPU, ProfileMem, ProfileBlock:
	default:
		return fmt.Errorf("invalid --profile %q", o.Profile)
	}
	return nil
}

// FetchOptions holds the flags of the fetch subcommand.
type FetchOptions struct {
	Format    string
	Pad       string
	RealPad   bool
	RecordSeq bool

	Left, Right int // parsed from Pad
}

func BindFetch(fs *pflag.FlagSet, o *FetchOptions) {
	fs.StringVarP(&o.Format, "format", "f", "", "annotation format: "+strings.Join(formats.Names(), " | ")+" (default: by extension)")
	fs.StringVar(&o.Pad, "pad", "", "extend every interval by L,R bases (or N for both sides)")
	fs.BoolVar(&o.RealPad, "real-pad", false, "fill padding from the reference instead of N (with --record-seq)")
	fs.BoolVar(&o.RecordSeq, "record-seq", false, "emit the bases stored in the record instead of the reference")
}

func (o *FetchOptions) Validate() error {
	if o.Format != "" {
		if _, err := formats.ParseKind(o.Format); err != nil {
			return err
		}
	}
	l, r, err := ParsePad(o.Pad)
	if err != nil {
		return err
	}
	if o.RealPad && l == 0 && r == 0 {
		return errors.New("--real-pad requires --pad")
	}
	o.Left, o.Right = l, r
	return nil
}

// ParsePad reads "L,R" or a single "N" meaning N,N. Empty means 0,0.
func ParsePad(s string) (left, right int, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, nil
	}
	a, b, two := strings.Cut(s, ",")
	if left, err = strconv.Atoi(strings.TrimSpace(a)); err != nil {
		return 0, 0, fmt.Errorf("invalid --pad %q", s)
	}
	right = left
	if two {
		if right, err = strconv.Atoi(strings.TrimSpace(b)); err != nil {
			return 0, 0, fmt.Errorf("invalid --pad %q", s)
		}
	}
	if left < 0 || right < 0 {
		return 0, 0, fmt.Errorf("--pad %q must not be negative", s)
	}
	return left, right, nil
}

// IndexOptions holds the flags of the index subcommand.
type IndexOptions struct {
	Fai  bool
	Dump bool
}

func BindIndex(fs *pflag.FlagSet, o *IndexOptions) {
	fs.BoolVar(&o.Fai, "fai", false, "write a samtools .fai index to stdout")
	fs.BoolVar(&o.Dump, "dump", false, "dump the line index for debugging")
}

func (o *IndexOptions) Validate() error {
	if o.Fai && o.Dump {
		return errors.New("--fai conflicts with --dump")
	}
	return nil
}
