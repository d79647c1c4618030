// internal/cli/options_test.go
package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func newFS() *pflag.FlagSet { return pflag.NewFlagSet("test", pflag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	var o Options
	fs := newFS()
	Bind(fs, &o)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if err := o.Validate(); err != nil {
		t.Fatalf("validate err: %v", err)
	}
	return o
}

func parseErr(t *testing.T, args ...string) error {
	t.Helper()
	var o Options
	fs := newFS()
	Bind(fs, &o)
	if err := fs.Parse(args); err != nil {
		return err
	}
	return o.Validate()
}

func TestDefaults(t *testing.T) {
	o := mustParse(t)
	if o.Output != "text" || !o.Header || o.Wrap != 60 || o.NoMatchExitCode != 0 || o.Profile != "" {
		t.Errorf("unexpected defaults %+v", o)
	}
}

func TestOutputFlags(t *testing.T) {
	o := mustParse(t, "-o", "jsonl", "--no-header", "--sort", "--wrap", "0", "--no-match-exit", "1", "-q")
	if o.Output != "jsonl" || o.Header || !o.Sort || o.Wrap != 0 || o.NoMatchExitCode != 1 || !o.Quiet {
		t.Errorf("bad parse %+v", o)
	}
}

func TestErrorInvalidOutput(t *testing.T) {
	if err := parseErr(t, "--output", "xml"); err == nil {
		t.Fatal("expected error for --output xml")
	}
}

func TestErrorQuietVerbose(t *testing.T) {
	if err := parseErr(t, "-q", "-v"); err == nil {
		t.Fatal("expected conflict error")
	}
}

func TestErrorNegativeWrap(t *testing.T) {
	if err := parseErr(t, "--wrap", "-1"); err == nil {
		t.Fatal("expected error for negative wrap")
	}
}

func TestThreads(t *testing.T) {
	if o := mustParse(t, "-t", "4"); o.Threads != 4 {
		t.Errorf("threads = %d", o.Threads)
	}
	if err := parseErr(t, "--threads", "-1"); err == nil {
		t.Fatal("expected error for negative threads")
	}
}

func TestErrorProfile(t *testing.T) {
	if err := parseErr(t, "--profile", "heap"); err == nil {
		t.Fatal("expected error for unknown profile mode")
	}
	if err := parseErr(t, "--profile", "cpu"); err != nil {
		t.Fatalf("cpu profile rejected: %v", err)
	}
}

func TestParsePad(t *testing.T) {
	cases := []struct {
		in   string
		l, r int
		ok   bool
	}{
		{"", 0, 0, true},
		{"3", 3, 3, true},
		{"1,2", 1, 2, true},
		{" 0 , 5 ", 0, 5, true},
		{"-1,2", 0, 0, false},
		{"a,b", 0, 0, false},
		{"1,", 0, 0, false},
	}
	for _, c := range cases {
		l, r, err := ParsePad(c.in)
		if (err == nil) != c.ok || l != c.l || r != c.r {
			t.Errorf("ParsePad(%q) = %d,%d,%v", c.in, l, r, err)
		}
	}
}

func TestFetchOptions(t *testing.T) {
	o := FetchOptions{Format: "gff3", Pad: "2,1", RealPad: true}
	if err := o.Validate(); err != nil || o.Left != 2 || o.Right != 1 {
		t.Fatalf("fetch options %+v, %v", o, err)
	}
	if err := (&FetchOptions{Format: "bam"}).Validate(); err == nil {
		t.Fatal("expected unknown format error")
	}
	if err := (&FetchOptions{RealPad: true}).Validate(); err == nil {
		t.Fatal("--real-pad without --pad should fail")
	}
}

func TestIndexOptions(t *testing.T) {
	if err := (&IndexOptions{Fai: true, Dump: true}).Validate(); err == nil {
		t.Fatal("expected conflict")
	}
	var o IndexOptions
	fs := newFS()
	BindIndex(fs, &o)
	if err := fs.Parse([]string{"--fai"}); err != nil || !o.Fai {
		t.Fatalf("parse: %v %+v", err, o)
	}
}
