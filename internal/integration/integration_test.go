// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"ngsio/internal/app"
	"ngsio/pkg/api"
)

func write(t *testing.T, fn, data string) string {
	t.Helper()
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func run(t *testing.T, argv ...string) string {
	t.Helper()
	var out, errBuf bytes.Buffer
	if code := app.Run(argv, &out, &errBuf); code != 0 {
		t.Fatalf("run %v: exit %d, err=%s", argv, code, errBuf.String())
	}
	return out.String()
}

func TestEndToEnd(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, filepath.Join(dir, "itest.fa"), ">s\nACGTACGTAC\nGGGGCCCC\n")

	out := run(t, "slice", fa, "s:8-12", "-o", "json")
	var list []api.SliceV1
	if err := json.Unmarshal([]byte(out), &list); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(list) != 1 || list[0].Seq != "ACGG" {
		t.Fatalf("unexpected output %+v", list)
	}
}

// The same region reached three ways resolves to the same bases.
func TestSourcesAgree(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, filepath.Join(dir, "ref.fa"), ">s\nACGTACGTAC\nGGGGCCCC\n")
	manifest := write(t, filepath.Join(dir, "r.yaml"),
		"regions:\n  - name: x\n    chromosome: s\n    start: 6\n    stop: 13\n    strand: \"-\"\n")
	gff := write(t, filepath.Join(dir, "x.gff3"), "s\tt\tgene\t7\t13\t.\t-\t.\tID=x\n")

	seqOf := func(args ...string) string {
		out := run(t, append(args, "-o", "jsonl", "--no-header")...)
		var s api.SliceV1
		if err := json.Unmarshal([]byte(out), &s); err != nil {
			t.Fatalf("decode %v: %v\n%s", args, err, out)
		}
		return s.Seq
	}

	a := seqOf("slice", fa, "s:6-13:-")
	b := seqOf("regions", fa, manifest)
	c := seqOf("fetch", fa, gff)
	if a != "CCCGTAC" || a != b || b != c {
		t.Fatalf("sources disagree: slice=%q regions=%q fetch=%q", a, b, c)
	}
}

func TestIndexFaiFeedsSlice(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, filepath.Join(dir, "ref.fa"), ">a\nACGT\nAC\n>b\nTTTT\nGG\n")
	fai := run(t, "index", fa, "--fai")
	want := "a\t6\t3\t4\t5\nb\t6\t14\t4\t5\n"
	if fai != want {
		t.Fatalf("fai = %q, want %q", fai, want)
	}
	if out := run(t, "slice", fa, "b:3-5", "-o", "fasta"); out != ">b:3-5 b:3-5(+) len=2\nTG\n" {
		t.Fatalf("slice = %q", out)
	}
}
