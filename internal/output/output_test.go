package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"ngsio-core/interval"
	"ngsio/pkg/api"
)

func sample(t *testing.T) api.SliceV1 {
	t.Helper()
	iv, err := interval.New("chrII", 9, 15, interval.Reverse, "CAGCTA")
	if err != nil {
		t.Fatal(err)
	}
	return FromInterval("GEN002A", iv, iv.Sequence(), "genom.fasta")
}

func TestTSVHeader_Stable(t *testing.T) {
	const want = "name\tchromosome\tstart\tstop\tstrand\tlength\tseq"
	if TSVHeader != want {
		t.Fatalf("TSVHeader changed:\n got:  %q\n want: %q", TSVHeader, want)
	}
}

func TestFormats_Stable(t *testing.T) {
	if FormatText != "text" || FormatJSON != "json" || FormatJSONL != "jsonl" || FormatFASTA != "fasta" {
		t.Fatalf("output format constants changed")
	}
}

func TestFromInterval(t *testing.T) {
	s := sample(t)
	want := api.SliceV1{
		Name: "GEN002A", Chromosome: "chrII", Start: 9, Stop: 15, Strand: "-",
		Length: 6, Seq: "TAGCTG", SourceFile: "genom.fasta",
	}
	if s != want {
		t.Fatalf("got %+v\nwant %+v", s, want)
	}

	iv, _ := interval.New("chrI", 0, 3, interval.Forward, "ATC")
	if got := FromInterval("", iv, "ATC", "").Name; got != "chrI:0-3(+)" {
		t.Fatalf("default name = %q", got)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, []api.SliceV1{sample(t)}, true); err != nil {
		t.Fatal(err)
	}
	want := TSVHeader + "\nGEN002A\tchrII\t9\t15\t-\t6\tTAGCTG\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestStreamTextNoHeader(t *testing.T) {
	in := make(chan api.SliceV1, 1)
	in <- sample(t)
	close(in)
	var buf bytes.Buffer
	if err := StreamText(&buf, in, false); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "chromosome") {
		t.Fatalf("header should be suppressed: %q", buf.String())
	}
}

func TestWriteFASTA(t *testing.T) {
	var buf bytes.Buffer
	list := []api.SliceV1{sample(t), {Name: "empty"}}
	if err := WriteFASTA(&buf, list, 4); err != nil {
		t.Fatalf("fasta: %v", err)
	}
	want := ">GEN002A chrII:9-15(-) len=6\nTAGC\nTG\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}

	buf.Reset()
	if err := WriteFASTA(&buf, list[:1], 0); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(buf.String(), "\nTAGCTG\n") {
		t.Fatalf("unwrapped output: %q", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteJSON(buf, []api.SliceV1{sample(t)}); err != nil {
		t.Fatalf("json write: %v", err)
	}
	var got []api.SliceV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil || len(got) != 1 || got[0].Seq != "TAGCTG" {
		t.Fatalf("json decode failed: %v %v", err, got)
	}

	buf.Reset()
	if err := WriteJSON(buf, nil); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("empty list = %q", buf.String())
	}
}

func TestWriteChromosomes(t *testing.T) {
	var buf bytes.Buffer
	list := []api.ChromosomeV1{{Name: "chrI", Length: 35, Lines: 4}}
	if err := WriteChromosomes(&buf, list, true); err != nil {
		t.Fatal(err)
	}
	if buf.String() != IndexTSVHeader+"\nchrI\t35\t4\n" {
		t.Fatalf("got %q", buf.String())
	}
}
