package nucleotide

import (
	"errors"
	"testing"
)

func TestReverseComplementSimple(t *testing.T) {
	got, err := ReverseComplement("ATCGATCG")
	if err != nil {
		t.Fatalf("ReverseComplement: %v", err)
	}
	if got != "CGATCGAT" {
		t.Errorf("ReverseComplement(ATCGATCG) = %s, want CGATCGAT", got)
	}
}

func TestReverseComplementAmbiguous(t *testing.T) {
	got, err := ReverseComplement("AANTDHW")
	if err != nil {
		t.Fatalf("ReverseComplement: %v", err)
	}
	if got != "WDHANTT" {
		t.Errorf("ReverseComplement(AANTDHW) = %s, want WDHANTT", got)
	}
}

// Snapshot: the full ambiguity alphabet plus ACGT.
func TestComplementTable_Snapshot(t *testing.T) {
	in := "RYSWKMBDHVNACGT"
	want := "ACGTNBDHVKMWSRY"
	got, err := ReverseComplement(in)
	if err != nil {
		t.Fatalf("ReverseComplement: %v", err)
	}
	if got != want {
		t.Fatalf("complement table changed:\n got  %s\n want %s", got, want)
	}
}

func TestComplementLowercaseMirrorsUppercase(t *testing.T) {
	for i := 0; i < len(Alphabet); i++ {
		up := Alphabet[i]
		cu, ok := Complement(up)
		if !ok {
			t.Fatalf("no complement for %c", up)
		}
		cl, ok := Complement(up + 'a' - 'A')
		if !ok {
			t.Fatalf("no complement for %c", up+'a'-'A')
		}
		if cl != cu+'a'-'A' {
			t.Errorf("Complement(%c)=%c but Complement(%c)=%c", up, cu, up+'a'-'A', cl)
		}
	}
}

func TestReverseComplementInvolution(t *testing.T) {
	seqs := []string{"", "A", "ACGTN", Alphabet, "acgtnsWRYkmdhvb", "GGGGCCCCAATTRY"}
	for _, s := range seqs {
		rc, err := ReverseComplement(s)
		if err != nil {
			t.Fatalf("ReverseComplement(%q): %v", s, err)
		}
		back, err := ReverseComplement(rc)
		if err != nil {
			t.Fatalf("ReverseComplement(%q): %v", rc, err)
		}
		if back != s {
			t.Errorf("double reverse complement of %q = %q", s, back)
		}
	}
}

func TestReverseComplementUnknownSymbol(t *testing.T) {
	_, err := ReverseComplement("ACXGT")
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("want ErrUnknownSymbol, got %v", err)
	}
	if err := Validate("AC-GT"); !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("Validate: want ErrUnknownSymbol, got %v", err)
	}
	if err := Validate("ACGTN"); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestMustReverseComplementPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on unknown symbol")
		}
	}()
	_ = MustReverseComplement("U")
}
