// core/nucleotide/complement.go
package nucleotide

import (
	"errors"
	"fmt"
)

// ErrUnknownSymbol is returned when a character has no IUPAC complement.
var ErrUnknownSymbol = errors.New("nucleotide: unknown symbol")

// Alphabet lists the recognized upper-case symbols.
const Alphabet = "ACGTNSWRYKMDHVB"

var complement [256]byte

func init() {
	pair := func(a, b byte) {
		complement[a], complement[b] = b, a
		complement[a+'a'-'A'], complement[b+'a'-'A'] = b+'a'-'A', a+'a'-'A'
	}
	pair('A', 'T')
	pair('C', 'G')
	pair('R', 'Y') // A/G <-> C/T
	pair('K', 'M') // G/T <-> A/C
	pair('D', 'H') // not C <-> not G
	pair('V', 'B') // not T <-> not A
	pair('N', 'N')
	pair('S', 'S') // C/G
	pair('W', 'W') // A/T
}

// Complement returns the IUPAC complement of b. Lower-case input yields
// lower-case output.
func Complement(b byte) (byte, bool) {
	c := complement[b]
	return c, c != 0
}

// Validate reports the first symbol in s that is outside the alphabet.
func Validate(s string) error {
	for i := 0; i < len(s); i++ {
		if complement[s[i]] == 0 {
			return fmt.Errorf("%w %q at %d", ErrUnknownSymbol, s[i], i+1)
		}
	}
	return nil
}

// ReverseComplement reverses s and complements every symbol.
// Applying it twice returns the input unchanged.
func ReverseComplement(s string) (string, error) {
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[s[n-1-i]]
		if c == 0 {
			return "", fmt.Errorf("%w %q at %d", ErrUnknownSymbol, s[n-1-i], n-i)
		}
		out[i] = c
	}
	return string(out), nil
}

// MustReverseComplement is ReverseComplement for inputs already known to be
// valid. It panics otherwise.
func MustReverseComplement(s string) string {
	rc, err := ReverseComplement(s)
	if err != nil {
		panic(err)
	}
	return rc
}
