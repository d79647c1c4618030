package sam

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngsio-core/interval"
)

const fixture = "@HD\tVN:1.6\tSO:coordinate\n" +
	"@SQ\tSN:chrI\tLN:35\n" +
	"@SQ\tSN:chrII\tLN:34\n" +
	"read1\t0\tchrI\t1\t60\t5M\t*\t0\t0\tATCGT\tIIIII\tNM:i:0\n" +
	"read2\t16\tchrI\t11\t60\t5M\t=\t30\t-24\tTGCGA\tIIIII\n" +
	"read3\t4\t*\t0\t0\t*\t*\t0\t0\tGGGGG\tIIIII\n" +
	"\n" +
	"read4\t0\tchrII\t25\t13\t3M\t*\t0\t0\tGTA\t*\n"

func TestParseLine(t *testing.T) {
	r, err := ParseLine("read2\t16\tchrI\t11\t60\t5M\t=\t30\t-24\tTGCGA\tIIIII\tNM:i:1\tMD:Z:5")
	require.NoError(t, err)
	assert.Equal(t, "read2", r.QName)
	assert.Equal(t, FlagReverse, r.Flag)
	assert.Equal(t, "chrI", r.RName)
	assert.Equal(t, 10, r.Pos)
	assert.Equal(t, 60, r.MapQ)
	assert.Equal(t, "5M", r.Cigar)
	assert.Equal(t, "chrI", r.RNext)
	assert.Equal(t, 29, r.PNext)
	assert.Equal(t, -24, r.TLen)
	assert.Equal(t, "TGCGA", r.Seq)
	assert.Equal(t, []string{"NM:i:1", "MD:Z:5"}, r.Tags)
	assert.True(t, r.Aligned())
	assert.True(t, r.ReverseComplemented())

	v, typ, ok := r.Tag("MD")
	assert.True(t, ok)
	assert.Equal(t, byte('Z'), typ)
	assert.Equal(t, "5", v)
	_, _, ok = r.Tag("XS")
	assert.False(t, ok)
}

func TestParseLineMissingValues(t *testing.T) {
	r, err := ParseLine("read3\t4\t*\t0\t0\t*\t*\t0\t0\t*\t*")
	require.NoError(t, err)
	assert.Empty(t, r.RName)
	assert.Empty(t, r.Cigar)
	assert.Empty(t, r.RNext)
	assert.Empty(t, r.Seq)
	assert.Empty(t, r.Qual)
	assert.Equal(t, -1, r.Pos)
	assert.Equal(t, -1, r.PNext)
	assert.False(t, r.Aligned())

	_, err = r.Interval()
	assert.ErrorIs(t, err, ErrUnaligned)
}

func TestParseLineMalformed(t *testing.T) {
	for _, line := range []string{
		"too\tfew\tcolumns",
		"r\tX\tchrI\t1\t60\t5M\t*\t0\t0\tATCGT\tIIIII",
		"r\t0\tchrI\tone\t60\t5M\t*\t0\t0\tATCGT\tIIIII",
		"r\t70000\tchrI\t1\t60\t5M\t*\t0\t0\tATCGT\tIIIII",
	} {
		_, err := ParseLine(line)
		assert.ErrorIs(t, err, ErrMalformed, line)
	}
}

func TestReadInterval(t *testing.T) {
	fwd, err := ParseLine("read1\t0\tchrI\t1\t60\t5M\t*\t0\t0\tATCGT\tIIIII")
	require.NoError(t, err)
	iv, err := fwd.Interval()
	require.NoError(t, err)
	assert.Equal(t, "chrI:0-5(+)", iv.String())
	assert.Equal(t, "ATCGT", iv.Sequence())

	rev, err := ParseLine("read2\t16\tchrI\t11\t60\t5M\t*\t0\t0\ttgcga\tIIIII")
	require.NoError(t, err)
	iv, err = rev.Interval()
	require.NoError(t, err)
	assert.Equal(t, interval.Reverse, iv.Orientation())
	assert.Equal(t, "TGCGA", iv.Raw())
	assert.Equal(t, "TCGCA", iv.Sequence())

	// Flagged unmapped even though a position is present.
	placed, err := ParseLine("read5\t4\tchrI\t3\t0\t*\t*\t0\t0\tAAA\tIII")
	require.NoError(t, err)
	_, err = placed.Interval()
	assert.ErrorIs(t, err, ErrUnaligned)
}

func TestReadIntervalFromCigar(t *testing.T) {
	r, err := ParseLine("read6\t0\tchrI\t5\t60\t2S3M1D2M\t*\t0\t0\t*\t*")
	require.NoError(t, err)
	iv, err := r.Interval()
	require.NoError(t, err)
	assert.Equal(t, 4, iv.Start())
	assert.Equal(t, 10, iv.Stop())
	assert.Equal(t, "NNNNNN", iv.Raw())
}

func TestRefLen(t *testing.T) {
	cases := map[string]int{
		"":           0,
		"10M":        10,
		"3S5M2I4M":   9,
		"5M100N5M":   110,
		"2H3=1X4D2M": 10,
		"1P2M":       2,
	}
	for cigar, want := range cases {
		got, err := RefLen(cigar)
		require.NoError(t, err, cigar)
		assert.Equal(t, want, got, cigar)
	}
	for _, bad := range []string{"M", "5", "5Q", "5M3"} {
		_, err := RefLen(bad)
		assert.ErrorIs(t, err, ErrMalformed, bad)
	}
}

func TestScanSkipsHeaders(t *testing.T) {
	var names []string
	err := Scan(strings.NewReader(fixture), func(r Read) error {
		names = append(names, r.QName)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"read1", "read2", "read3", "read4"}, names)
}

func TestScanStop(t *testing.T) {
	n := 0
	err := Scan(strings.NewReader(fixture), func(Read) error {
		n++
		return ErrStop
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestScanReportsLine(t *testing.T) {
	err := Scan(strings.NewReader("@HD\tVN:1.6\nbroken\n"), func(Read) error { return nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "line 2")
}

func TestScanAligned(t *testing.T) {
	var (
		got     []string
		skipped []string
	)
	err := ScanAligned(strings.NewReader(fixture), func(r Read, iv interval.Interval) error {
		got = append(got, iv.String()+" "+iv.Sequence())
		return nil
	}, func(r Read) { skipped = append(skipped, r.QName) })
	require.NoError(t, err)
	assert.Equal(t, []string{
		"chrI:0-5(+) ATCGT",
		"chrI:10-15(-) TCGCA",
		"chrII:24-27(+) GTA",
	}, got)
	assert.Equal(t, []string{"read3"}, skipped)
}
