package fasta

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/biogo/hts/fai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaiIndexMatchesSamtoolsLayout(t *testing.T) {
	recs := [][2]string{{"chrI", chrI}, {"chrII", chrII}}
	for _, width := range []int{10, 16, 60} {
		data := wrap(width, "\n", recs...)
		s := openFasta(t, data)

		got, skipped := s.FaiIndex()
		assert.Empty(t, skipped)

		want, err := fai.NewIndex(strings.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, want, got, "width %d", width)
	}
}

func TestFaiIndexSkipsRagged(t *testing.T) {
	s := openFasta(t, ragged)

	idx, skipped := s.FaiIndex()
	assert.Equal(t, []string{"chrI"}, skipped)
	require.Contains(t, idx, "chrII")
	assert.Equal(t, 34, idx["chrII"].Length)
}

func TestFaiIndexRoundTrip(t *testing.T) {
	data := wrap(10, "\n", [2]string{"chrI", chrI}, [2]string{"chrII", chrII})
	fn := writeFasta(t, data)
	s, err := Open(fn)
	require.NoError(t, err)
	defer s.Close()

	idx, _ := s.FaiIndex()
	var buf bytes.Buffer
	require.NoError(t, fai.WriteTo(&buf, idx))
	back, err := fai.ReadFrom(&buf)
	require.NoError(t, err)
	assert.Equal(t, idx, back)

	fh, err := os.Open(fn)
	require.NoError(t, err)
	defer fh.Close()
	f := fai.NewFile(fh, back)
	for _, r := range []Range{{Start: 0, Stop: 10}, {Start: 8, Stop: 23}, {Start: 24, Stop: 27}} {
		seq, err := f.SeqRange("chrII", r.Start, r.Stop)
		require.NoError(t, err)
		oracle, err := io.ReadAll(seq)
		require.NoError(t, err)

		ours, err := s.Slice("chrII", r.Start, r.Stop)
		require.NoError(t, err)
		assert.Equal(t, string(oracle), ours)
	}
}
