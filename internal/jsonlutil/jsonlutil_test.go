package jsonlutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
)

type row struct {
	N int `json:"n"`
}

func TestStartStreamsLines(t *testing.T) {
	var buf bytes.Buffer
	in, done := Start[int](&buf, 1, func(enc *json.Encoder, v int) error {
		return enc.Encode(row{N: v})
	}, nil)
	for i := 1; i <= 3; i++ {
		in <- i
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "{\"n\":1}\n{\"n\":2}\n{\"n\":3}\n" {
		t.Fatalf("got %q", got)
	}
}

func TestStartDrainsAfterError(t *testing.T) {
	boom := errors.New("boom")
	in, done := Start[int](io.Discard, 1, func(*json.Encoder, int) error { return boom }, nil)
	// Must not block even though every encode fails.
	for i := 0; i < 10; i++ {
		in <- i
	}
	close(in)
	if err := <-done; !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
}

func TestStartSuppressesBrokenPipe(t *testing.T) {
	pipe := errors.New("pipe closed")
	in, done := Start[int](io.Discard, 1, func(*json.Encoder, int) error { return pipe },
		func(err error) bool { return err != nil && strings.Contains(err.Error(), "pipe") })
	in <- 1
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("broken pipe should be suppressed, got %v", err)
	}
}
