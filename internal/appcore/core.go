// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"ngsio/internal/cmdutil"
	"ngsio/internal/pipeline"
	"ngsio/internal/writers"
	"ngsio/pkg/api"
)

// Exit codes shared by every command.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitRuntime  = 3
	ExitCanceled = 130
)

type Options struct {
	Quiet           bool
	NoMatchExitCode int
	BufSize         int
	Threads         int // 1 visits on the calling goroutine; 0 = all CPUs
}

// InputError marks a failure caused by the input files or arguments rather
// than by the output side. Run maps it to ExitUsage.
type InputError struct{ Err error }

func (e InputError) Error() string { return e.Err.Error() }
func (e InputError) Unwrap() error { return e.Err }

// Input wraps err as an InputError; nil stays nil.
func Input(err error) error {
	if err == nil {
		return nil
	}
	return InputError{Err: err}
}

type VisitorFunc[T any] func(T) (keep bool, out api.SliceV1, err error)

type WriterFactory interface {
	NeedSeq() bool
	Start(out io.Writer, bufSize int) (chan<- api.SliceV1, <-chan error)
}

// Run streams everything produce emits through visit into the writer and
// turns the outcome into an exit code.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	produce func(emit func(T) error) error,
	visit VisitorFunc[T],
	wf WriterFactory,
) int {
	outw := bufio.NewWriter(stdout)

	bufSize := o.BufSize
	if bufSize <= 0 {
		bufSize = 64
	}
	inCh, writeErr := wf.Start(outw, bufSize)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	send := func(x api.SliceV1) error {
		select {
		case inCh <- x:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	var (
		total int
		perr  error
	)
	if o.Threads == 1 {
		total, perr = cmdutil.RunStream[T, api.SliceV1](ctx, produce, visit, send)
	} else {
		total, perr = pipeline.Ordered[T, api.SliceV1](ctx, pipeline.Config{Threads: o.Threads}, produce, visit, send)
	}

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return ExitRuntime
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return ExitRuntime
	}

	if perr != nil {
		var in InputError
		switch {
		case errors.Is(perr, context.Canceled):
			return ExitCanceled
		case errors.As(perr, &in):
			fmt.Fprintln(stderr, "error:", perr)
			return ExitUsage
		}
		fmt.Fprintln(stderr, "error:", perr)
		return ExitRuntime
	}
	if total == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}
