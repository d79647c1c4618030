package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is the signature every command entry point implements.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs run with a context cancelled on SIGINT/SIGTERM and exits with its
// code.
func Main(run RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Invoke(ctx, run, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// Invoke calls run, showing help for an empty command line and mapping a
// cancelled context to exit code 130.
func Invoke(ctx context.Context, run RunFunc, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		argv = []string{"--help"}
	}
	code := run(ctx, argv, stdout, stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
