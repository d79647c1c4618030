// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"sync"

	"ngsio/internal/runutil"
)

// Warnf writes one WARN line to dst unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Logger is the diagnostics sink of one command run. Warnings are on unless
// Quiet; debug lines only with Verbose. Safe for concurrent use.
type Logger struct {
	mu      sync.Mutex
	dst     io.Writer
	Quiet   bool
	Verbose bool

	warned int
	once   *runutil.LRUSet[string]
}

// NewLogger writes diagnostics to dst.
func NewLogger(dst io.Writer, quiet, verbose bool) *Logger {
	return &Logger{dst: dst, Quiet: quiet, Verbose: verbose}
}

func (l *Logger) Warnf(format string, a ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warned++
	Warnf(l.dst, l.Quiet, format, a...)
}

func (l *Logger) Debugf(format string, a ...any) {
	if !l.Verbose {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.dst, "DEBUG: "+format+"\n", a...)
}

// WarnOnce is Warnf for messages that would repeat for every record, such as
// a missing chromosome. Only the first call per key is printed.
func (l *Logger) WarnOnce(key, format string, a ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warned++
	if l.once == nil {
		l.once = runutil.NewLRUSet[string](0)
	}
	if l.once.Add(key) {
		return
	}
	Warnf(l.dst, l.Quiet, format, a...)
}

// Warnings counts Warnf and WarnOnce calls, including suppressed ones.
func (l *Logger) Warnings() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.warned
}
