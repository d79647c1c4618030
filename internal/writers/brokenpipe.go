package writers

import (
	"errors"
	"io"
	"io/fs"
	"syscall"
)

// IsBrokenPipe reports whether err means the reader of our output went away,
// as when `ngsio slice ... | head` stops early. Commands treat it as success.
func IsBrokenPipe(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, syscall.EPIPE), errors.Is(err, syscall.ECONNRESET):
		return true
	}
	return errors.Is(err, io.ErrClosedPipe) || errors.Is(err, fs.ErrClosed)
}
