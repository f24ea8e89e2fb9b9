package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether an error means the consumer went away, e.g.
// the output was piped into `head`. Treated as clean termination, not failure.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
