// internal/writers/destination.go
package writers

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

const defaultBufSize = 64 * 1024

// Destination is a buffered line sink with a guaranteed-release Close.
type Destination struct {
	w    *bufio.Writer
	file *os.File // nil when writing to an existing stream
}

// Open prepares the output sink: an empty path means the provided stream
// (normally stdout), anything else creates/truncates the file.
// bufSize <= 0 picks the default.
func Open(path string, stream io.Writer, bufSize int) (*Destination, error) {
	if bufSize <= 0 {
		bufSize = defaultBufSize
	}
	if path == "" {
		return &Destination{w: bufio.NewWriterSize(stream, bufSize)}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Destination{w: bufio.NewWriterSize(f, bufSize), file: f}, nil
}

// WriteLine emits one record plus newline and returns the bytes written.
func (d *Destination) WriteLine(rec []byte) (int, error) {
	n, err := d.w.Write(rec)
	if err != nil {
		return n, err
	}
	if err := d.w.WriteByte('\n'); err != nil {
		return n, err
	}
	return n + 1, nil
}

// Close flushes buffered output and releases the file (if any). It must run
// on every exit path so a failed run is never silently truncated.
func (d *Destination) Close() error {
	err := d.w.Flush()
	if d.file != nil {
		if cerr := d.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
