// core/sequence/reader.go
package sequence

import "io"

// Reader adapts a Generator to io.Reader, producing one newline-terminated
// record per value. It also implements io.WriterTo, so io.Copy streams the
// whole sequence without an intermediate buffer.
type Reader struct {
	g   *Generator
	rec []byte // pending bytes of the current record
}

// NewReader wraps g. The Generator must not be advanced elsewhere while the
// Reader is in use.
func NewReader(g *Generator) *Reader { return &Reader{g: g} }

// Read copies as many whole records as fit into p. Records are never split
// across calls; if p cannot hold even one record, Read returns
// io.ErrShortBuffer. io.EOF signals exhaustion.
func (r *Reader) Read(p []byte) (int, error) {
	if len(r.rec) == 0 && !r.fill() {
		return 0, io.EOF
	}
	if len(p) < len(r.rec) {
		return 0, io.ErrShortBuffer
	}
	n := 0
	for len(r.rec) > 0 && len(p)-n >= len(r.rec) {
		n += copy(p[n:], r.rec)
		r.rec = r.rec[:0]
		if !r.fill() {
			break
		}
	}
	return n, nil
}

// WriteTo drains the Generator into w.
func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for {
		if len(r.rec) == 0 && !r.fill() {
			return total, nil
		}
		n, err := w.Write(r.rec)
		total += int64(n)
		if err != nil {
			r.rec = r.rec[n:]
			return total, err
		}
		r.rec = r.rec[:0]
	}
}

// fill loads the next record into rec; false at exhaustion.
func (r *Reader) fill() bool {
	rec, ok := r.g.NextAppend(r.rec[:0])
	if !ok {
		return false
	}
	r.rec = append(rec, '\n')
	return true
}
