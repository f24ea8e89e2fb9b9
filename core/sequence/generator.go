// core/sequence/generator.go
package sequence

import (
	"math/big"
	"strings"
	"unicode/utf8"

	"dicgen-core/alphabet"
)

// Option configures a Generator.
type Option func(*Generator)

// WithPrefix prepends a literal to every rendered value.
// The prefix does not count toward the value width.
func WithPrefix(p string) Option { return func(g *Generator) { g.prefix = p } }

// WithSuffix appends a literal to every rendered value.
func WithSuffix(s string) Option { return func(g *Generator) { g.suffix = s } }

// Generator enumerates every value from init to end inclusive, in ascending
// numeral order. It is forward-only and holds O(width) state regardless of
// range size; a finished Generator is restarted with Reset or a fresh New.
type Generator struct {
	alpha  *alphabet.Alphabet
	cursor Value
	end    Value
	prefix string
	suffix string
	done   bool
}

// New builds a Generator over a for the inclusive bounds init..end.
// Bounds of unequal width are left-padded with the alphabet's first symbol
// to the wider width; ErrInvalidRange is returned when init > end after
// padding.
func New(a *alphabet.Alphabet, init, end string, opts ...Option) (*Generator, error) {
	iv, err := Parse(a, init)
	if err != nil {
		return nil, err
	}
	ev, err := Parse(a, end)
	if err != nil {
		return nil, err
	}
	width := len(iv)
	if len(ev) > width {
		width = len(ev)
	}
	iv = iv.padLeft(width)
	ev = ev.padLeft(width)
	if iv.Compare(ev) > 0 {
		return nil, ErrInvalidRange
	}
	g := &Generator{alpha: a, cursor: iv, end: ev}
	for _, o := range opts {
		o(g)
	}
	return g, nil
}

// NewFromStart is New with init set to the all-first-symbol value at end's
// width.
func NewFromStart(a *alphabet.Alphabet, end string, opts ...Option) (*Generator, error) {
	init := strings.Repeat(string(a.First()), utf8.RuneCountInString(end))
	return New(a, init, end, opts...)
}

// Width returns the fixed digit width of every generated value.
func (g *Generator) Width() int { return len(g.end) }

// Next yields the rendering of the current value and advances the cursor.
// The second result is false once the sequence is exhausted.
func (g *Generator) Next() (string, bool) {
	if g.done {
		return "", false
	}
	var b strings.Builder
	b.Grow(len(g.prefix) + len(g.cursor)*utf8.UTFMax + len(g.suffix))
	b.WriteString(g.prefix)
	for _, d := range g.cursor {
		b.WriteRune(g.alpha.Symbol(d))
	}
	b.WriteString(g.suffix)
	g.advance()
	return b.String(), true
}

// NextAppend appends the next record (without a line terminator) to dst and
// reports whether a record was produced. Callers reuse one buffer across the
// whole run to keep the emit loop allocation-free.
func (g *Generator) NextAppend(dst []byte) ([]byte, bool) {
	if g.done {
		return dst, false
	}
	dst = append(dst, g.prefix...)
	for _, d := range g.cursor {
		dst = utf8.AppendRune(dst, g.alpha.Symbol(d))
	}
	dst = append(dst, g.suffix...)
	g.advance()
	return dst, true
}

// advance moves the cursor past the value just yielded. Termination is by
// structural equality with end, checked after each yield so the final value
// is always included; overflow past the most significant digit also ends
// the sequence.
func (g *Generator) advance() {
	if g.cursor.Equal(g.end) {
		g.done = true
		return
	}
	if g.cursor.Increment(g.alpha) {
		g.done = true
	}
}

// Reset rewinds the cursor to init, keeping the alphabet, bounds, width and
// any prefix/suffix.
func (g *Generator) Reset(init string) error {
	iv, err := Parse(g.alpha, init)
	if err != nil {
		return err
	}
	for len(iv) > len(g.end) && iv[0] == 0 {
		iv = iv[1:]
	}
	if len(iv) > len(g.end) {
		return ErrInvalidRange
	}
	iv = iv.padLeft(len(g.end))
	if iv.Compare(g.end) > 0 {
		return ErrInvalidRange
	}
	g.cursor = iv
	g.done = false
	return nil
}

// Count returns the exact number of values the Generator has yet to yield
// (end - cursor + 1 in base-N), which can exceed any machine integer.
func (g *Generator) Count() *big.Int {
	n := new(big.Int)
	if g.done {
		return n
	}
	base := big.NewInt(int64(g.alpha.Len()))
	d := new(big.Int)
	for i := range g.end {
		n.Mul(n, base)
		n.Add(n, d.SetInt64(int64(g.end[i]-g.cursor[i])))
	}
	return n.Add(n, d.SetInt64(1))
}
