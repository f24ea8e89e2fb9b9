// core/sequence/value.go
package sequence

import (
	"errors"
	"fmt"

	"dicgen-core/alphabet"
)

// ErrInvalidRange is returned when init exceeds end under the alphabet order.
var ErrInvalidRange = errors.New("sequence: init is greater than end")

// InvalidSymbolError reports a bound character missing from the alphabet.
type InvalidSymbolError struct {
	Symbol   rune
	Pos      int // rune position within the input string
	Alphabet string
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("sequence: symbol %q at position %d not in alphabet %q", e.Symbol, e.Pos, e.Alphabet)
}

// Value is a fixed-width positional numeral over an alphabet: digit values,
// most significant first. Width never changes after construction.
type Value []int

// Parse maps each rune of s to its digit value in a.
func Parse(a *alphabet.Alphabet, s string) (Value, error) {
	rs := []rune(s)
	v := make(Value, len(rs))
	for i, r := range rs {
		d, ok := a.Index(r)
		if !ok {
			return nil, &InvalidSymbolError{Symbol: r, Pos: i, Alphabet: a.String()}
		}
		v[i] = d
	}
	return v, nil
}

// Render is the inverse of Parse. Leading zero symbols are kept, so the
// rendered width always equals the value's width.
func (v Value) Render(a *alphabet.Alphabet) string {
	out := make([]rune, len(v))
	for i, d := range v {
		out[i] = a.Symbol(d)
	}
	return string(out)
}

// Increment advances v to its successor in place, carrying from the least
// significant digit. It reports overflow when the carry leaves the most
// significant digit; v is then the all-zero value and holds no successor.
func (v Value) Increment(a *alphabet.Alphabet) (overflow bool) {
	last := a.Len() - 1
	for i := len(v) - 1; i >= 0; i-- {
		if v[i] != last {
			v[i]++
			return false
		}
		v[i] = 0
	}
	return true
}

// Compare orders two equal-width values digit-wise, most significant first.
func (v Value) Compare(o Value) int {
	for i := range v {
		switch {
		case v[i] < o[i]:
			return -1
		case v[i] > o[i]:
			return 1
		}
	}
	return 0
}

// Equal reports structural equality.
func (v Value) Equal(o Value) bool { return v.Compare(o) == 0 }

// padLeft returns v widened to width digits with leading zeros.
func (v Value) padLeft(width int) Value {
	if len(v) >= width {
		return v
	}
	w := make(Value, width)
	copy(w[width-len(v):], v)
	return w
}
