// core/alphabet/alphabet.go
package alphabet

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when an alphabet has no symbols.
var ErrEmpty = errors.New("alphabet: no symbols")

// DuplicateSymbolError reports a symbol that occurs more than once.
// Duplicates are rejected eagerly so the digit mapping stays unambiguous.
type DuplicateSymbolError struct {
	Symbol rune
	First  int // rune positions of the two occurrences
	Second int
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("alphabet: duplicate symbol %q at positions %d and %d", e.Symbol, e.First, e.Second)
}

// Alphabet is an ordered set of distinct symbols defining a base-N numeral
// system: a symbol's position is its digit value. Immutable once built.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// New builds an Alphabet from the runes of symbols, in the order given.
func New(symbols string) (*Alphabet, error) {
	rs := []rune(symbols)
	if len(rs) == 0 {
		return nil, ErrEmpty
	}
	idx := make(map[rune]int, len(rs))
	for i, r := range rs {
		if j, dup := idx[r]; dup {
			return nil, &DuplicateSymbolError{Symbol: r, First: j, Second: i}
		}
		idx[r] = i
	}
	return &Alphabet{symbols: rs, index: idx}, nil
}

// Len returns the base of the numeral system.
func (a *Alphabet) Len() int { return len(a.symbols) }

// Symbol returns the symbol with digit value i.
func (a *Alphabet) Symbol(i int) rune { return a.symbols[i] }

// Index returns the digit value of r, or false when r is not in the alphabet.
func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// First returns the zero symbol (digit value 0).
func (a *Alphabet) First() rune { return a.symbols[0] }

// Last returns the symbol with the highest digit value.
func (a *Alphabet) Last() rune { return a.symbols[len(a.symbols)-1] }

func (a *Alphabet) String() string { return string(a.symbols) }
