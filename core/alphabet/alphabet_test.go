package alphabet

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	a, err := New("0123456789")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.Len() != 10 {
		t.Fatalf("Len = %d, want 10", a.Len())
	}
	if a.First() != '0' || a.Last() != '9' {
		t.Fatalf("First/Last = %q/%q", a.First(), a.Last())
	}
	if i, ok := a.Index('7'); !ok || i != 7 {
		t.Fatalf("Index('7') = %d,%v", i, ok)
	}
	if _, ok := a.Index('x'); ok {
		t.Fatalf("Index('x') should miss")
	}
	if a.Symbol(3) != '3' {
		t.Fatalf("Symbol(3) = %q", a.Symbol(3))
	}
}

func TestNewEmpty(t *testing.T) {
	if _, err := New(""); !errors.Is(err, ErrEmpty) {
		t.Fatalf("want ErrEmpty, got %v", err)
	}
}

func TestNewDuplicate(t *testing.T) {
	_, err := New("abca")
	var dup *DuplicateSymbolError
	if !errors.As(err, &dup) {
		t.Fatalf("want DuplicateSymbolError, got %v", err)
	}
	if dup.Symbol != 'a' || dup.First != 0 || dup.Second != 3 {
		t.Fatalf("unexpected fields: %+v", dup)
	}
}

func TestOrderPreserved(t *testing.T) {
	// The alphabet order is the caller's order, not a sorted one.
	a, err := New("zya")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.First() != 'z' || a.Last() != 'a' {
		t.Fatalf("order not preserved: first=%q last=%q", a.First(), a.Last())
	}
}

func TestMultibyteSymbols(t *testing.T) {
	a, err := New("αβγ")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.Len() != 3 || a.Symbol(1) != 'β' {
		t.Fatalf("rune handling broken: len=%d sym=%q", a.Len(), a.Symbol(1))
	}
}
