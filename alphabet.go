// Copyright 2020 Aleksandr Demakin. All rights reserved.

package radix

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Alphabet is an ordered set of numerals defining one positional
// numeral system. The position of a numeral is its digit value, so the
// first numeral denotes zero and the radix equals the number of numerals.
// An Alphabet is immutable after construction and safe for concurrent use.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet builds an alphabet from the given numerals, one rune per numeral.
// It fails with ErrConfig for fewer than 2 numerals, and with
// ErrDuplicateNumeral if two numerals are equal under case folding.
// The folding check means an alphabet with both 'a' and 'A' is rejected,
// even though lookups themselves are case-sensitive.
func NewAlphabet(numerals string) (*Alphabet, error) {
	symbols := []rune(numerals)
	if len(symbols) < 2 {
		return nil, fmt.Errorf("%w: alphabet needs at least 2 numerals, got %d", ErrConfig, len(symbols))
	}
	fold := cases.Fold()
	seen := make(map[string]struct{}, len(symbols))
	index := make(map[rune]int, len(symbols))
	for i, r := range symbols {
		folded := fold.String(string(r))
		if _, ok := seen[folded]; ok {
			return nil, fmt.Errorf("%w: %q at pos %d", ErrDuplicateNumeral, r, i+1)
		}
		seen[folded] = struct{}{}
		index[r] = i
	}
	return &Alphabet{symbols: symbols, index: index}, nil
}

// MustAlphabet is like NewAlphabet, but panics on error.
// Useful for initialization of global variables.
func MustAlphabet(numerals string) *Alphabet {
	a, err := NewAlphabet(numerals)
	if err != nil {
		panic(err)
	}
	return a
}

// Radix returns the number of numerals in the alphabet.
func (a *Alphabet) Radix() int {
	return len(a.symbols)
}

// IndexOf returns the digit value of the given numeral.
func (a *Alphabet) IndexOf(r rune) (int, error) {
	i, ok := a.index[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNumeral, r)
	}
	return i, nil
}

// SymbolOf returns the numeral for the given digit value.
func (a *Alphabet) SymbolOf(i int) (rune, error) {
	if i < 0 || i >= len(a.symbols) {
		return 0, fmt.Errorf("%w: no numeral for digit %d in a base %d alphabet", ErrUnknownNumeral, i, len(a.symbols))
	}
	return a.symbols[i], nil
}

// String returns all numerals in digit-value order.
func (a *Alphabet) String() string {
	return string(a.symbols)
}

func (a *Alphabet) zero() rune {
	return a.symbols[0]
}
