// Copyright 2020 Aleksandr Demakin. All rights reserved.

package radix

import (
	"fmt"
	"strings"
)

// parsed is the outcome of splitting a raw input string:
// digit indices of the source alphabet, most significant first.
// fraction is nil if the input had no fractional part.
type parsed struct {
	neg      bool
	integer  []int
	fraction []int
}

// parseNumber validates raw against b and splits it into sign, integer
// and fractional digit indices. The length bound is checked before
// anything else, so no arithmetic runs on oversized inputs.
func parseNumber(raw string, b *base, maxLen int, stripZeros bool) (parsed, error) {
	symbols := []rune(raw)
	if len(symbols) > maxLen {
		return parsed{}, fmt.Errorf("%w: %d symbols, at most %d allowed", ErrNumberTooLong, len(symbols), maxLen)
	}
	// The sign makes the number negative wherever it occurs, not only as a prefix.
	neg := strings.ContainsRune(raw, b.format.Sign)
	s := strings.ReplaceAll(raw, string(b.format.Sign), "")
	if stripZeros {
		s = strings.TrimLeft(s, string(b.alphabet.zero()))
	}
	if len(s) == 0 {
		return parsed{}, ErrEmptyInput
	}
	if err := validate(s, b); err != nil {
		return parsed{}, err
	}
	s = strings.ReplaceAll(s, string(b.format.Separator), "")
	if len(s) == 0 {
		return parsed{}, ErrEmptyInput
	}
	intPart, fracPart, hasFrac := strings.Cut(s, string(b.format.Delimiter))
	if i := strings.IndexRune(fracPart, b.format.Delimiter); i >= 0 {
		return parsed{}, fmt.Errorf("%w: second delimiter %q", ErrInvalidNumeral, b.format.Delimiter)
	}
	integer, err := toIndices(intPart, b.alphabet)
	if err != nil {
		return parsed{}, err
	}
	if len(integer) == 0 { // an empty integer part denotes zero
		integer = []int{0}
	}
	var fraction []int
	if hasFrac && len(fracPart) > 0 {
		if fraction, err = toIndices(fracPart, b.alphabet); err != nil {
			return parsed{}, err
		}
	}
	return parsed{neg: neg, integer: integer, fraction: fraction}, nil
}

// validate checks that every symbol of s is a numeral of the base's
// alphabet, its fractional delimiter, or its group separator.
// The sign has already been stripped at this point.
func validate(s string, b *base) error {
	pos := 0
	for _, r := range s {
		pos++
		if r == b.format.Delimiter || r == b.format.Separator {
			continue
		}
		if _, ok := b.alphabet.index[r]; !ok {
			return fmt.Errorf("%w: symbol %q at pos %d", ErrInvalidNumeral, r, pos)
		}
	}
	return nil
}

// toIndices maps numerals to their digit values, most significant first.
func toIndices(s string, a *Alphabet) ([]int, error) {
	if len(s) == 0 {
		return nil, nil
	}
	digits := make([]int, 0, len(s))
	for _, r := range s {
		d, err := a.IndexOf(r)
		if err != nil {
			return nil, err
		}
		digits = append(digits, d)
	}
	return digits, nil
}
