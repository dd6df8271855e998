// Copyright 2020 Aleksandr Demakin. All rights reserved.

package radix

import "strings"

// Result is the outcome of one conversion: digit indices of the
// destination base plus everything needed to render them.
// A Result is immutable.
type Result struct {
	negative bool
	integer  []int
	fraction []int
	base     *base
}

// Negative reports whether the number is negative.
func (r Result) Negative() bool {
	return r.negative
}

// IntegerDigits returns the digit indices of the integer part,
// most significant first. Zero is the single digit [0].
func (r Result) IntegerDigits() []int {
	return append([]int(nil), r.integer...)
}

// FractionDigits returns the digit indices of the fractional part in
// display order, or nil if the number has no fractional part.
// The fraction keeps exactly as many digits as the input had.
func (r Result) FractionDigits() []int {
	if r.fraction == nil {
		return nil
	}
	return append([]int(nil), r.fraction...)
}

// Symbols returns the rendered numerals, including the negative sign
// and the fractional delimiter where present.
func (r Result) Symbols() []rune {
	return r.render(false)
}

// String renders the number with the destination base's numerals.
func (r Result) String() string {
	return string(r.render(false))
}

// Grouped renders like String, with the base's group separator inserted
// into the integer part every GroupSize digits.
func (r Result) Grouped() string {
	return string(r.render(true))
}

func (r Result) render(grouped bool) []rune {
	if r.base == nil {
		return nil
	}
	integer := r.numerals(r.integer)
	if grouped {
		integer = groupSymbols(integer, r.base.format.Separator, r.base.format.GroupSize)
	}
	out := make([]rune, 0, len(integer)+len(r.fraction)+2)
	if r.negative {
		out = append(out, r.base.format.Sign)
	}
	out = append(out, integer...)
	if r.fraction != nil {
		out = append(out, r.base.format.Delimiter)
		out = append(out, r.numerals(r.fraction)...)
	}
	return out
}

// numerals maps digit indices back to symbols. Conversion only produces
// indices within the alphabet, so the lookup cannot miss.
func (r Result) numerals(digits []int) []rune {
	symbols := make([]rune, len(digits))
	for i, d := range digits {
		symbols[i] = r.base.alphabet.symbols[d]
	}
	return symbols
}

// GoString returns a debug representation.
func (r Result) GoString() string {
	var b strings.Builder
	b.WriteString(r.String())
	b.WriteString(" {")
	if r.base != nil {
		b.WriteString(r.base.name)
	}
	b.WriteString("}")
	return b.String()
}
