// Copyright 2020 Aleksandr Demakin. All rights reserved.

package radix

// Format describes how numbers of one base are written.
// The zero value of a field means "use the default" when the Format is
// passed to WithHostFormat or WithTargetFormat.
type Format struct {
	// Delimiter separates the integer part from the fractional part.
	Delimiter rune
	// Separator is inserted between digit groups by grouped rendering.
	Separator rune
	// Sign marks a number as negative. Its presence anywhere in the
	// input, not only as a prefix, makes the number negative.
	Sign rune
	// GroupSize is the number of digits per group, counted from the
	// least significant digit.
	GroupSize int
}

func (f Format) withDefaults(def Format) Format {
	if f.Delimiter == 0 {
		f.Delimiter = def.Delimiter
	}
	if f.Separator == 0 {
		f.Separator = def.Separator
	}
	if f.Sign == 0 {
		f.Sign = def.Sign
	}
	if f.GroupSize <= 0 {
		f.GroupSize = def.GroupSize
	}
	return f
}

// groupSymbols inserts sep after every size symbols, counted from the
// least significant end, so that no separator starts or ends the result.
// Leading zeros, if present, group like any other digit: "0100" -> "0,100".
func groupSymbols(symbols []rune, sep rune, size int) []rune {
	if size <= 0 || len(symbols) <= size {
		return symbols
	}
	result := make([]rune, 0, len(symbols)+(len(symbols)-1)/size)
	for i, r := range symbols {
		if i > 0 && (len(symbols)-i)%size == 0 {
			result = append(result, sep)
		}
		result = append(result, r)
	}
	return result
}
