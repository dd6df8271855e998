// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package arith implements radix conversion over interchangeable
// arithmetic backends. The algorithms are written once against the
// Ops primitive set; backends differ only in how they add and divide.
package arith

import "errors"

// ErrEmptyDigits reports an empty digit sequence passed to FromDigits.
var ErrEmptyDigits = errors.New("empty digit sequence")

// Ops is the primitive set a conversion backend provides.
// M is the backend's magnitude type; values are never negative here,
// signs are handled outside the arithmetic core.
type Ops[M any] interface {
	Zero() M
	FromInt(v int) M
	Add(a, b M) M
	Sub(a, b M) M
	Mul(a, b M) M
	// Quo divides a by b, carried to the backend's working precision.
	Quo(a, b M) M
	// QuoRem returns the integer quotient and the remainder of a and b.
	QuoRem(a, b M) (q, r M)
	Floor(a M) M
	// Round rounds half up to the given number of decimal places.
	Round(a M, places int) M
	Cmp(a, b M) int
	IsZero(a M) bool
	// Int returns a as an int. Exact only for digit-sized values.
	Int(a M) int
}

// FromDigits folds digit indices, most significant first, into a
// magnitude using Horner's rule.
func FromDigits[M any](ops Ops[M], base int, digits []int) (M, error) {
	if len(digits) == 0 {
		var zero M
		return zero, ErrEmptyDigits
	}
	b := ops.FromInt(base)
	m := ops.Zero()
	for _, d := range digits {
		m = ops.Add(ops.Mul(m, b), ops.FromInt(d))
	}
	return m, nil
}

// ToDigits expands a magnitude into digit indices of the given base,
// most significant first. A zero magnitude yields [0].
func ToDigits[M any](ops Ops[M], m M, base int) []int {
	if ops.IsZero(m) {
		return []int{0}
	}
	b := ops.FromInt(base)
	var digits []int
	for !ops.IsZero(m) {
		q, r := ops.QuoRem(m, b)
		digits = append(digits, ops.Int(r))
		m = q
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits
}

// FracToIntermediate accumulates fractional digits of the given base
// into a decimal fraction rounded half up to len(digits) places.
// One extra zero position is carried before rounding, which damps
// truncation error in the float backend.
// Rounding an all-max-digit fraction like 0.zz in base 36 can reach
// exactly 1; the result is capped at 1-10^-resolution so that
// IntermediateToFrac never sees a value outside [0, 1).
func FracToIntermediate[M any](ops Ops[M], base int, digits []int) M {
	resolution := len(digits)
	b := ops.FromInt(base)
	pow := b
	sum := ops.Zero()
	for i := 0; i <= resolution; i++ {
		d := 0
		if i < resolution {
			d = digits[i]
		}
		sum = ops.Add(sum, ops.Quo(ops.FromInt(d), pow))
		pow = ops.Mul(pow, b)
	}
	sum = ops.Round(sum, resolution)
	one := ops.FromInt(1)
	if ops.Cmp(sum, one) >= 0 {
		ten := ops.FromInt(10)
		places := one
		for i := 0; i < resolution; i++ {
			places = ops.Mul(places, ten)
		}
		sum = ops.Sub(one, ops.Quo(one, places))
	}
	return sum
}

// IntermediateToFrac expands a decimal fraction into exactly resolution
// digits of the given base. All digits but the last are floored; the
// last is rounded half up and clamped to base-1, so rounding can never
// produce an index outside the target alphabet.
func IntermediateToFrac[M any](ops Ops[M], frac M, base, resolution int) []int {
	if resolution <= 0 {
		return nil
	}
	b := ops.FromInt(base)
	digits := make([]int, 0, resolution)
	pointer := ops.Mul(frac, b)
	for i := 1; i <= resolution; i++ {
		if i > 1 {
			pointer = ops.Mul(ops.Sub(pointer, ops.Floor(pointer)), b)
		}
		if i < resolution {
			d := ops.Int(ops.Floor(pointer))
			// the float backend cannot represent the capped intermediate
			// beyond 16 significant digits, so it may still reach 1 here
			if d >= base {
				d = base - 1
			}
			digits = append(digits, d)
			continue
		}
		d := ops.Int(ops.Round(pointer, 0))
		if d >= base {
			d = base - 1
		}
		digits = append(digits, d)
	}
	return digits
}
