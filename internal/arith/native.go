// Copyright 2020 Aleksandr Demakin. All rights reserved.

package arith

import (
	"math"

	"github.com/avdva/radix/internal/mathutil"
)

// Native implements Ops on float64 machine arithmetic.
// It is fast, but magnitudes beyond 2^53 lose precision silently.
type Native struct{}

var _ Ops[float64] = Native{}

func (Native) Zero() float64 {
	return 0
}

func (Native) FromInt(v int) float64 {
	return float64(v)
}

func (Native) Add(a, b float64) float64 {
	return a + b
}

func (Native) Sub(a, b float64) float64 {
	return a - b
}

func (Native) Mul(a, b float64) float64 {
	return a * b
}

func (Native) Quo(a, b float64) float64 {
	return a / b
}

func (Native) QuoRem(a, b float64) (float64, float64) {
	q := math.Floor(a / b)
	return q, a - q*b
}

func (Native) Floor(a float64) float64 {
	return math.Floor(a)
}

func (Native) Round(a float64, places int) float64 {
	p := mathutil.Pow10(places)
	if p == 0 {
		// beyond the table a float64 has no fractional precision left
		return a
	}
	f := float64(p)
	return math.Floor(a*f+0.5) / f
}

func (Native) Cmp(a, b float64) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

func (Native) IsZero(a float64) bool {
	return a == 0
}

func (Native) Int(a float64) int {
	return int(a)
}
