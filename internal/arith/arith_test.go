// Copyright 2020 Aleksandr Demakin. All rights reserved.

package arith

import (
	"fmt"
	"math/rand"
	"testing"

	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFromDigits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		base   int
		digits []int
		res    int64
		err    error
	}{
		{12, []int{1, 0, 0, 0}, 1728, nil},
		{10, []int{1, 7, 2, 8}, 1728, nil},
		{2, []int{1, 0, 1}, 5, nil},
		{16, []int{0}, 0, nil},
		{36, []int{35, 35}, 1295, nil},
		{10, nil, 0, ErrEmptyDigits},
		{10, []int{}, 0, ErrEmptyDigits},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			nm, err := FromDigits(Native{}, test.base, test.digits)
			dm, derr := FromDigits(NewDecimal(0), test.base, test.digits)
			if test.err != nil {
				a.ErrorIs(err, test.err)
				a.ErrorIs(derr, test.err)
				return
			}
			if a.NoError(err) {
				a.Equal(float64(test.res), nm)
			}
			if a.NoError(derr) {
				a.Equal(test.res, dm.IntPart())
			}
		})
	}
}

func TestToDigits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		magnitude int64
		base      int
		digits    []int
	}{
		{0, 10, []int{0}},
		{1728, 12, []int{1, 0, 0, 0}},
		{1728, 10, []int{1, 7, 2, 8}},
		{255, 16, []int{15, 15}},
		{5, 2, []int{1, 0, 1}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.digits, ToDigits(Native{}, float64(test.magnitude), test.base))
			a.Equal(test.digits, ToDigits(NewDecimal(0), decimal.NewFromInt(test.magnitude), test.base))
		})
	}
}

// Both backends must produce identical digit sequences for magnitudes
// within the float64 exact integer range.
func TestBackendEquivalence(t *testing.T) {
	a := assert.New(t)
	rng := rand.New(rand.NewSource(42))
	dec := NewDecimal(0)
	for i := 0; i < 200; i++ {
		n := rng.Int63n(1 << 50)
		base := 2 + rng.Intn(35)
		nd := ToDigits(Native{}, float64(n), base)
		dd := ToDigits(dec, decimal.NewFromInt(n), base)
		if !a.Equal(dd, nd, "n=%d base=%d", n, base) {
			continue
		}
		back, err := FromDigits(dec, base, dd)
		if a.NoError(err) {
			a.Equal(n, back.IntPart())
		}
	}
}

func TestFracToIntermediate(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		base   int
		digits []int
		res    string
	}{
		{12, []int{6}, "0.5"},
		{10, []int{5}, "0.5"},
		{10, []int{0, 8}, "0.08"},
		{2, []int{0, 1}, "0.25"},
		{3, []int{1}, "0.3"}, // 1/3 rounded to one place
		{10, []int{0}, "0"},
		// an all-max-digit fraction rounds to 1 and is capped below it
		{36, []int{35, 35}, "0.99"},
		{2, []int{1}, "0.5"},
		{16, []int{15, 15, 15}, "0.999"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			want := decimal.RequireFromString(test.res)
			got := FracToIntermediate(NewDecimal(8), test.base, test.digits)
			a.True(want.Equal(got), "got %s, want %s", got, want)
			f, _ := want.Float64()
			a.InDelta(f, FracToIntermediate(Native{}, test.base, test.digits), 1e-9)
		})
	}
}

func TestIntermediateToFrac(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		frac       string
		base       int
		resolution int
		digits     []int
	}{
		{"0.5", 10, 1, []int{5}},
		{"0.5", 12, 1, []int{6}},
		{"0.25", 2, 2, []int{0, 1}},
		{"0.5", 7, 5, []int{3, 3, 3, 3, 4}},
		// the final digit would round to 12 and is clamped to 11
		{"0.08", 12, 2, []int{0, 11}},
		{"0", 10, 3, []int{0, 0, 0}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d := decimal.RequireFromString(test.frac)
			a.Equal(test.digits, IntermediateToFrac(NewDecimal(8), d, test.base, test.resolution))
			f, _ := d.Float64()
			a.Equal(test.digits, IntermediateToFrac(Native{}, f, test.base, test.resolution))
		})
	}
}

// A fraction of all-max digits rounds up to 1 in stage one; every digit
// the pipeline emits must still be a valid index of the target base.
func TestFracAllMaxDigits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		from, to   int
		resolution int
	}{
		{36, 10, 2},
		{36, 12, 2},
		{16, 10, 3},
		{36, 2, 4},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			digits := make([]int, test.resolution)
			for j := range digits {
				digits[j] = test.from - 1
			}
			nd := IntermediateToFrac(Native{}, FracToIntermediate(Native{}, test.from, digits), test.to, test.resolution)
			ops := NewDecimal(test.resolution + 4)
			dd := IntermediateToFrac(ops, FracToIntermediate(ops, test.from, digits), test.to, test.resolution)
			for _, out := range [][]int{nd, dd} {
				a.Len(out, test.resolution)
				for _, v := range out {
					a.GreaterOrEqual(v, 0)
					a.Less(v, test.to)
				}
			}
			a.Equal(dd, nd)
		})
	}
}

// Beyond float64's 16 significant digits the bounded backend cannot
// represent the capped intermediate; emitted digits must still be in range.
func TestFracNativeDeepResolution(t *testing.T) {
	a := assert.New(t)
	digits := make([]int, 18)
	for i := range digits {
		digits[i] = 9
	}
	out := IntermediateToFrac(Native{}, FracToIntermediate(Native{}, 10, digits), 10, 18)
	a.Len(out, 18)
	for _, v := range out {
		a.GreaterOrEqual(v, 0)
		a.Less(v, 10)
	}
}

// Resolution is preserved: k input digits always yield k output digits.
func TestResolutionPreserved(t *testing.T) {
	a := assert.New(t)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		from := 2 + rng.Intn(35)
		to := 2 + rng.Intn(35)
		k := 1 + rng.Intn(10)
		digits := make([]int, k)
		for j := range digits {
			digits[j] = rng.Intn(from)
		}
		d := FracToIntermediate(NewDecimal(k+4), from, digits)
		out := IntermediateToFrac(NewDecimal(k+4), d, to, k)
		a.Len(out, k)
		for _, v := range out {
			a.GreaterOrEqual(v, 0)
			a.Less(v, to)
		}
	}
}

func BenchmarkFromDigitsNative(b *testing.B) {
	digits := []int{1, 0, 0, 0, 7, 2, 8, 9, 3, 5}
	for i := 0; i < b.N; i++ {
		FromDigits(Native{}, 12, digits)
	}
}

func BenchmarkFromDigitsDecimal(b *testing.B) {
	digits := []int{1, 0, 0, 0, 7, 2, 8, 9, 3, 5}
	ops := NewDecimal(0)
	for i := 0; i < b.N; i++ {
		FromDigits(ops, 12, digits)
	}
}

func BenchmarkMulAddOtherFixed(b *testing.B) {
	f0 := of.NewF(123456789.9)
	f1 := of.NewF(12)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulAddDecimal(b *testing.B) {
	f0 := decimal.NewFromFloat(123456789.0)
	f1 := decimal.NewFromFloat(12.0)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}
