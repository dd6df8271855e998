// Copyright 2020 Aleksandr Demakin. All rights reserved.

package arith

import "github.com/shopspring/decimal"

// BigMagnitude is the magnitude type of the arbitrary-precision backend.
type BigMagnitude = decimal.Decimal

// Decimal implements Ops on arbitrary-precision decimals.
// Integer operations are exact for numbers of any length; divisions are
// carried to a fixed number of decimal places set at construction.
type Decimal struct {
	prec int32
}

var _ Ops[BigMagnitude] = Decimal{}

// defaultPrec mirrors shopspring's default division precision.
const defaultPrec = 16

// NewDecimal returns ops whose divisions carry at least prec decimal places.
func NewDecimal(prec int) Decimal {
	if prec < defaultPrec {
		prec = defaultPrec
	}
	return Decimal{prec: int32(prec)}
}

func (Decimal) Zero() BigMagnitude {
	return decimal.Decimal{}
}

func (Decimal) FromInt(v int) BigMagnitude {
	return decimal.NewFromInt(int64(v))
}

func (Decimal) Add(a, b BigMagnitude) BigMagnitude {
	return a.Add(b)
}

func (Decimal) Sub(a, b BigMagnitude) BigMagnitude {
	return a.Sub(b)
}

func (Decimal) Mul(a, b BigMagnitude) BigMagnitude {
	return a.Mul(b)
}

func (d Decimal) Quo(a, b BigMagnitude) BigMagnitude {
	return a.DivRound(b, d.prec)
}

func (Decimal) QuoRem(a, b BigMagnitude) (BigMagnitude, BigMagnitude) {
	return a.QuoRem(b, 0)
}

func (Decimal) Floor(a BigMagnitude) BigMagnitude {
	return a.Floor()
}

func (Decimal) Round(a BigMagnitude, places int) BigMagnitude {
	// shopspring rounds half away from zero, which is half up for the
	// non-negative magnitudes used here.
	return a.Round(int32(places))
}

func (Decimal) Cmp(a, b BigMagnitude) int {
	return a.Cmp(b)
}

func (Decimal) IsZero(a BigMagnitude) bool {
	return a.IsZero()
}

func (Decimal) Int(a BigMagnitude) int {
	return int(a.IntPart())
}
