// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package radix converts numbers between positional numeral systems with
// caller-supplied alphabets, including fractional parts, negative signs
// and digit grouping.
//
// A Converter is built once from two alphabets and their display formats
// and is immutable afterwards, so it is safe for concurrent use.
// Integer conversion runs on either native float64 arithmetic (fast, loses
// precision silently beyond 2^53) or arbitrary-precision decimal
// arithmetic; fractions always go through a bounded-precision decimal
// intermediate of as many places as the input has fractional digits.
package radix

import (
	"fmt"

	"github.com/avdva/radix/internal/arith"
)

const (
	// defaultMaxLength bounds input size before any arithmetic starts.
	defaultMaxLength = 4096

	// fracGuardDigits is carried by exact-mode fraction divisions on top
	// of the resolution before the intermediate is rounded.
	fracGuardDigits = 4
)

var decimalDigits = MustAlphabet("0123456789")

// base bundles an alphabet with its display format and a name used in errors.
type base struct {
	name     string
	alphabet *Alphabet
	format   Format
}

func (b *base) radix() int {
	return b.alphabet.Radix()
}

// Converter converts numbers between a host base and a target base.
// All configuration is fixed at construction; conversions are pure
// functions of their input, safe to call from multiple goroutines.
type Converter struct {
	host, target base
	big          bool
	maxLen       int
}

// Option configures a Converter.
type Option func(*Converter)

// WithTarget sets the target alphabet. The default is the ten decimal digits.
func WithTarget(a *Alphabet) Option {
	return func(c *Converter) {
		c.target.alphabet = a
	}
}

// WithNames sets the base names used in error messages.
func WithNames(host, target string) Option {
	return func(c *Converter) {
		c.host.name, c.target.name = host, target
	}
}

// WithHostFormat sets the host base display format.
// Zero-value fields keep their defaults: ';' delimiter, ' ' separator,
// '-' sign, groups of 3.
func WithHostFormat(f Format) Option {
	return func(c *Converter) {
		c.host.format = f
	}
}

// WithTargetFormat sets the target base display format.
// Zero-value fields keep their defaults: '.' delimiter, ',' separator,
// '-' sign, groups of 3.
func WithTargetFormat(f Format) Option {
	return func(c *Converter) {
		c.target.format = f
	}
}

// WithArbitraryPrecision makes integer conversion exact for numbers of
// any length, at the cost of speed. Without it, magnitudes beyond the
// float64 integer range lose precision silently.
func WithArbitraryPrecision() Option {
	return func(c *Converter) {
		c.big = true
	}
}

// WithMaxLength sets the maximum accepted input length, in symbols.
func WithMaxLength(n int) Option {
	return func(c *Converter) {
		c.maxLen = n
	}
}

// New returns a converter from the host alphabet to the target one.
func New(host *Alphabet, opts ...Option) (*Converter, error) {
	if host == nil {
		return nil, fmt.Errorf("%w: host alphabet is required", ErrConfig)
	}
	c := &Converter{
		host:   base{name: "host", alphabet: host},
		target: base{name: "target", alphabet: decimalDigits},
		maxLen: defaultMaxLength,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.target.alphabet == nil {
		return nil, fmt.Errorf("%w: target alphabet is required", ErrConfig)
	}
	if c.maxLen <= 0 {
		return nil, fmt.Errorf("%w: max length must be positive, got %d", ErrConfig, c.maxLen)
	}
	c.host.format = c.host.format.withDefaults(Format{Delimiter: ';', Separator: ' ', Sign: '-', GroupSize: 3})
	c.target.format = c.target.format.withDefaults(Format{Delimiter: '.', Separator: ',', Sign: '-', GroupSize: 3})
	return c, nil
}

type convertConfig struct {
	stripZeros bool
}

// ConvertOption configures a single conversion call.
type ConvertOption func(*convertConfig)

// KeepLeadingZeros disables stripping of leading zero numerals.
// Kept zeros take part in grouped rendering, so "0100" groups as "0,100".
func KeepLeadingZeros() ConvertOption {
	return func(cc *convertConfig) {
		cc.stripZeros = false
	}
}

// HostToTarget converts a number written in the host base to the target base.
func (c *Converter) HostToTarget(number string, opts ...ConvertOption) (Result, error) {
	return c.convert(number, &c.host, &c.target, opts)
}

// TargetToHost converts a number written in the target base to the host base.
func (c *Converter) TargetToHost(number string, opts ...ConvertOption) (Result, error) {
	return c.convert(number, &c.target, &c.host, opts)
}

// FormatHost parses a host-base number and returns it for re-rendering
// without changing its base. No arithmetic runs, so kept leading zeros survive.
func (c *Converter) FormatHost(number string, opts ...ConvertOption) (Result, error) {
	return c.reformat(number, &c.host, opts)
}

// FormatTarget is FormatHost for the target base.
func (c *Converter) FormatTarget(number string, opts ...ConvertOption) (Result, error) {
	return c.reformat(number, &c.target, opts)
}

func callConfig(opts []ConvertOption) convertConfig {
	cfg := convertConfig{stripZeros: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c *Converter) convert(number string, from, to *base, opts []ConvertOption) (Result, error) {
	cfg := callConfig(opts)
	p, err := parseNumber(number, from, c.maxLen, cfg.stripZeros)
	if err != nil {
		return Result{}, fmt.Errorf("convert %s to %s: %w", from.name, to.name, err)
	}
	integer, err := c.convertInteger(p.integer, from.radix(), to.radix())
	if err != nil {
		return Result{}, fmt.Errorf("convert %s to %s: %w", from.name, to.name, err)
	}
	var fraction []int
	if p.fraction != nil {
		fraction = c.convertFraction(p.fraction, from.radix(), to.radix())
	}
	return Result{negative: p.neg, integer: integer, fraction: fraction, base: to}, nil
}

func (c *Converter) reformat(number string, b *base, opts []ConvertOption) (Result, error) {
	cfg := callConfig(opts)
	p, err := parseNumber(number, b, c.maxLen, cfg.stripZeros)
	if err != nil {
		return Result{}, fmt.Errorf("format %s: %w", b.name, err)
	}
	return Result{negative: p.neg, integer: p.integer, fraction: p.fraction, base: b}, nil
}

func (c *Converter) convertInteger(digits []int, from, to int) ([]int, error) {
	if c.big {
		return convertIntegerIn[arith.BigMagnitude](arith.NewDecimal(0), digits, from, to)
	}
	return convertIntegerIn[float64](arith.Native{}, digits, from, to)
}

func convertIntegerIn[M any](ops arith.Ops[M], digits []int, from, to int) ([]int, error) {
	m, err := arith.FromDigits(ops, from, digits)
	if err != nil {
		return nil, err
	}
	return arith.ToDigits(ops, m, to), nil
}

func (c *Converter) convertFraction(digits []int, from, to int) []int {
	if c.big {
		return convertFractionIn[arith.BigMagnitude](arith.NewDecimal(len(digits)+fracGuardDigits), digits, from, to)
	}
	return convertFractionIn[float64](arith.Native{}, digits, from, to)
}

func convertFractionIn[M any](ops arith.Ops[M], digits []int, from, to int) []int {
	intermediate := arith.FracToIntermediate(ops, from, digits)
	return arith.IntermediateToFrac(ops, intermediate, to, len(digits))
}
