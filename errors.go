package radix

import (
	"errors"

	"github.com/avdva/radix/internal/arith"
)

var (
	// ErrConfig is returned by constructors for invalid parameters,
	// such as a missing or too small alphabet.
	ErrConfig = errors.New("invalid configuration")
	// ErrDuplicateNumeral is returned by NewAlphabet if two numerals are
	// equal under case-insensitive comparison.
	ErrDuplicateNumeral = errors.New("duplicate numeral")
	// ErrUnknownNumeral is returned for a symbol that is not part of an alphabet.
	ErrUnknownNumeral = errors.New("unknown numeral")
	// ErrEmptyInput is returned for inputs that are empty, or become empty
	// after sign and leading-zero stripping.
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidNumeral is returned for a character outside the
	// alphabet, delimiter and separator set of its base.
	ErrInvalidNumeral = errors.New("invalid numeral")
	// ErrNumberTooLong is returned for inputs longer than the configured maximum.
	ErrNumberTooLong = errors.New("number too long")
	// ErrEmptyDigits guards against an empty digit sequence reaching the
	// arithmetic core. The parser never produces one.
	ErrEmptyDigits = arith.ErrEmptyDigits
)
