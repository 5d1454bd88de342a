// Package toprecision renders float64 values with a bounded number of significant digits,
// similar in shape to JavaScript's Number.prototype.toPrecision.
//
// The value is first rounded to the requested number of significant digits and then printed
// with the shortest representation that round-trips, in plain positional notation. The output
// is therefore not identical to toPrecision: trailing zeros are not padded and digits beyond
// the precision can appear when the rounded binary64 has no short decimal form.
package toprecision

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

const (
	// MinPrecision is the smallest supported precision.
	MinPrecision = 1

	// MaxPrecision is the largest supported precision.
	MaxPrecision = 21
)

// ErrInvalidPrecision is returned if a precision is outside of [MinPrecision, MaxPrecision].
var ErrInvalidPrecision = ierrors.New("invalid precision")

// ValidatePrecision checks that p is a supported precision.
func ValidatePrecision(p int) error {
	if p < MinPrecision || p > MaxPrecision {
		return ierrors.Wrapf(ErrInvalidPrecision, "precision must satisfy %d <= p (%d) <= %d", MinPrecision, p, MaxPrecision)
	}

	return nil
}

// New creates a Display for x with p significant digits, or returns an error if p is invalid.
func New(x float64, p int) (Display, error) {
	if err := ValidatePrecision(p); err != nil {
		return Display{}, err
	}

	return Display{value: x, precision: p}, nil
}

// ToPrecision creates a Display for x with p significant digits.
//
// It panics if p is outside of [MinPrecision, MaxPrecision].
func ToPrecision(x float64, p int) Display {
	return lo.PanicOnErr(New(x, p))
}

// Strings renders all values with p significant digits.
func Strings(values []float64, p int) ([]string, error) {
	if err := ValidatePrecision(p); err != nil {
		return nil, err
	}

	return lo.Map(values, func(x float64) string {
		return Display{value: x, precision: p}.String()
	}), nil
}
