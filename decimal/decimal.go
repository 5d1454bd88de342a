// Package decimal contains the numerical core used to round binary64 values to a number of
// significant decimal digits.
//
// All functions are pure and safe for concurrent use.
package decimal

import (
	"github.com/iotaledger/hive.go/ierrors"
)

const (
	// MaxSignificantDigits is the number of significant decimal digits that is always enough to
	// identify a binary64 value uniquely.
	MaxSignificantDigits = 17

	// maxPow10 is the largest n for which math.Pow10(n) is finite.
	maxPow10 = 308

	// smallestNormal is the smallest positive normal binary64.
	smallestNormal = 0x1p-1022

	// subnormals are scaled by 10^subnormalShift into the normal range before taking log10.
	subnormalShift = 16
	subnormalScale = 1e16
)

var (
	// ErrZeroExponent is raised when the decimal exponent of zero is requested.
	ErrZeroExponent = ierrors.New("power of 10 only makes sense on nonzero numbers")

	// ErrBracketViolation is raised when a located exponent does not bracket its input.
	ErrBracketViolation = ierrors.New("decimal exponent does not bracket value")
)
