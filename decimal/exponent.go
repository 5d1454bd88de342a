package decimal

import (
	"math"

	"github.com/iotaledger/hive.go/ierrors"
)

// TenPowerLEQ returns the integer e such that 10^e <= |x| < 10^(e+1), where both powers are
// evaluated in binary64.
//
// It panics if x is zero. Non-finite values are not supported.
func TenPowerLEQ(x float64) int {
	if x == 0 {
		panic(ErrZeroExponent)
	}

	x = math.Abs(x)

	// log10 is inexact close to powers of ten and does not resolve subnormals on every
	// platform, so the floored value is only an estimate.
	var e int
	if x < smallestNormal {
		e = int(math.Floor(math.Log10(x*subnormalScale))) - subnormalShift
	} else {
		e = int(math.Floor(math.Log10(x)))
	}

	// Pow10 is 0 below -323 and +Inf above 308, so both loops terminate.
	for math.Pow10(e+1) <= x {
		e++
	}
	for math.Pow10(e) > x {
		e--
	}

	checkBracket(x, e)

	return e
}

// checkBracket panics if e is not the decimal exponent of the non-negative value x.
func checkBracket(x float64, e int) {
	if math.Pow10(e) <= x && x < math.Pow10(e+1) {
		return
	}

	panic(ierrors.Wrapf(ErrBracketViolation, "10^%d <= %v < 10^%d", e, x, e+1))
}
