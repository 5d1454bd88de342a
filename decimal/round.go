package decimal

import (
	"math"
	"strconv"
	"strings"
)

// ToSigFigs rounds x to sf significant decimal digits. Halves are rounded away from zero.
//
// The result is the binary64 closest to the rounded decimal value. It may cross a power of
// ten (0.9999 rounded to 3 digits is 1). x must be finite and nonzero and sf must be positive.
func ToSigFigs(x float64, sf int) float64 {
	// x is already the closest binary64 to every rounding that keeps its shortest digits.
	if sf >= MaxSignificantDigits || SignificantDigits(x) <= sf {
		return x
	}

	// p is the decimal exponent of the least significant retained digit.
	p := TenPowerLEQ(x) - sf + 1

	return fromDigits(retainedDigits(x, p), p)
}

// retainedDigits returns x / 10^p rounded to an integer.
func retainedDigits(x float64, p int) float64 {
	if p >= 0 {
		return math.Round(x / math.Pow10(p))
	}

	if -p > maxPow10 {
		return math.Round(x * math.Pow10(maxPow10) * math.Pow10(-p-maxPow10))
	}

	// 10^p is inexact for p < 0, so scale up by 10^-p instead.
	return math.Round(x * math.Pow10(-p))
}

// fromDigits returns the binary64 closest to m * 10^p. Pow10 is not correctly rounded for
// large exponents, so the value is parsed from its decimal form instead of being multiplied.
func fromDigits(m float64, p int) float64 {
	buf := make([]byte, 0, 32)
	buf = strconv.AppendFloat(buf, m, 'f', 0, 64)
	buf = append(buf, 'e')
	buf = strconv.AppendInt(buf, int64(p), 10)

	// out of range values are returned as ±Inf together with ErrRange
	f, _ := strconv.ParseFloat(string(buf), 64)

	return f
}

// SignificantDigits returns the number of significant decimal digits of the shortest
// representation that round-trips to x. x must be finite and nonzero.
func SignificantDigits(x float64) int {
	mantissa, _, _ := strings.Cut(strconv.FormatFloat(math.Abs(x), 'e', -1, 64), "e")

	return len(strings.Replace(mantissa, ".", "", 1))
}
