// Package stringify contains the textual conversions shared by the formatting code.
package stringify

import "strconv"

// Float64 returns the shortest decimal representation of f that parses back to f, in plain
// positional notation (no exponent).
func Float64(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// AppendFloat64 appends the representation returned by Float64 to dst.
func AppendFloat64(dst []byte, f float64) []byte {
	return strconv.AppendFloat(dst, f, 'f', -1, 64)
}

// Int returns the base 10 representation of i.
func Int(i int) string {
	return strconv.Itoa(i)
}
