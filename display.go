package toprecision

import (
	"fmt"
	"io"
	"math"

	"github.com/iotaledger/toprecision/decimal"
	"github.com/iotaledger/toprecision/stringify"
)

const (
	nanText      = "NaN"
	zeroText     = "0"
	infinityText = "∞"
)

// Display is a float64 paired with a validated precision. It is rendered when printed and
// can be copied freely.
type Display struct {
	value     float64
	precision int
}

// Value returns the unrounded value.
func (d Display) Value() float64 {
	return d.value
}

// Precision returns the number of significant digits.
func (d Display) Precision() int {
	return d.precision
}

// AppendTo appends the rendered value to dst.
func (d Display) AppendTo(dst []byte) []byte {
	x := d.value

	if math.IsNaN(x) {
		return append(dst, nanText...)
	}
	if x == 0 {
		return append(dst, zeroText...)
	}
	// the sign goes first so that -Inf renders as -∞
	if x < 0 {
		dst = append(dst, '-')
		x = -x
	}
	if math.IsInf(x, 1) {
		return append(dst, infinityText...)
	}

	rounded := decimal.ToSigFigs(x, d.precision)
	if math.IsInf(rounded, 1) {
		return append(dst, infinityText...)
	}

	return stringify.AppendFloat64(dst, rounded)
}

// String returns the rendered value.
func (d Display) String() string {
	return string(d.AppendTo(nil))
}

// WriteTo writes the rendered value to w. Errors of w are returned unchanged.
func (d Display) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.AppendTo(nil))

	return int64(n), err
}

// MarshalText implements encoding.TextMarshaler.
func (d Display) MarshalText() ([]byte, error) {
	return d.AppendTo(nil), nil
}

// Format implements fmt.Formatter. The verbs v and s print the rendered value, %#v prints
// the unrounded value and the precision.
func (d Display) Format(state fmt.State, verb rune) {
	switch verb {
	case 'v':
		if state.Flag('#') {
			_, _ = io.WriteString(state, d.GoString())

			return
		}
		_, _ = d.WriteTo(state)
	case 's':
		_, _ = d.WriteTo(state)
	default:
		_, _ = fmt.Fprintf(state, "%%!%c(toprecision.Display=%s)", verb, d.String())
	}
}

// GoString returns a debug representation of the Display.
func (d Display) GoString() string {
	return stringify.Struct("Display",
		stringify.NewStructField("value", stringify.Float64(d.value)),
		stringify.NewStructField("precision", stringify.Int(d.precision)),
	)
}
