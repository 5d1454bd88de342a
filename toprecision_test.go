package toprecision_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/toprecision"
)

func TestToPrecision(t *testing.T) {
	for _, test := range []struct {
		input     float64
		precision int
		expected  string
	}{
		{0.999, 3, "0.999"},
		{0.9999, 3, "1"},
		{1234, 3, "1230"},
		{9999, 1, "10000"},
		{0.1234, 3, "0.123"},
		{0.7000000000000002, 5, "0.7"},
		{math.Float64frombits(4603579539098121012), 4, "0.6"},
		{math.NaN(), 3, "NaN"},
		{math.Inf(-1), 3, "-∞"},
		{math.Inf(1), 3, "∞"},
		{0, 3, "0"},
		{math.Copysign(0, -1), 3, "0"},
		{-1234, 2, "-1200"},
		{-0.0004567, 2, "-0.00046"},
		{1e21, 1, "1000000000000000000000"},
		{1.6e-7, 1, "0.0000002"},
		{math.Pi, 21, "3.141592653589793"},
		{math.MaxFloat64, 1, "∞"},
		{-math.MaxFloat64, 1, "-∞"},
	} {
		require.Equal(t, test.expected, toprecision.ToPrecision(test.input, test.precision).String(), "ToPrecision(%v, %d)", test.input, test.precision)
	}
}

func TestToPrecisionExtremeMagnitudes(t *testing.T) {
	require.NotPanics(t, func() {
		require.Equal(t, "0."+strings.Repeat("0", 309)+"1", toprecision.ToPrecision(1e-310, 3).String())
	})
	require.Equal(t, "0."+strings.Repeat("0", 323)+"5", toprecision.ToPrecision(math.SmallestNonzeroFloat64, 1).String())
	require.Equal(t, "0."+strings.Repeat("0", 249)+"746", toprecision.ToPrecision(7.4612e-250, 3).String())
	require.Equal(t, "1"+strings.Repeat("0", 58), toprecision.ToPrecision(9.589819868459304e57, 1).String())
	require.Equal(t, "0."+strings.Repeat("0", 164)+"1", toprecision.ToPrecision(1.4122455198947215e-165, 1).String())

	for _, x := range []float64{math.SmallestNonzeroFloat64, 1.5e-320, 2.2e-315, 1e-310, math.Nextafter(0x1p-1022, 0)} {
		for p := toprecision.MinPrecision; p <= toprecision.MaxPrecision; p++ {
			require.NotPanics(t, func() {
				_ = toprecision.ToPrecision(-x, p).String()
			}, "ToPrecision(%v, %d)", -x, p)
		}
	}
}

func TestToPrecisionSpecialValues(t *testing.T) {
	for p := toprecision.MinPrecision; p <= toprecision.MaxPrecision; p++ {
		require.Equal(t, "NaN", toprecision.ToPrecision(math.NaN(), p).String())
		require.Equal(t, "0", toprecision.ToPrecision(0, p).String())
		require.Equal(t, "0", toprecision.ToPrecision(math.Copysign(0, -1), p).String())
		require.Equal(t, "∞", toprecision.ToPrecision(math.Inf(1), p).String())
		require.Equal(t, "-∞", toprecision.ToPrecision(math.Inf(-1), p).String())
	}
}

func TestToPrecisionInvalid(t *testing.T) {
	require.PanicsWithError(t, "precision must satisfy 1 <= p (0) <= 21: invalid precision", func() {
		toprecision.ToPrecision(1, 0)
	})
	require.PanicsWithError(t, "precision must satisfy 1 <= p (22) <= 21: invalid precision", func() {
		toprecision.ToPrecision(1, 22)
	})
	require.Panics(t, func() {
		toprecision.ToPrecision(math.NaN(), -1)
	})
}

func TestNew(t *testing.T) {
	display, err := toprecision.New(0.1234, 2)
	require.NoError(t, err)
	require.Equal(t, 0.1234, display.Value())
	require.Equal(t, 2, display.Precision())
	require.Equal(t, "0.12", display.String())

	_, err = toprecision.New(0.1234, 22)
	require.True(t, ierrors.Is(err, toprecision.ErrInvalidPrecision))
}

func TestValidatePrecision(t *testing.T) {
	for p := toprecision.MinPrecision; p <= toprecision.MaxPrecision; p++ {
		require.NoError(t, toprecision.ValidatePrecision(p))
	}

	for _, p := range []int{-1, 0, 22, 100} {
		require.ErrorIs(t, toprecision.ValidatePrecision(p), toprecision.ErrInvalidPrecision)
	}
}

func TestDisplayFormat(t *testing.T) {
	display := toprecision.ToPrecision(-1234.5678, 5)

	require.Equal(t, "-1234.6", fmt.Sprint(display))
	require.Equal(t, "value=-1234.6", fmt.Sprintf("value=%v", display))
	require.Equal(t, "[-1234.6]", fmt.Sprintf("[%s]", display))
	require.Equal(t, "Display {\n  value: -1234.5678\n  precision: 5\n}", fmt.Sprintf("%#v", display))
	require.Equal(t, "%!d(toprecision.Display=-1234.6)", fmt.Sprintf("%d", display))
}

func TestDisplayAppendTo(t *testing.T) {
	buf := toprecision.ToPrecision(0.1234, 3).AppendTo([]byte("x="))
	require.Equal(t, "x=0.123", string(buf))
}

func TestDisplayMarshalText(t *testing.T) {
	encoded, err := json.Marshal(map[string]toprecision.Display{
		"ratio": toprecision.ToPrecision(2.0/3, 3),
	})
	require.NoError(t, err)
	require.Equal(t, `{"ratio":"0.667"}`, string(encoded))
}

func TestDisplayWriteTo(t *testing.T) {
	var buf bytes.Buffer

	n, err := toprecision.ToPrecision(-0.9999, 3).WriteTo(&buf)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
	require.Equal(t, "-1", buf.String())
}

var errSinkClosed = ierrors.New("sink closed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errSinkClosed
}

func TestDisplayWriteToError(t *testing.T) {
	n, err := toprecision.ToPrecision(1, 1).WriteTo(failingWriter{})
	require.ErrorIs(t, err, errSinkClosed)
	require.Zero(t, n)

	_, err = fmt.Fprint(failingWriter{}, toprecision.ToPrecision(1, 1))
	require.ErrorIs(t, err, errSinkClosed)
}

func TestStrings(t *testing.T) {
	rendered, err := toprecision.Strings([]float64{1234, 0.9999, math.NaN(), math.Inf(-1)}, 3)
	require.NoError(t, err)
	require.Equal(t, []string{"1230", "1", "NaN", "-∞"}, rendered)

	_, err = toprecision.Strings([]float64{1}, 0)
	require.ErrorIs(t, err, toprecision.ErrInvalidPrecision)
}

func TestToPrecisionConcurrent(t *testing.T) {
	done := make(chan string)
	for i := 0; i < 16; i++ {
		go func() {
			done <- toprecision.ToPrecision(1234.5678, 6).String()
		}()
	}

	for i := 0; i < 16; i++ {
		require.Equal(t, "1234.57", <-done)
	}
}
