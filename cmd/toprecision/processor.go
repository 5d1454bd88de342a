package main

import (
	"bufio"
	"io"
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/toprecision"
	"github.com/iotaledger/toprecision/decimal"
	"github.com/iotaledger/toprecision/logger"
)

// processor renders numbers with a fixed precision.
type processor struct {
	*logger.WrappedLogger

	precision int
	skipped   int
}

func newProcessor(precision int, log *logger.Logger) (*processor, error) {
	if err := toprecision.ValidatePrecision(precision); err != nil {
		return nil, err
	}

	return &processor{
		WrappedLogger: logger.NewWrappedLogger(log),
		precision:     precision,
	}, nil
}

// Skipped returns the number of inputs that could not be parsed.
func (p *processor) Skipped() int {
	return p.skipped
}

// ProcessArgs renders every argument on its own line.
func (p *processor) ProcessArgs(args []string, output io.Writer) error {
	for _, arg := range args {
		if err := p.process(arg, output); err != nil {
			return err
		}
	}

	return nil
}

// ProcessLines renders every non-empty line of input on its own line.
func (p *processor) ProcessLines(input io.Reader, output io.Writer) error {
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := p.process(line, output); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return ierrors.Wrap(err, "reading input failed")
	}

	return nil
}

func (p *processor) process(input string, output io.Writer) error {
	x, err := parseNumber(input)
	if err != nil {
		p.skipped++
		p.LogWarnf("skipping %q: %s", input, err)

		return nil
	}

	display := toprecision.ToPrecision(x, p.precision)
	if x != 0 && !math.IsNaN(x) && !math.IsInf(x, 0) {
		p.LogDebugf("%s has %d significant digits, rendered with %d", input, decimal.SignificantDigits(x), p.precision)
	}

	if _, err := display.WriteTo(output); err != nil {
		return err
	}
	if _, err := io.WriteString(output, "\n"); err != nil {
		return err
	}

	return nil
}

func parseNumber(input string) (float64, error) {
	switch input {
	case "∞", "+∞":
		input = "+Inf"
	case "-∞":
		input = "-Inf"
	}

	return cast.ToFloat64E(input)
}
