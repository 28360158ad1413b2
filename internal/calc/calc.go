// Package calc evaluates simple binary arithmetic expressions and records
// each evaluation to a history sink.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrDivideByZero is returned when the right operand of a division is zero.
var ErrDivideByZero = errors.New("division by zero")

// Recorder persists evaluated expressions. *store.LocalStore satisfies it.
type Recorder interface {
	RecordCalculation(expression, result string) error
}

// Engine evaluates expressions and optionally records them. A nil recorder
// skips history.
type Engine struct {
	rec Recorder
}

// New returns an Engine writing history through rec.
func New(rec Recorder) *Engine {
	return &Engine{rec: rec}
}

// Apply computes a <op> b for op in + - * / ^.
func Apply(a float64, op string, b float64) (float64, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*", "x":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	case "^":
		return math.Pow(a, b), nil
	default:
		return 0, fmt.Errorf("unknown operator %q (known: + - * / ^)", op)
	}
}

// Eval parses an expression of the form "<number> <op> <number>" and
// computes it, recording the result when a recorder is attached.
func (e *Engine) Eval(expr string) (float64, error) {
	fields := strings.Fields(expr)
	if len(fields) != 3 {
		return 0, fmt.Errorf("expression must be %q, got %q", "<number> <op> <number>", expr)
	}
	a, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("bad left operand %q: %w", fields[0], err)
	}
	b, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, fmt.Errorf("bad right operand %q: %w", fields[2], err)
	}
	result, err := Apply(a, fields[1], b)
	if err != nil {
		return 0, err
	}
	if e.rec != nil {
		normalized := fmt.Sprintf("%s %s %s", fields[0], fields[1], fields[2])
		if err := e.rec.RecordCalculation(normalized, FormatResult(result)); err != nil {
			return 0, fmt.Errorf("recording calculation: %w", err)
		}
	}
	return result, nil
}

// FormatResult trims trailing zeros so whole numbers print without a
// decimal point.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
