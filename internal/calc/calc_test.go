package calc

import (
	"errors"
	"testing"
)

type fakeRecorder struct {
	exprs   []string
	results []string
}

func (f *fakeRecorder) RecordCalculation(expression, result string) error {
	f.exprs = append(f.exprs, expression)
	f.results = append(f.results, result)
	return nil
}

func TestApply(t *testing.T) {
	cases := []struct {
		a    float64
		op   string
		b    float64
		want float64
	}{
		{2, "+", 3, 5},
		{10, "-", 4, 6},
		{6, "*", 7, 42},
		{9, "/", 2, 4.5},
		{2, "^", 10, 1024},
	}
	for _, tc := range cases {
		got, err := Apply(tc.a, tc.op, tc.b)
		if err != nil {
			t.Fatalf("Apply(%v %s %v): %v", tc.a, tc.op, tc.b, err)
		}
		if got != tc.want {
			t.Errorf("Apply(%v %s %v) = %v, want %v", tc.a, tc.op, tc.b, got, tc.want)
		}
	}
}

func TestApplyDivideByZero(t *testing.T) {
	_, err := Apply(1, "/", 0)
	if !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("err = %v, want ErrDivideByZero", err)
	}
}

func TestApplyUnknownOperator(t *testing.T) {
	if _, err := Apply(1, "%", 2); err == nil {
		t.Fatal("expected error for unknown operator")
	}
}

func TestEvalRecordsHistory(t *testing.T) {
	rec := &fakeRecorder{}
	e := New(rec)
	got, err := e.Eval("  2   *  21 ")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got != 42 {
		t.Fatalf("Eval = %v, want 42", got)
	}
	if len(rec.exprs) != 1 || rec.exprs[0] != "2 * 21" {
		t.Errorf("recorded expression = %v, want [2 * 21]", rec.exprs)
	}
	if rec.results[0] != "42" {
		t.Errorf("recorded result = %q, want 42", rec.results[0])
	}
}

func TestEvalBadInput(t *testing.T) {
	e := New(nil)
	for _, expr := range []string{"", "1 +", "one + two", "1 + 2 + 3"} {
		if _, err := e.Eval(expr); err == nil {
			t.Errorf("Eval(%q): expected error", expr)
		}
	}
}

func TestEvalNilRecorder(t *testing.T) {
	e := New(nil)
	got, err := e.Eval("1.5 + 1.5")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got != 3 {
		t.Fatalf("Eval = %v, want 3", got)
	}
}

func TestFormatResult(t *testing.T) {
	if s := FormatResult(42); s != "42" {
		t.Errorf("FormatResult(42) = %q", s)
	}
	if s := FormatResult(4.5); s != "4.5" {
		t.Errorf("FormatResult(4.5) = %q", s)
	}
}
