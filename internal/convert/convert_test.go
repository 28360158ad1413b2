package convert

import (
	"math"
	"strings"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLength(t *testing.T) {
	cases := []struct {
		value    float64
		from, to string
		want     float64
	}{
		{1, "km", "m", 1000},
		{1, "mile", "km", 1.609344},
		{12, "inch", "foot", 1},
		{100, "cm", "m", 1},
	}
	for _, tc := range cases {
		got, err := Length(tc.value, tc.from, tc.to)
		if err != nil {
			t.Fatalf("Length(%v, %q, %q): %v", tc.value, tc.from, tc.to, err)
		}
		if !almostEqual(got, tc.want) {
			t.Errorf("Length(%v, %q, %q) = %v, want %v", tc.value, tc.from, tc.to, got, tc.want)
		}
	}
}

func TestWeight(t *testing.T) {
	got, err := Weight(1, "kg", "g")
	if err != nil {
		t.Fatalf("Weight: %v", err)
	}
	if !almostEqual(got, 1000) {
		t.Errorf("Weight(1, kg, g) = %v, want 1000", got)
	}
	got, err = Weight(16, "oz", "lb")
	if err != nil {
		t.Fatalf("Weight: %v", err)
	}
	if math.Abs(got-1) > 0.001 {
		t.Errorf("Weight(16, oz, lb) = %v, want ~1", got)
	}
}

func TestTemperature(t *testing.T) {
	cases := []struct {
		value    float64
		from, to string
		want     float64
	}{
		{0, "celsius", "fahrenheit", 32},
		{212, "fahrenheit", "celsius", 100},
		{0, "celsius", "kelvin", 273.15},
		{300, "k", "c", 26.85},
		{100, "C", "F", 212},
	}
	for _, tc := range cases {
		got, err := Temperature(tc.value, tc.from, tc.to)
		if err != nil {
			t.Fatalf("Temperature(%v, %q, %q): %v", tc.value, tc.from, tc.to, err)
		}
		if !almostEqual(got, tc.want) {
			t.Errorf("Temperature(%v, %q, %q) = %v, want %v", tc.value, tc.from, tc.to, got, tc.want)
		}
	}
}

func TestArea(t *testing.T) {
	got, err := Area(1, "km2", "m2")
	if err != nil {
		t.Fatalf("Area: %v", err)
	}
	if !almostEqual(got, 1e6) {
		t.Errorf("Area(1, km2, m2) = %v, want 1e6", got)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, pair := range [][2]string{{"mile", "mm"}, {"yard", "inch"}} {
		v, err := Length(42, pair[0], pair[1])
		if err != nil {
			t.Fatalf("Length: %v", err)
		}
		back, err := Length(v, pair[1], pair[0])
		if err != nil {
			t.Fatalf("Length: %v", err)
		}
		if math.Abs(back-42) > 1e-9 {
			t.Errorf("round trip %s->%s->%s = %v, want 42", pair[0], pair[1], pair[0], back)
		}
	}
}

func TestUnknownUnit(t *testing.T) {
	_, err := Length(1, "furlong", "m")
	if err == nil {
		t.Fatal("expected error for unknown unit")
	}
	if !strings.Contains(err.Error(), "mile") {
		t.Errorf("error %q should list known units", err)
	}
	if _, err := Temperature(1, "rankine", "c"); err == nil {
		t.Fatal("expected error for unknown temperature unit")
	}
}
