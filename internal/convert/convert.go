// Package convert translates values between measurement units. Length,
// weight, and area go through a base unit (meter, gram, square meter) via
// factor tables; temperature uses the usual C/F/K formulas.
package convert

import (
	"fmt"
	"sort"
	"strings"
)

var lengthFactors = map[string]float64{
	"mm":   0.001,
	"cm":   0.01,
	"m":    1.0,
	"km":   1000.0,
	"inch": 0.0254,
	"foot": 0.3048,
	"yard": 0.9144,
	"mile": 1609.344,
}

var weightFactors = map[string]float64{
	"mg":  0.001,
	"g":   1.0,
	"kg":  1000.0,
	"oz":  28.3495,
	"lb":  453.592,
	"ton": 1000000.0,
}

var areaFactors = map[string]float64{
	"mm2":  0.000001,
	"cm2":  0.0001,
	"m2":   1.0,
	"km2":  1000000.0,
	"in2":  0.00064516,
	"ft2":  0.092903,
	"acre": 4046.86,
}

// Length converts between length units (mm, cm, m, km, inch, foot, yard, mile).
func Length(value float64, from, to string) (float64, error) {
	return throughBase(lengthFactors, value, from, to)
}

// Weight converts between mass units (mg, g, kg, oz, lb, ton).
func Weight(value float64, from, to string) (float64, error) {
	return throughBase(weightFactors, value, from, to)
}

// Area converts between area units (mm2, cm2, m2, km2, in2, ft2, acre).
func Area(value float64, from, to string) (float64, error) {
	return throughBase(areaFactors, value, from, to)
}

// Temperature converts between celsius, fahrenheit, and kelvin. Unit names
// are case-insensitive and single-letter aliases (c, f, k) are accepted.
func Temperature(value float64, from, to string) (float64, error) {
	var celsius float64
	switch normalizeTemp(from) {
	case "c":
		celsius = value
	case "f":
		celsius = (value - 32) * 5 / 9
	case "k":
		celsius = value - 273.15
	default:
		return 0, fmt.Errorf("unknown temperature unit %q (known: celsius, fahrenheit, kelvin)", from)
	}
	switch normalizeTemp(to) {
	case "c":
		return celsius, nil
	case "f":
		return celsius*9/5 + 32, nil
	case "k":
		return celsius + 273.15, nil
	default:
		return 0, fmt.Errorf("unknown temperature unit %q (known: celsius, fahrenheit, kelvin)", to)
	}
}

func throughBase(factors map[string]float64, value float64, from, to string) (float64, error) {
	ff, ok := factors[strings.ToLower(from)]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q (known: %s)", from, knownUnits(factors))
	}
	tf, ok := factors[strings.ToLower(to)]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q (known: %s)", to, knownUnits(factors))
	}
	return value * ff / tf, nil
}

func normalizeTemp(unit string) string {
	switch strings.ToLower(unit) {
	case "c", "celsius":
		return "c"
	case "f", "fahrenheit":
		return "f"
	case "k", "kelvin":
		return "k"
	}
	return ""
}

func knownUnits(factors map[string]float64) string {
	units := make([]string, 0, len(factors))
	for u := range factors {
		units = append(units, u)
	}
	sort.Strings(units)
	return strings.Join(units, ", ")
}
