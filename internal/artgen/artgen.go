// Package artgen renders block-letter text banners and simple ASCII shapes.
package artgen

import (
	"fmt"
	"math"
	"strings"
)

// blockFont maps characters to 5-line glyphs, each 6 columns wide. Letters
// are drawn with full-block runes; unknown characters render as blanks.
var blockFont = map[rune][5]string{
	'A': {"  ██  ", " ████ ", "██  ██", "██████", "██  ██"},
	'B': {"█████ ", "██  ██", "█████ ", "██  ██", "█████ "},
	'C': {" █████", "██    ", "██    ", "██    ", " █████"},
	'D': {"█████ ", "██  ██", "██  ██", "██  ██", "█████ "},
	'E': {"██████", "██    ", "█████ ", "██    ", "██████"},
	'F': {"██████", "██    ", "█████ ", "██    ", "██    "},
	'G': {" █████", "██    ", "██ ███", "██  ██", " █████"},
	'H': {"██  ██", "██  ██", "██████", "██  ██", "██  ██"},
	'I': {"██████", "  ██  ", "  ██  ", "  ██  ", "██████"},
	'J': {"██████", "    ██", "    ██", "██  ██", " ████ "},
	'K': {"██  ██", "██ ██ ", "████  ", "██ ██ ", "██  ██"},
	'L': {"██    ", "██    ", "██    ", "██    ", "██████"},
	'M': {"██  ██", "██████", "██████", "██  ██", "██  ██"},
	'N': {"██  ██", "███ ██", "██ ███", "██  ██", "██  ██"},
	'O': {" █████", "██  ██", "██  ██", "██  ██", " █████"},
	'P': {"█████ ", "██  ██", "█████ ", "██    ", "██    "},
	'Q': {" █████", "██  ██", "██ ███", "██ ██ ", " █████"},
	'R': {"█████ ", "██  ██", "█████ ", "██ ██ ", "██  ██"},
	'S': {" █████", "██    ", " █████", "    ██", " █████"},
	'T': {"██████", "  ██  ", "  ██  ", "  ██  ", "  ██  "},
	'U': {"██  ██", "██  ██", "██  ██", "██  ██", " █████"},
	'V': {"██  ██", "██  ██", "██  ██", " ████ ", "  ██  "},
	'W': {"██  ██", "██  ██", "██████", "██████", "██  ██"},
	'X': {"██  ██", " ████ ", "  ██  ", " ████ ", "██  ██"},
	'Y': {"██  ██", "██  ██", " ████ ", "  ██  ", "  ██  "},
	'Z': {"██████", "    ██", "  ██  ", "██    ", "██████"},
	'0': {" █████", "██  ██", "██  ██", "██  ██", " █████"},
	'1': {"  ██  ", " ███  ", "  ██  ", "  ██  ", "██████"},
	'2': {" █████", "    ██", " ████ ", "██    ", "██████"},
	'3': {"█████ ", "    ██", " ████ ", "    ██", "█████ "},
	'4': {"██  ██", "██  ██", "██████", "    ██", "    ██"},
	'5': {"██████", "██    ", "█████ ", "    ██", "█████ "},
	'6': {" █████", "██    ", "█████ ", "██  ██", " ████ "},
	'7': {"██████", "    ██", "   ██ ", "  ██  ", "  ██  "},
	'8': {" ████ ", "██  ██", " ████ ", "██  ██", " ████ "},
	'9': {" ████ ", "██  ██", " █████", "    ██", "█████ "},
	' ': {"      ", "      ", "      ", "      ", "      "},
}

// Banner renders text as a 5-line block banner. Input is uppercased;
// characters outside the font render as blank cells.
func Banner(text string) string {
	var lines [5]strings.Builder
	for _, r := range strings.ToUpper(text) {
		glyph, ok := blockFont[r]
		if !ok {
			glyph = blockFont[' ']
		}
		for i := range lines {
			lines[i].WriteString(glyph[i])
		}
	}
	out := make([]string, 5)
	for i := range lines {
		out[i] = lines[i].String()
	}
	return strings.Join(out, "\n")
}

// Shape draws a named shape at the given size. Known shapes are square,
// triangle, diamond, and circle (size is the radius).
func Shape(name string, size int) (string, error) {
	if size < 1 {
		return "", fmt.Errorf("size must be positive, got %d", size)
	}
	switch name {
	case "square":
		return square(size), nil
	case "triangle":
		return triangle(size), nil
	case "diamond":
		return diamond(size), nil
	case "circle":
		return circle(size), nil
	default:
		return "", fmt.Errorf("unknown shape %q (known: square, triangle, diamond, circle)", name)
	}
}

func square(size int) string {
	rows := make([]string, size)
	for i := range rows {
		if i == 0 || i == size-1 {
			rows[i] = strings.Repeat("█", size)
		} else {
			rows[i] = "█" + strings.Repeat(" ", size-2) + "█"
		}
	}
	return strings.Join(rows, "\n")
}

func triangle(size int) string {
	rows := make([]string, size)
	for i := range rows {
		rows[i] = strings.Repeat(" ", size-i-1) + strings.Repeat("█", 2*i+1)
	}
	return strings.Join(rows, "\n")
}

func diamond(size int) string {
	rows := make([]string, 0, 2*size-1)
	for i := 0; i < size; i++ {
		rows = append(rows, strings.Repeat(" ", size-i-1)+strings.Repeat("█", 2*i+1))
	}
	for i := size - 2; i >= 0; i-- {
		rows = append(rows, strings.Repeat(" ", size-i-1)+strings.Repeat("█", 2*i+1))
	}
	return strings.Join(rows, "\n")
}

func circle(radius int) string {
	rows := make([]string, 0, 2*radius+1)
	for y := -radius; y <= radius; y++ {
		var b strings.Builder
		for x := -radius; x <= radius; x++ {
			d := math.Sqrt(float64(x*x + y*y))
			if math.Abs(d-float64(radius)) < 0.5 {
				b.WriteString("█")
			} else {
				b.WriteString(" ")
			}
		}
		rows = append(rows, b.String())
	}
	return strings.Join(rows, "\n")
}
