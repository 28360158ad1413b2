package artgen

import (
	"strings"
	"testing"
)

func TestBannerDimensions(t *testing.T) {
	out := Banner("Go 1")
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("banner has %d lines, want 5", len(lines))
	}
	want := 4 * 6 // four glyphs, six columns each
	for i, line := range lines {
		if n := len([]rune(line)); n != want {
			t.Errorf("line %d width = %d, want %d", i, n, want)
		}
	}
}

func TestBannerUnknownCharBlank(t *testing.T) {
	out := Banner("?")
	if strings.Contains(out, "█") {
		t.Fatalf("unknown character should render blank, got:\n%s", out)
	}
}

func TestBannerLowercase(t *testing.T) {
	if Banner("abc") != Banner("ABC") {
		t.Fatal("banner should be case-insensitive")
	}
}

func TestSquare(t *testing.T) {
	out, err := Shape("square", 4)
	if err != nil {
		t.Fatalf("Shape: %v", err)
	}
	want := "████\n█  █\n█  █\n████"
	if out != want {
		t.Errorf("square(4) =\n%s\nwant\n%s", out, want)
	}
}

func TestTriangle(t *testing.T) {
	out, err := Shape("triangle", 3)
	if err != nil {
		t.Fatalf("Shape: %v", err)
	}
	want := "  █\n ███\n█████"
	if out != want {
		t.Errorf("triangle(3) =\n%s\nwant\n%s", out, want)
	}
}

func TestDiamondSymmetry(t *testing.T) {
	out, err := Shape("diamond", 5)
	if err != nil {
		t.Fatalf("Shape: %v", err)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("diamond(5) has %d rows, want 9", len(lines))
	}
	for i := 0; i < len(lines)/2; i++ {
		if lines[i] != lines[len(lines)-1-i] {
			t.Errorf("row %d %q != mirrored row %q", i, lines[i], lines[len(lines)-1-i])
		}
	}
}

func TestCircleTouchesAxes(t *testing.T) {
	out, err := Shape("circle", 4)
	if err != nil {
		t.Fatalf("Shape: %v", err)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("circle(4) has %d rows, want 9", len(lines))
	}
	top := []rune(lines[0])
	if top[4] != '█' {
		t.Errorf("top of circle missing at column 4: %q", lines[0])
	}
	mid := []rune(lines[4])
	if mid[0] != '█' || mid[8] != '█' {
		t.Errorf("circle midline edges missing: %q", lines[4])
	}
}

func TestShapeErrors(t *testing.T) {
	if _, err := Shape("hexagon", 3); err == nil {
		t.Fatal("expected error for unknown shape")
	}
	if _, err := Shape("square", 0); err == nil {
		t.Fatal("expected error for non-positive size")
	}
}
