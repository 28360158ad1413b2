package games

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestHangmanWin(t *testing.T) {
	h := NewHangmanWord("go")
	if h.Masked() != "_ _" {
		t.Fatalf("Masked = %q, want \"_ _\"", h.Masked())
	}
	hit, err := h.Guess('g')
	if err != nil || !hit {
		t.Fatalf("Guess(g) = %v, %v, want hit", hit, err)
	}
	if h.Masked() != "g _" {
		t.Fatalf("Masked = %q, want \"g _\"", h.Masked())
	}
	if _, err := h.Guess('o'); err != nil {
		t.Fatalf("Guess(o): %v", err)
	}
	if !h.Won() || h.Lost() {
		t.Fatalf("expected win, got won=%v lost=%v", h.Won(), h.Lost())
	}
	if _, err := h.Guess('x'); !errors.Is(err, ErrGameOver) {
		t.Fatalf("guess after win: err = %v, want ErrGameOver", err)
	}
}

func TestHangmanLoss(t *testing.T) {
	h := NewHangmanWord("zzz")
	for i, letter := range "abcdef" {
		hit, err := h.Guess(letter)
		if err != nil {
			t.Fatalf("Guess(%c): %v", letter, err)
		}
		if hit {
			t.Fatalf("Guess(%c) hit in word zzz", letter)
		}
		if h.Wrong() != i+1 {
			t.Fatalf("Wrong = %d after %d misses", h.Wrong(), i+1)
		}
	}
	if !h.Lost() {
		t.Fatal("expected loss after 6 wrong guesses")
	}
	if h.Remaining() != 0 {
		t.Fatalf("Remaining = %d, want 0", h.Remaining())
	}
}

func TestHangmanRepeatedGuess(t *testing.T) {
	h := NewHangmanWord("hello")
	if _, err := h.Guess('l'); err != nil {
		t.Fatalf("Guess: %v", err)
	}
	if _, err := h.Guess('L'); !errors.Is(err, ErrAlreadyGuessed) {
		t.Fatalf("repeat guess err = %v, want ErrAlreadyGuessed", err)
	}
	if h.Wrong() != 0 {
		t.Fatalf("repeat guess counted as wrong: %d", h.Wrong())
	}
}

func TestHangmanRejectsNonLetters(t *testing.T) {
	h := NewHangmanWord("hello")
	if _, err := h.Guess('3'); err == nil {
		t.Fatal("expected error for digit guess")
	}
	if _, err := h.Guess('!'); err == nil {
		t.Fatal("expected error for punctuation guess")
	}
}

func TestGallowsStages(t *testing.T) {
	h := NewHangmanWord("zz")
	start := h.Gallows()
	if strings.Contains(start, "O") {
		t.Fatalf("fresh gallows should have no head:\n%s", start)
	}
	h.Guess('a')
	if !strings.Contains(h.Gallows(), "O") {
		t.Fatalf("gallows after one miss should show head:\n%s", h.Gallows())
	}
	// Stages must be distinct so progress is visible.
	seen := map[string]bool{}
	for _, s := range gallowsStages {
		if seen[s] {
			t.Fatal("duplicate gallows stage")
		}
		seen[s] = true
	}
}

func TestNewHangmanUsesWordList(t *testing.T) {
	h := NewHangman(rand.New(rand.NewSource(3)))
	found := false
	for _, w := range hangmanWords {
		if h.Word() == w {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("word %q not from the default list", h.Word())
	}
}
