package games

import (
	"errors"
	"math/rand"
	"testing"
)

func TestGuessHints(t *testing.T) {
	g := NewGuessGameSecret(42)
	h, err := g.Guess(10)
	if err != nil || h != HintHigher {
		t.Fatalf("Guess(10) = %v, %v, want HintHigher", h, err)
	}
	h, err = g.Guess(90)
	if err != nil || h != HintLower {
		t.Fatalf("Guess(90) = %v, %v, want HintLower", h, err)
	}
	h, err = g.Guess(42)
	if err != nil || h != HintCorrect {
		t.Fatalf("Guess(42) = %v, %v, want HintCorrect", h, err)
	}
	if !g.Solved() || g.Attempts() != 3 {
		t.Fatalf("solved=%v attempts=%d, want solved after 3", g.Solved(), g.Attempts())
	}
	if _, err := g.Guess(42); !errors.Is(err, ErrGameOver) {
		t.Fatalf("guess after solve: err = %v, want ErrGameOver", err)
	}
}

func TestGuessOutOfRange(t *testing.T) {
	g := NewGuessGameSecret(50)
	for _, n := range []int{0, -5, 101} {
		if _, err := g.Guess(n); err == nil {
			t.Errorf("Guess(%d): expected error", n)
		}
	}
	if g.Attempts() != 0 {
		t.Fatalf("invalid guesses counted: %d", g.Attempts())
	}
}

func TestNewGuessGameRange(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		g := NewGuessGame(rng)
		if g.Secret() < 1 || g.Secret() > 100 {
			t.Fatalf("secret %d out of range", g.Secret())
		}
	}
}
