package games

import (
	"fmt"
	"math/rand"
)

// Hint tells the player which direction their guess missed.
type Hint int

const (
	HintCorrect Hint = iota
	HintHigher
	HintLower
)

// GuessGame is the 1..100 number guessing game.
type GuessGame struct {
	secret   int
	attempts int
	solved   bool
}

// NewGuessGame picks a secret number in [1, 100] from rng.
func NewGuessGame(rng *rand.Rand) *GuessGame {
	return &GuessGame{secret: rng.Intn(100) + 1}
}

// NewGuessGameSecret starts a game with a fixed secret.
func NewGuessGameSecret(secret int) *GuessGame {
	return &GuessGame{secret: secret}
}

// Guess submits a number and returns a direction hint. Guesses outside
// 1..100 are rejected and do not count as attempts.
func (g *GuessGame) Guess(n int) (Hint, error) {
	if g.solved {
		return HintCorrect, ErrGameOver
	}
	if n < 1 || n > 100 {
		return 0, fmt.Errorf("guess must be between 1 and 100, got %d", n)
	}
	g.attempts++
	switch {
	case n == g.secret:
		g.solved = true
		return HintCorrect, nil
	case n < g.secret:
		return HintHigher, nil
	default:
		return HintLower, nil
	}
}

// Attempts returns how many valid guesses have been made.
func (g *GuessGame) Attempts() int { return g.attempts }

// Solved reports whether the secret has been found.
func (g *GuessGame) Solved() bool { return g.solved }

// Secret returns the answer. Only meaningful once the game is over.
func (g *GuessGame) Secret() int { return g.secret }
