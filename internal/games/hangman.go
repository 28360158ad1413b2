package games

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// MaxWrongGuesses is the number of misses before the game is lost.
const MaxWrongGuesses = 6

// hangmanWords is the default word list.
var hangmanWords = []string{
	"python", "programming", "computer", "algorithm", "function",
	"variable", "dictionary", "list", "string", "integer",
	"boolean", "class", "object", "method", "inheritance",
}

// ErrAlreadyGuessed is returned when a letter is guessed twice.
var ErrAlreadyGuessed = errors.New("letter already guessed")

// Hangman is one round of the word guessing game.
type Hangman struct {
	word    string
	guessed map[rune]bool
	wrong   int
}

// NewHangman starts a game with a random word from the default list,
// picked via rng.
func NewHangman(rng *rand.Rand) *Hangman {
	return NewHangmanWord(hangmanWords[rng.Intn(len(hangmanWords))])
}

// NewHangmanWord starts a game over a fixed word.
func NewHangmanWord(word string) *Hangman {
	return &Hangman{
		word:    strings.ToLower(word),
		guessed: make(map[rune]bool),
	}
}

// Guess submits a single letter. It reports whether the letter is in the
// word; wrong guesses count toward the limit. Repeats and non-letters are
// rejected without penalty.
func (h *Hangman) Guess(letter rune) (bool, error) {
	if h.Won() || h.Lost() {
		return false, ErrGameOver
	}
	letter = toLowerLetter(letter)
	if letter == 0 {
		return false, fmt.Errorf("guess must be a single letter a-z")
	}
	if h.guessed[letter] {
		return false, ErrAlreadyGuessed
	}
	h.guessed[letter] = true
	if strings.ContainsRune(h.word, letter) {
		return true, nil
	}
	h.wrong++
	return false, nil
}

// Masked returns the word with unguessed letters as underscores, space
// separated.
func (h *Hangman) Masked() string {
	parts := make([]string, 0, len(h.word))
	for _, r := range h.word {
		if h.guessed[r] {
			parts = append(parts, string(r))
		} else {
			parts = append(parts, "_")
		}
	}
	return strings.Join(parts, " ")
}

// Guessed returns the guessed letters in alphabetical order.
func (h *Hangman) Guessed() []string {
	out := make([]string, 0, len(h.guessed))
	for r := range h.guessed {
		out = append(out, string(r))
	}
	sort.Strings(out)
	return out
}

// Wrong returns the number of wrong guesses so far.
func (h *Hangman) Wrong() int { return h.wrong }

// Remaining returns how many wrong guesses are left.
func (h *Hangman) Remaining() int { return MaxWrongGuesses - h.wrong }

// Word returns the answer.
func (h *Hangman) Word() string { return h.word }

// Won reports whether every letter of the word has been guessed.
func (h *Hangman) Won() bool {
	for _, r := range h.word {
		if !h.guessed[r] {
			return false
		}
	}
	return true
}

// Lost reports whether the wrong-guess limit has been reached.
func (h *Hangman) Lost() bool { return h.wrong >= MaxWrongGuesses }

// gallowsStages holds the drawing for each wrong-guess count, 0 through 6.
var gallowsStages = [MaxWrongGuesses + 1]string{
	"   +---+\n   |   |\n       |\n       |\n       |\n       |\n=========",
	"   +---+\n   |   |\n   O   |\n       |\n       |\n       |\n=========",
	"   +---+\n   |   |\n   O   |\n   |   |\n       |\n       |\n=========",
	"   +---+\n   |   |\n   O   |\n  /|   |\n       |\n       |\n=========",
	"   +---+\n   |   |\n   O   |\n  /|\\  |\n       |\n       |\n=========",
	"   +---+\n   |   |\n   O   |\n  /|\\  |\n  /    |\n       |\n=========",
	"   +---+\n   |   |\n   O   |\n  /|\\  |\n  / \\  |\n       |\n=========",
}

// Gallows returns the drawing for the current wrong-guess count.
func (h *Hangman) Gallows() string {
	n := h.wrong
	if n > MaxWrongGuesses {
		n = MaxWrongGuesses
	}
	return gallowsStages[n]
}

func toLowerLetter(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return r
	case r >= 'A' && r <= 'Z':
		return r + ('a' - 'A')
	}
	return 0
}
