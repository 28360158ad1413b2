// Package games holds the pure game engines: tic-tac-toe, hangman, the
// quiz, and number guessing. The engines carry no I/O; cmd/tink/ui renders
// them.
package games

import (
	"errors"
	"fmt"
)

// Mark is a tic-tac-toe cell value.
type Mark byte

const (
	Empty Mark = ' '
	X     Mark = 'X'
	O     Mark = 'O'
)

// ErrGameOver is returned for moves after the game has been decided.
var ErrGameOver = errors.New("game is over")

// TicTacToe is a 3x3 two-player board. X moves first.
type TicTacToe struct {
	board   [3][3]Mark
	current Mark
	moves   int
}

// NewTicTacToe returns a fresh board with X to move.
func NewTicTacToe() *TicTacToe {
	t := &TicTacToe{current: X}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			t.board[r][c] = Empty
		}
	}
	return t
}

// Current returns the player whose turn it is.
func (t *TicTacToe) Current() Mark { return t.current }

// Cell returns the mark at row, col.
func (t *TicTacToe) Cell(row, col int) Mark { return t.board[row][col] }

// Move places the current player's mark at row, col (0-based) and switches
// turns. Out-of-range and occupied cells are rejected; so are moves after
// the game ends.
func (t *TicTacToe) Move(row, col int) error {
	if t.Over() {
		return ErrGameOver
	}
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return fmt.Errorf("position %d,%d out of range", row, col)
	}
	if t.board[row][col] != Empty {
		return fmt.Errorf("position %d,%d already taken", row, col)
	}
	t.board[row][col] = t.current
	t.moves++
	if t.Winner() == Empty {
		if t.current == X {
			t.current = O
		} else {
			t.current = X
		}
	}
	return nil
}

// Winner checks the three rows, three columns, and two diagonals and
// returns the winning mark, or Empty when nobody has won.
func (t *TicTacToe) Winner() Mark {
	b := t.board
	for i := 0; i < 3; i++ {
		if b[i][0] != Empty && b[i][0] == b[i][1] && b[i][1] == b[i][2] {
			return b[i][0]
		}
		if b[0][i] != Empty && b[0][i] == b[1][i] && b[1][i] == b[2][i] {
			return b[0][i]
		}
	}
	if b[1][1] != Empty && (b[0][0] == b[1][1] && b[1][1] == b[2][2] ||
		b[0][2] == b[1][1] && b[1][1] == b[2][0]) {
		return b[1][1]
	}
	return Empty
}

// Draw reports a full board with no winner.
func (t *TicTacToe) Draw() bool {
	return t.moves == 9 && t.Winner() == Empty
}

// Over reports whether the game has been decided.
func (t *TicTacToe) Over() bool {
	return t.Winner() != Empty || t.moves == 9
}
