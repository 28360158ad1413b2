package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tinkerbox/internal/games"
)

// HangmanModel plays a hangman round; letters are guessed straight from
// the keyboard.
type HangmanModel struct {
	styles Styles
	game   *games.Hangman
	status string
}

// NewHangmanModel wraps a game.
func NewHangmanModel(game *games.Hangman, styles Styles) HangmanModel {
	return HangmanModel{styles: styles, game: game}
}

// Game exposes the engine for score recording after exit.
func (m HangmanModel) Game() *games.Hangman { return m.game }

func (m HangmanModel) Init() tea.Cmd { return nil }

func (m HangmanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	}
	if m.game.Won() || m.game.Lost() {
		return m, tea.Quit
	}
	ks := key.String()
	if len(ks) != 1 {
		return m, nil
	}
	hit, err := m.game.Guess(rune(ks[0]))
	switch {
	case errors.Is(err, games.ErrAlreadyGuessed):
		m.status = m.styles.Warning.Render(fmt.Sprintf("already guessed %q", ks))
	case err != nil:
		m.status = m.styles.Warning.Render("guess a letter a-z")
	case hit:
		m.status = m.styles.Success.Render(fmt.Sprintf("%q is in the word", ks))
	default:
		m.status = m.styles.Error.Render(fmt.Sprintf("%q is not in the word", ks))
	}
	return m, nil
}

func (m HangmanModel) View() string {
	s := m.styles
	var sb strings.Builder
	sb.WriteString(s.Title.Render("Hangman") + "\n\n")
	sb.WriteString(s.CodeBlock.Render(m.game.Gallows()) + "\n\n")
	sb.WriteString(s.Bold.Render(m.game.Masked()) + "\n\n")
	if guessed := m.game.Guessed(); len(guessed) > 0 {
		sb.WriteString(s.Muted.Render("guessed: "+strings.Join(guessed, " ")) + "\n")
	}
	sb.WriteString(s.Body.Render(fmt.Sprintf("wrong guesses: %d/%d", m.game.Wrong(), games.MaxWrongGuesses)) + "\n")
	if m.status != "" {
		sb.WriteString(m.status + "\n")
	}
	switch {
	case m.game.Won():
		sb.WriteString("\n" + s.Success.Render("You won!") + " " + s.Muted.Render("press any key to exit"))
	case m.game.Lost():
		sb.WriteString("\n" + s.Error.Render(fmt.Sprintf("You lost. The word was %q.", m.game.Word())) +
			" " + s.Muted.Render("press any key to exit"))
	default:
		sb.WriteString("\n" + s.Footer.Render("type a letter · esc quit"))
	}
	return s.Content.Render(sb.String())
}
