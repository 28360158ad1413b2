package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tinkerbox/internal/games"
)

// GuessModel plays the 1..100 number guessing game with a text input.
type GuessModel struct {
	styles Styles
	game   *games.GuessGame
	input  textinput.Model
	status string
}

// NewGuessModel wraps a game.
func NewGuessModel(game *games.GuessGame, styles Styles) GuessModel {
	ti := textinput.New()
	ti.Placeholder = "1-100"
	ti.CharLimit = 3
	ti.Width = 8
	ti.Focus()
	return GuessModel{styles: styles, game: game, input: ti}
}

// Game exposes the engine for score recording.
func (m GuessModel) Game() *games.GuessGame { return m.game }

func (m GuessModel) Init() tea.Cmd { return textinput.Blink }

func (m GuessModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.game.Solved() {
				return m, tea.Quit
			}
			n, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
			if err != nil {
				m.status = m.styles.Warning.Render("enter a number")
				m.input.SetValue("")
				return m, nil
			}
			hint, err := m.game.Guess(n)
			if err != nil {
				m.status = m.styles.Warning.Render(err.Error())
				m.input.SetValue("")
				return m, nil
			}
			switch hint {
			case games.HintCorrect:
				m.status = m.styles.Success.Render(
					fmt.Sprintf("Correct! You got it in %d attempts.", m.game.Attempts()))
			case games.HintHigher:
				m.status = m.styles.Info.Render("Higher…")
			case games.HintLower:
				m.status = m.styles.Info.Render("Lower…")
			}
			m.input.SetValue("")
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m GuessModel) View() string {
	s := m.styles
	var sb strings.Builder
	sb.WriteString(s.Title.Render("Guess the Number") + "\n\n")
	sb.WriteString(s.Body.Render("I'm thinking of a number between 1 and 100.") + "\n\n")
	if !m.game.Solved() {
		sb.WriteString(m.input.View() + "\n")
	}
	if m.status != "" {
		sb.WriteString(m.status + "\n")
	}
	sb.WriteString(s.Muted.Render(fmt.Sprintf("attempts: %d", m.game.Attempts())) + "\n")
	if m.game.Solved() {
		sb.WriteString("\n" + s.Muted.Render("press enter to exit"))
	} else {
		sb.WriteString("\n" + s.Footer.Render("enter guess · esc quit"))
	}
	return s.Content.Render(sb.String())
}
