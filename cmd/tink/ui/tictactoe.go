package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tinkerbox/internal/games"
)

// TicTacToeModel is a two-player board played at one keyboard. Arrows move
// the cursor, enter places the current player's mark.
type TicTacToeModel struct {
	styles Styles
	game   *games.TicTacToe
	row    int
	col    int
	status string
}

// NewTicTacToeModel wraps a game.
func NewTicTacToeModel(game *games.TicTacToe, styles Styles) TicTacToeModel {
	return TicTacToeModel{styles: styles, game: game}
}

// Game exposes the engine.
func (m TicTacToeModel) Game() *games.TicTacToe { return m.game }

func (m TicTacToeModel) Init() tea.Cmd { return nil }

func (m TicTacToeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	}
	if m.game.Over() {
		return m, tea.Quit
	}
	switch key.String() {
	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		if m.row < 2 {
			m.row++
		}
	case "left", "h":
		if m.col > 0 {
			m.col--
		}
	case "right", "l":
		if m.col < 2 {
			m.col++
		}
	case "enter", " ":
		if err := m.game.Move(m.row, m.col); err != nil {
			m.status = m.styles.Warning.Render(err.Error())
		} else {
			m.status = ""
		}
	}
	return m, nil
}

func (m TicTacToeModel) View() string {
	s := m.styles
	var sb strings.Builder
	sb.WriteString(s.Title.Render("Tic-Tac-Toe") + "\n\n")

	for r := 0; r < 3; r++ {
		cells := make([]string, 3)
		for c := 0; c < 3; c++ {
			mark := string(m.game.Cell(r, c))
			cell := " " + mark + " "
			switch {
			case r == m.row && c == m.col && !m.game.Over():
				cells[c] = s.Prompt.Render("[" + mark + "]")
			case mark == " ":
				cells[c] = s.Muted.Render(cell)
			default:
				cells[c] = s.Bold.Render(cell)
			}
		}
		sb.WriteString(" " + strings.Join(cells, s.Divider.Render("|")) + "\n")
		if r < 2 {
			sb.WriteString(" " + s.Divider.Render("---+---+---") + "\n")
		}
	}
	sb.WriteString("\n")

	switch {
	case m.game.Winner() != games.Empty:
		sb.WriteString(s.Success.Render(fmt.Sprintf("Player %c wins!", m.game.Winner())) +
			" " + s.Muted.Render("press any key to exit"))
	case m.game.Draw():
		sb.WriteString(s.Bold.Render("It's a draw.") + " " + s.Muted.Render("press any key to exit"))
	default:
		sb.WriteString(s.Body.Render(fmt.Sprintf("Player %c to move", m.game.Current())) + "\n")
		if m.status != "" {
			sb.WriteString(m.status + "\n")
		}
		sb.WriteString(s.Footer.Render("arrows move · enter place · q quit"))
	}
	return s.Content.Render(sb.String())
}
