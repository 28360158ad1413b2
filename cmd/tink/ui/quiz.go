package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tinkerbox/internal/games"
)

// QuizModel runs a quiz session in the terminal. Answers are picked with
// the arrow keys or the 1-9 shortcuts; after each answer the explanation
// shows until any key advances.
type QuizModel struct {
	styles  Styles
	session *games.QuizSession
	cursor  int
	// result holds the feedback for the question just answered, shown
	// until the player advances.
	result   *games.AnswerResult
	finished bool
}

// NewQuizModel wraps a session.
func NewQuizModel(session *games.QuizSession, styles Styles) QuizModel {
	return QuizModel{styles: styles, session: session}
}

// Session exposes the underlying quiz for score recording after the
// program exits.
func (m QuizModel) Session() *games.QuizSession { return m.session }

func (m QuizModel) Init() tea.Cmd { return nil }

func (m QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	if m.finished {
		return m, tea.Quit
	}
	if m.result != nil {
		// Any key dismisses the explanation.
		m.result = nil
		m.cursor = 0
		if m.session.Done() {
			m.finished = true
		}
		return m, nil
	}

	q, ok2 := m.session.Question()
	if !ok2 {
		m.finished = true
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(q.Options)-1 {
			m.cursor++
		}
	case "enter", " ":
		res, err := m.session.Answer(m.cursor)
		if err == nil {
			m.result = &res
		}
	default:
		if n := int(key.String()[0] - '1'); len(key.String()) == 1 && n >= 0 && n < len(q.Options) {
			res, err := m.session.Answer(n)
			if err == nil {
				m.result = &res
			}
		}
	}
	return m, nil
}

func (m QuizModel) View() string {
	var sb strings.Builder
	s := m.styles

	if m.finished || (m.session.Done() && m.result == nil) {
		correct, total, percent := m.session.Score()
		sb.WriteString(s.Title.Render("Quiz complete") + "\n\n")
		sb.WriteString(fmt.Sprintf("Score: %d/%d (%.0f%%)\n", correct, total, percent))
		sb.WriteString(s.Bold.Render(games.GradeBand(percent)) + "\n\n")
		sb.WriteString(s.Muted.Render("press any key to exit"))
		return s.Content.Render(sb.String())
	}

	n, total := m.session.Progress()
	sb.WriteString(s.Title.Render(fmt.Sprintf("Question %d/%d — %s", n, total, m.session.Deck().Name)) + "\n\n")

	if m.result != nil {
		if m.result.Correct {
			sb.WriteString(s.Success.Render("✓ Correct!") + "\n")
		} else {
			sb.WriteString(s.Error.Render("✗ Wrong!") + " " +
				fmt.Sprintf("The correct answer was: %s", m.result.CorrectOption) + "\n")
		}
		if m.result.Explanation != "" {
			sb.WriteString(s.Muted.Render(m.result.Explanation) + "\n")
		}
		sb.WriteString("\n" + s.Muted.Render("press any key to continue"))
		return s.Content.Render(sb.String())
	}

	q, _ := m.session.Question()
	sb.WriteString(s.Body.Render(q.Prompt) + "\n\n")
	for i, opt := range q.Options {
		line := fmt.Sprintf("%d. %s", i+1, opt)
		if i == m.cursor {
			sb.WriteString(s.Prompt.Render("> "+line) + "\n")
		} else {
			sb.WriteString("  " + s.Body.Render(line) + "\n")
		}
	}
	sb.WriteString("\n" + s.Footer.Render("↑/↓ move · enter answer · q quit"))
	return s.Content.Render(sb.String())
}
