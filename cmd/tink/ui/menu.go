package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// MenuItem is one entry on the home menu. Command holds the tink
// subcommand to suggest when the entry is chosen.
type MenuItem struct {
	Name    string
	Detail  string
	Command string
}

func (i MenuItem) Title() string       { return i.Name }
func (i MenuItem) Description() string { return i.Detail }
func (i MenuItem) FilterValue() string { return i.Name }

// HomeItems is the default menu shown when tink runs bare.
func HomeItems() []MenuItem {
	return []MenuItem{
		{"Tasks", "todo list with priorities and due dates", "task list"},
		{"Notes", "searchable notes by category", "note list"},
		{"Contacts", "address book with import/export", "contact list"},
		{"Expenses", "spending tracker and reports", "expense report"},
		{"Blog", "posts, comments, and stats", "blog stats"},
		{"Vault", "encrypted password storage", "vault list"},
		{"Quiz", "multiple-choice trivia", "play quiz"},
		{"Hangman", "guess the word", "play hangman"},
		{"Tic-Tac-Toe", "two players, one keyboard", "play tictactoe"},
		{"Guess", "number guessing 1-100", "play guess"},
		{"Passwords", "generate and check passwords", "passgen"},
		{"Cipher", "caesar, base64, hashes", "cipher"},
		{"Convert", "length, weight, temperature, area", "convert"},
		{"ASCII art", "banners and shapes", "art banner"},
		{"Organize", "sort a folder by file type", "organize analyze"},
		{"Scrape", "extract structure from a web page", "scrape"},
		{"Weather", "simulated forecasts and favorites", "weather"},
		{"Grades", "grade book and report cards", "grades"},
		{"Calculator", "arithmetic with history", "calc"},
		{"Story", "mad-libs and a tiny adventure", "story"},
	}
}

// MenuModel is the home menu. When the user picks an entry the model quits
// and Chosen reports the selection.
type MenuModel struct {
	styles Styles
	list   list.Model
	chosen *MenuItem
}

// NewMenuModel builds the home menu over items.
func NewMenuModel(items []MenuItem, styles Styles) MenuModel {
	entries := make([]list.Item, len(items))
	for i, it := range items {
		entries[i] = it
	}
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(styles.Theme.Accent).
		BorderLeftForeground(styles.Theme.Accent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(styles.Theme.Muted).
		BorderLeftForeground(styles.Theme.Accent)

	l := list.New(entries, delegate, 0, 0)
	l.Title = "tinkerbox"
	l.Styles.Title = styles.Header
	l.SetShowStatusBar(false)
	return MenuModel{styles: styles, list: l}
}

// Chosen returns the picked entry, or nil when the menu was dismissed.
func (m MenuModel) Chosen() *MenuItem { return m.chosen }

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(MenuItem); ok {
				m.chosen = &item
				return m, tea.Quit
			}
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m MenuModel) View() string {
	return m.list.View()
}
