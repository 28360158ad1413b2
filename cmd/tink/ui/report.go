package ui

import (
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown pretty-prints markdown for the terminal, matching the
// active theme. On renderer failure the raw markdown comes back so the
// content is never lost.
func RenderMarkdown(markdown string, styles Styles) string {
	style := "light"
	if styles.Theme.IsDark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}
