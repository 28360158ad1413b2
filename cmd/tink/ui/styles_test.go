package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectThemeFromColorFGBG(t *testing.T) {
	t.Setenv("TINK_DARK_MODE", "")

	t.Setenv("COLORFGBG", "15;0")
	assert.True(t, DetectTheme().IsDark, "black background should pick the dark theme")

	t.Setenv("COLORFGBG", "0;15")
	assert.False(t, DetectTheme().IsDark, "white background should pick the light theme")

	t.Setenv("COLORFGBG", "garbage")
	assert.False(t, DetectTheme().IsDark, "unparseable hint should fall back to light")
}

func TestDetectThemeEnvOverride(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("TINK_DARK_MODE", "1")
	assert.True(t, DetectTheme().IsDark)
}

func TestSimpleTableView(t *testing.T) {
	styles := NewStyles(LightTheme())

	table := NewSimpleTable("Scores", []string{"Player", "Score"})
	assert.Empty(t, table.View(styles), "empty table should render nothing")

	table.AddRow("ada", "100")
	table.AddRow("grace", "95")
	out := table.View(styles)
	assert.Contains(t, out, "Scores")
	assert.Contains(t, out, "Player")
	assert.Contains(t, out, "ada")
	assert.Contains(t, out, "grace")
}

func TestRenderDivider(t *testing.T) {
	styles := NewStyles(LightTheme())
	assert.Contains(t, styles.RenderDivider(4), "────")
}
