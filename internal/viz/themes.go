package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines a color scheme for the TUI
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Warning    lipgloss.Color
	Danger     lipgloss.Color
}

// Available themes
var (
	ThemeVoid = Theme{
		Name:       "void",
		Primary:    lipgloss.Color("#bb66ff"), // Horizon violet
		Secondary:  lipgloss.Color("#8844cc"),
		Accent:     lipgloss.Color("#ffcc00"),
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#e8e0ff"),
		Muted:      lipgloss.Color("#665588"),
		Warning:    lipgloss.Color("#ff8800"),
		Danger:     lipgloss.Color("#ff3355"),
	}

	ThemePulsar = Theme{
		Name:       "pulsar",
		Primary:    lipgloss.Color("#00ccff"), // Beamed cyan
		Secondary:  lipgloss.Color("#0088bb"),
		Accent:     lipgloss.Color("#ffffff"),
		Background: lipgloss.Color("#001122"),
		Text:       lipgloss.Color("#d0f0ff"),
		Muted:      lipgloss.Color("#336688"),
		Warning:    lipgloss.Color("#ffcc00"),
		Danger:     lipgloss.Color("#ff4444"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Primary:    lipgloss.Color("#00ff00"), // Green phosphor
		Secondary:  lipgloss.Color("#00cc00"),
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Warning:    lipgloss.Color("#ffff00"),
		Danger:     lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#cccccc"),
		Accent:     lipgloss.Color("#0088ff"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Warning:    lipgloss.Color("#ffaa00"),
		Danger:     lipgloss.Color("#ff0000"),
	}

	// Default theme
	CurrentTheme = ThemeVoid

	// All available themes
	Themes = []Theme{
		ThemeVoid,
		ThemePulsar,
		ThemeRetroGreen,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeVoid
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
