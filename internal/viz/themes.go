package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Heat      lipgloss.Color
	Frost     lipgloss.Color
}

// Available themes
var (
	ThemeLab = Theme{
		Name:      "lab",
		Primary:   lipgloss.Color("#00cccc"),
		Secondary: lipgloss.Color("#ff88ff"),
		Accent:    lipgloss.Color("#ffcc00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Success:   lipgloss.Color("#2ecc71"),
		Warning:   lipgloss.Color("#ffaa00"),
		Error:     lipgloss.Color("#e74c3c"),
		Heat:      lipgloss.Color("#ff5533"),
		Frost:     lipgloss.Color("#aee6ff"),
	}

	ThemeChalk = Theme{
		Name:      "chalk",
		Primary:   lipgloss.Color("#f0f0e0"), // Chalk on a green board
		Secondary: lipgloss.Color("#c8e6c9"),
		Accent:    lipgloss.Color("#fff59d"),
		Text:      lipgloss.Color("#f5f5f5"),
		Muted:     lipgloss.Color("#6b8e6b"),
		Success:   lipgloss.Color("#a5d6a7"),
		Warning:   lipgloss.Color("#ffe082"),
		Error:     lipgloss.Color("#ef9a9a"),
		Heat:      lipgloss.Color("#ffab91"),
		Frost:     lipgloss.Color("#e1f5fe"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ffaa00"),
		Error:     lipgloss.Color("#ff0000"),
		Heat:      lipgloss.Color("#ff8800"),
		Frost:     lipgloss.Color("#ccf2ff"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"), // Ocean blue
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffcc00"),
		Error:     lipgloss.Color("#ff4444"),
		Heat:      lipgloss.Color("#ff7043"),
		Frost:     lipgloss.Color("#b3e5fc"),
	}

	// All available themes
	Themes = []Theme{
		ThemeLab,
		ThemeChalk,
		ThemeMinimal,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to the lab theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeLab
}

func HasTheme(name string) bool {
	for _, t := range Themes {
		if t.Name == name {
			return true
		}
	}
	return false
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
