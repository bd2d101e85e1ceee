package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles derived from a theme.
type Styles struct {
	Theme    Theme
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Text     lipgloss.Style
	Panel    lipgloss.Style
	Selected lipgloss.Style
	Key      lipgloss.Style
	Hint     lipgloss.Style
	Value    lipgloss.Style
	Label    lipgloss.Style
	Good     lipgloss.Style
	Bad      lipgloss.Style
	Warn     lipgloss.Style
	Heat     lipgloss.Style
	Frost    lipgloss.Style
	Toast    lipgloss.Style
	Disabled lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Theme: t,
		Title: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Subtle: lipgloss.NewStyle().
			Foreground(t.Muted),
		Text: lipgloss.NewStyle().Foreground(t.Text),
		// Glass panel effect with subtle border
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 2),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		Key:      lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Hint:     lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Value:    lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Label:    lipgloss.NewStyle().Foreground(t.Muted).Width(14),
		Good:     lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		Bad:      lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		Warn:     lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		Heat:     lipgloss.NewStyle().Bold(true).Foreground(t.Heat),
		Frost:    lipgloss.NewStyle().Foreground(t.Frost),
		Toast: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(t.Error).
			Padding(0, 2),
		Disabled: lipgloss.NewStyle().Foreground(t.Muted).Strikethrough(true),
	}
}

// ProgressBar renders a filled bar for percent in [0, 1].
func (s Styles) ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if percent >= 1 {
		return s.Good.Render(bar)
	}
	return s.Title.Render(bar)
}

// KeyHints renders "key action" pairs.
func (s Styles) KeyHints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(s.Key.Render(pairs[i]))
		b.WriteString(s.Hint.Render(" " + pairs[i+1]))
	}
	return b.String()
}

// Separator renders a decorative rule.
func (s Styles) Separator(width int) string {
	if width < 8 {
		return s.Subtle.Render(strings.Repeat("─", width))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.Subtle.Render(left + " ◆ " + right)
}
