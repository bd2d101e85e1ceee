package viz

import (
	"strings"

	"github.com/san-kum/sublab/internal/sim"
)

// Apparatus sketches the cold glass, the watch glass and the heater with the
// parts that are currently active highlighted.
func (s Styles) Apparatus(a sim.Apparatus) string {
	frost := s.Subtle.Render("   \\___________/   ")
	if a.Frost {
		frost = s.Frost.Render("   \\_*_*_*_*_*_/   ")
	}

	vapor := "                   "
	if a.Vapor {
		vapor = s.Frost.Render("     ~  ~  ~  ~    ")
	}

	solid := s.Text.Render("      ▄▄▄▄▄▄▄      ")
	if a.Solid {
		solid = s.Warn.Render("       ▄▄▄▄▄       ")
	}

	heater := s.Subtle.Render("  [=== heater ===]  ")
	if a.Heater {
		heater = s.Heat.Render("  [### heater ###]  ")
	}

	lines := []string{
		s.Subtle.Render("   _____________   "),
		frost,
		vapor,
		solid,
		s.Subtle.Render("    \\_________/    "),
		heater,
	}
	return strings.Join(lines, "\n")
}

// Legend lists the apparatus parts with their on/off state.
func (s Styles) Legend(a sim.Apparatus) string {
	item := func(name string, on bool) string {
		if on {
			return s.Good.Render("● " + name)
		}
		return s.Subtle.Render("○ " + name)
	}
	return strings.Join([]string{
		item("heater", a.Heater),
		item("shrinking", a.Solid),
		item("vapor", a.Vapor),
		item("frost", a.Frost),
	}, "  ")
}
