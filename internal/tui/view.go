package tui

import (
	"fmt"
	"strings"

	"github.com/san-kum/sublab/internal/lab"
	"github.com/san-kum/sublab/internal/surface"
	"github.com/san-kum/sublab/internal/tutorial"
	"github.com/san-kum/sublab/internal/viz"
)

func (m *Model) View() string {
	return m.viewGuard(m.render)
}

func (m *Model) render() string {
	s := m.styles
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("   " + s.Title.Render("s u b l a b") + "  " + s.Subtle.Render("naphthalene sublimation") + "\n")
	b.WriteString(fmt.Sprintf("   %s %s\n", s.ProgressBar(m.d.percent/100, 28),
		s.Subtle.Render(fmt.Sprintf("step %d of %d", m.d.step, m.d.total))))
	b.WriteString("   " + s.Separator(40) + "\n\n")

	b.WriteString("   " + s.Title.Render(m.d.title) + "\n\n")
	for _, line := range tutorial.Step(m.d.step).Info().Body {
		b.WriteString("   " + s.Text.Render(line) + "\n")
	}
	b.WriteString("\n")

	switch tutorial.Step(m.d.step) {
	case tutorial.StepSafety:
		b.WriteString(m.viewSafety())
	case tutorial.StepHypothesis:
		b.WriteString(m.viewHypothesis())
	case tutorial.StepExperiment:
		b.WriteString(m.viewExperiment())
	case tutorial.StepObservations:
		b.WriteString(indent(viz.ObservationTable(m.d.obs)))
	case tutorial.StepResults:
		b.WriteString(m.viewResults())
	}

	b.WriteString("\n" + m.viewFooter() + "\n")
	if m.notice != "" {
		b.WriteString("\n   " + s.Value.Render(m.notice) + "\n")
	}
	if m.d.fault != "" {
		b.WriteString("\n   " + s.Toast.Render(m.d.fault) + "\n")
	}
	return b.String()
}

func (m *Model) viewSafety() string {
	box := "[ ]"
	if m.enabled(surface.ControlSafetyNext) {
		box = m.styles.Good.Render("[x]")
	}
	return fmt.Sprintf("   %s I have read and understood the safety rules\n", box)
}

func (m *Model) viewHypothesis() string {
	var b strings.Builder
	current := m.session.Hypothesis()
	for i, h := range lab.Hypotheses {
		label := fmt.Sprintf("%d  %s", i+1, h.Label())
		if h == current {
			b.WriteString("   " + m.styles.Selected.Render("▸ "+label) + "\n")
		} else {
			b.WriteString("     " + m.styles.Subtle.Render(label) + "\n")
		}
	}
	return b.String()
}

func (m *Model) viewExperiment() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(fmt.Sprintf("   %s %s   %s %s\n",
		s.Subtle.Render("time"), s.Value.Render(fmt.Sprintf("%d min", m.d.minute)),
		s.Subtle.Render("temperature"), s.Heat.Render(fmt.Sprintf("%d°C", m.d.temp))))
	b.WriteString("   " + s.Text.Render(m.d.status) + "\n\n")

	b.WriteString(indent(s.Apparatus(m.d.parts)))
	b.WriteString("\n   " + s.Legend(m.d.parts) + "\n\n")

	if c := m.session.State().Experiment.Curve; len(c) > 0 {
		b.WriteString(indent(viz.Curve(c, 40, 8)) + "\n")
	}
	return b.String()
}

func (m *Model) viewResults() string {
	s := m.styles
	var b strings.Builder

	if r := m.d.reveal; r != nil {
		headline := s.Bad.Render(r.Headline)
		if r.Correct {
			headline = s.Good.Render(r.Headline)
		}
		b.WriteString("   " + headline + "\n\n")
		b.WriteString("   " + s.Subtle.Render("Your hypothesis: ") + s.Text.Render(r.Choice) + "\n")
		b.WriteString("   " + s.Subtle.Render("What happened:   ") + s.Text.Render(r.Answer) + "\n\n")
		b.WriteString("   " + s.Text.Render(r.Body) + "\n\n")
	}
	b.WriteString(indent(viz.ObservationTable(m.d.obs)))
	return b.String()
}

func (m *Model) viewFooter() string {
	s := m.styles
	pairs := []string{}

	switch tutorial.Step(m.d.step) {
	case tutorial.StepSafety:
		pairs = append(pairs, "space", "acknowledge")
	case tutorial.StepHypothesis:
		pairs = append(pairs, "1-3", "choose")
	case tutorial.StepExperiment:
		c := m.d.controls[surface.ControlStart]
		switch {
		case c.Visual == surface.VisualDone:
			pairs = append(pairs, "s", "done")
		case c.Enabled:
			pairs = append(pairs, "s", "start")
		default:
			pairs = append(pairs, "s", "running")
		}
	case tutorial.StepResults:
		pairs = append(pairs, "e", "save")
	}

	if m.session.CanRetreat() {
		pairs = append(pairs, "←", "back")
	}
	if m.session.CanAdvance() {
		next := "next"
		if m.d.controls[surface.ControlExperimentNext].Visual == surface.VisualBounce &&
			tutorial.Step(m.d.step) == tutorial.StepExperiment {
			next = "next ↑"
		}
		pairs = append(pairs, "→", next)
	}
	pairs = append(pairs, "r", "restart", "q", "quit")
	return "   " + s.KeyHints(pairs...)
}

func (m *Model) enabled(c surface.Control) bool {
	return m.d.controls[c].Enabled
}

func indent(block string) string {
	block = strings.TrimRight(block, "\n")
	if block == "" {
		return ""
	}
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = "   " + l
	}
	return strings.Join(lines, "\n") + "\n"
}
