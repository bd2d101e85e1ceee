package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/sublab/internal/lab"
	"github.com/san-kum/sublab/internal/sim"
)

func TestGetTheme(t *testing.T) {
	if got := GetTheme("chalk"); got.Name != "chalk" {
		t.Errorf("expected chalk, got %s", got.Name)
	}
	if got := GetTheme("nope"); got.Name != "lab" {
		t.Errorf("expected fallback to lab, got %s", got.Name)
	}
	if HasTheme("nope") {
		t.Error("expected unknown theme to be absent")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Errorf("expected %d names, got %d", len(Themes), len(ThemeNames()))
	}
}

func TestProgressBarBounds(t *testing.T) {
	s := NewStyles(ThemeMinimal)
	tests := []struct {
		percent float64
		filled  int
	}{
		{0, 0},
		{0.5, 5},
		{1, 10},
		{2, 10},
		{-1, 0},
	}
	for _, tt := range tests {
		bar := s.ProgressBar(tt.percent, 10)
		if n := strings.Count(bar, "█"); n != tt.filled {
			t.Errorf("percent %v: expected %d filled, got %d", tt.percent, tt.filled, n)
		}
		if n := strings.Count(bar, "█") + strings.Count(bar, "░"); n != 10 {
			t.Errorf("percent %v: expected width 10, got %d", tt.percent, n)
		}
	}
}

func TestCurve(t *testing.T) {
	if got := Curve(nil, 40, 8); got != "" {
		t.Errorf("expected empty plot, got %q", got)
	}

	curve := []sim.Reading{
		{Minute: 1, Temperature: 50, Phase: lab.PhaseHeating},
		{Minute: 2, Temperature: 75, Phase: lab.PhaseHeating},
	}
	got := Curve(curve, 40, 8)
	if !strings.Contains(got, "over 2 min") {
		t.Errorf("expected caption in plot, got %q", got)
	}
}

func TestObservationTable(t *testing.T) {
	empty := ObservationTable(nil)
	if !strings.Contains(empty, "no observations") {
		t.Errorf("expected placeholder, got %q", empty)
	}

	got := ObservationTable([]lab.Observation{{Time: 2, Temperature: 75, Note: "warming"}})
	if !strings.Contains(got, "2 min") || !strings.Contains(got, "75°C") || !strings.Contains(got, "warming") {
		t.Errorf("unexpected row: %q", got)
	}
}

func TestApparatusHighlights(t *testing.T) {
	s := NewStyles(ThemeLab)
	off := s.Apparatus(sim.Apparatus{})
	on := s.Apparatus(sim.Apparatus{Heater: true, Vapor: true, Frost: true})
	if strings.Contains(off, "###") {
		t.Error("expected heater off")
	}
	if !strings.Contains(on, "###") || !strings.Contains(on, "~") || !strings.Contains(on, "*") {
		t.Errorf("expected active parts, got %q", on)
	}
}
