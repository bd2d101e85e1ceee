package lab

import (
	"errors"
	"testing"
)

func TestTemperatureAt(t *testing.T) {
	tests := []struct {
		minute   int
		expected int
	}{
		{1, 50},
		{2, 75},
		{3, 100},
		{4, 110},
		{5, 120},
		{6, 130},
		{7, 135},
		{8, 140},
		{10, 150},
		{11, 140},
		{12, 130},
		{13, 120},
	}

	for _, tt := range tests {
		if got := Round(TemperatureAt(tt.minute)); got != tt.expected {
			t.Errorf("minute %d: expected %d°C, got %d°C", tt.minute, tt.expected, got)
		}
	}
}

func TestLookup_Boundaries(t *testing.T) {
	tests := []struct {
		minute int
		phase  PhaseName
		ok     bool
	}{
		{0, "", false},
		{1, PhaseHeating, true},
		{3, PhaseHeating, true},
		{4, PhaseOnset, true},
		{6, PhaseOnset, true},
		{7, PhaseSublimation, true},
		{10, PhaseSublimation, true},
		{11, PhaseFrosting, true},
		{13, PhaseFrosting, true},
		{CompletionMinute, "", false},
		{20, "", false},
	}

	for _, tt := range tests {
		p, ok := Lookup(tt.minute)
		if ok != tt.ok || p.Name != tt.phase {
			t.Errorf("minute %d: expected (%q, %v), got (%q, %v)", tt.minute, tt.phase, tt.ok, p.Name, ok)
		}
	}
}

func TestPhaseOnsets(t *testing.T) {
	onsets := map[int]Part{}
	for _, p := range Phases() {
		if p.Onset != PartNone {
			onsets[p.From] = p.Onset
		}
	}
	expected := map[int]Part{4: PartSolid, 7: PartVapor, 11: PartFrost}
	for minute, part := range expected {
		if onsets[minute] != part {
			t.Errorf("minute %d: expected onset %q, got %q", minute, part, onsets[minute])
		}
	}
	if len(onsets) != len(expected) {
		t.Errorf("expected %d onsets, got %d", len(expected), len(onsets))
	}
}

func TestShouldRecord(t *testing.T) {
	var recorded []int
	for minute := 1; minute < CompletionMinute; minute++ {
		if ShouldRecord(minute) {
			recorded = append(recorded, minute)
		}
	}
	expected := []int{2, 4, 6, 8, 10, 12, 13}
	if len(recorded) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, recorded)
	}
	for i := range expected {
		if recorded[i] != expected[i] {
			t.Errorf("expected %v, got %v", expected, recorded)
		}
	}
}

func TestNoteAt_IgnoresTemperature(t *testing.T) {
	if NoteAt(4) != NoteAt(6) {
		t.Error("minutes in the same bucket should share a note")
	}
	if NoteAt(3) == NoteAt(4) {
		t.Error("minutes in different buckets should not share a note")
	}
	if NoteAt(CompletionMinute) != completeNote {
		t.Errorf("expected completion note, got %q", NoteAt(CompletionMinute))
	}
}

func TestParseHypothesis(t *testing.T) {
	tests := []struct {
		in       string
		expected Hypothesis
	}{
		{"sublimates", Sublimates},
		{" Melts-First ", MeltsFirst},
		{"no-change", NoChange},
		{"2", Sublimates},
		{"", HypothesisUnset},
		{"unset", HypothesisUnset},
	}
	for _, tt := range tests {
		got, err := ParseHypothesis(tt.in)
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("%q: expected %q, got %q", tt.in, tt.expected, got)
		}
	}

	if _, err := ParseHypothesis("evaporates"); !errors.Is(err, ErrUnknownHypothesis) {
		t.Errorf("expected ErrUnknownHypothesis, got %v", err)
	}
}

func TestRevealFor(t *testing.T) {
	r := RevealFor(Sublimates)
	if !r.Correct {
		t.Error("sublimates should be correct")
	}

	for _, h := range []Hypothesis{MeltsFirst, NoChange} {
		r := RevealFor(h)
		if r.Correct {
			t.Errorf("%s should not be correct", h)
		}
		if r.Choice != h.Label() {
			t.Errorf("%s: expected choice %q, got %q", h, h.Label(), r.Choice)
		}
	}

	r = RevealFor(HypothesisUnset)
	if r.Correct || r.Choice != "Not specified" {
		t.Errorf("unset should be corrective with default label, got %+v", r)
	}
}
