package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/san-kum/sublab/internal/lab"
	"github.com/san-kum/sublab/internal/sim"
)

type Report struct {
	ID           string             `json:"id,omitempty"`
	Timestamp    time.Time          `json:"timestamp"`
	Hypothesis   lab.Hypothesis     `json:"hypothesis"`
	Choice       string             `json:"choice"`
	Correct      bool               `json:"correct"`
	Observations []lab.Observation  `json:"observations"`
	Curve        []sim.Reading      `json:"curve"`
	Metrics      map[string]float64 `json:"metrics"`
}

// NewReport assembles a report for hypothesis h and the run's data.
func NewReport(id string, ts time.Time, h lab.Hypothesis, observations []lab.Observation, curve []sim.Reading, metrics map[string]float64) Report {
	r := lab.RevealFor(h)
	return Report{
		ID:           id,
		Timestamp:    ts,
		Hypothesis:   h,
		Choice:       r.Choice,
		Correct:      r.Correct,
		Observations: observations,
		Curve:        curve,
		Metrics:      metrics,
	}
}

func WriteJSON(w io.Writer, report Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
