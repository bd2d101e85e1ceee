package metrics

import (
	"github.com/san-kum/sublab/internal/lab"
	"github.com/san-kum/sublab/internal/sim"
)

// Onset records the first minute a phase is observed. Its value is 0 until then.
type Onset struct {
	name   string
	phase  lab.PhaseName
	minute int
}

func NewOnset(name string, phase lab.PhaseName) *Onset {
	return &Onset{name: name, phase: phase}
}

func (o *Onset) Name() string { return o.name }

func (o *Onset) Observe(r sim.Reading) {
	if o.minute == 0 && r.Phase == o.phase {
		o.minute = r.Minute
	}
}

func (o *Onset) Value() float64 { return float64(o.minute) }

func (o *Onset) Reset() { o.minute = 0 }

// Default is the metric set attached to every tutorial session.
func Default() []sim.Metric {
	return []sim.Metric{
		NewPeakTemperature(),
		NewMeanTemperature(),
		NewOnset("sublimation_onset", lab.PhaseOnset),
		NewOnset("frost_onset", lab.PhaseFrosting),
	}
}
