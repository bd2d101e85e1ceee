package sim

import "github.com/san-kum/sublab/internal/lab"

// Status is the simulator state.
type Status int

const (
	Idle Status = iota
	Running
	Completed
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return "idle"
	}
}

// Reading is the simulator output for one tick.
type Reading struct {
	Minute      int           `json:"minute"`
	Temperature float64       `json:"temperature"`
	Phase       lab.PhaseName `json:"phase"`
}

// Rounded is the temperature as displayed and recorded.
func (r Reading) Rounded() int { return lab.Round(r.Temperature) }

// Apparatus holds the visual state of the parts that change during a run.
type Apparatus struct {
	Heater bool `json:"heater"`
	Solid  bool `json:"solid"`
	Vapor  bool `json:"vapor"`
	Frost  bool `json:"frost"`
}

func (a *Apparatus) set(p lab.Part, on bool) {
	switch p {
	case lab.PartHeater:
		a.Heater = on
	case lab.PartSolid:
		a.Solid = on
	case lab.PartVapor:
		a.Vapor = on
	case lab.PartFrost:
		a.Frost = on
	}
}

// Metric observes every reading of a run.
type Metric interface {
	Name() string
	Observe(r Reading)
	Value() float64
	Reset()
}

// Snapshot is a copy of the simulator state safe to hand out.
type Snapshot struct {
	Status       Status
	RunID        int
	Elapsed      int
	Temperature  float64
	Message      string
	Observations []lab.Observation
	Curve        []Reading
	Apparatus    Apparatus
	Metrics      map[string]float64
}

// Running reports the experimentRunning flag.
func (s Snapshot) Running() bool { return s.Status == Running }
