package lab

import "math"

const (
	// RoomTemperature is the reading before any heating, in °C.
	RoomTemperature = 25.0

	// CompletionMinute is the tick that ends a run. It is never recorded.
	CompletionMinute = 14
)

// PhaseName identifies a row of the phase table.
type PhaseName string

const (
	PhaseIdle        PhaseName = "idle"
	PhaseHeating     PhaseName = "heating"
	PhaseOnset       PhaseName = "sublimation starting"
	PhaseSublimation PhaseName = "active sublimation"
	PhaseFrosting    PhaseName = "frosting begins"
	PhaseComplete    PhaseName = "complete"
)

// Part is a piece of the apparatus whose visual state changes during a run.
type Part string

const (
	PartNone   Part = ""
	PartHeater Part = "heater"
	PartSolid  Part = "solid"
	PartVapor  Part = "vapor"
	PartFrost  Part = "frost"
)

// Phase is one time bucket. Temperature is Base + Slope*(t-Offset) for t in [From, To].
type Phase struct {
	Name   PhaseName
	From   int
	To     int
	Base   float64
	Slope  float64
	Offset int
	Status string
	Note   string
	// Onset is switched on when the bucket is entered at From.
	Onset Part
}

var phaseTable = []Phase{
	{
		Name: PhaseHeating, From: 1, To: 3, Base: 25, Slope: 25, Offset: 0,
		Status: "Naphthalene is heating up...",
		Note:   "Naphthalene is warming, no visible change yet",
	},
	{
		Name: PhaseOnset, From: 4, To: 6, Base: 100, Slope: 10, Offset: 3,
		Status: "Naphthalene is starting to sublimate!",
		Note:   "Naphthalene begins to shrink",
		Onset:  PartSolid,
	},
	{
		Name: PhaseSublimation, From: 7, To: 10, Base: 130, Slope: 5, Offset: 6,
		Status: "Active sublimation! Vapor is forming.",
		Note:   "Naphthalene is vaporizing, white vapor is visible",
		Onset:  PartVapor,
	},
	{
		Name: PhaseFrosting, From: 11, To: 13, Base: 150, Slope: -10, Offset: 10,
		Status: "Frost is starting to form on the cold glass!",
		Note:   "White crystals are forming on the cold glass",
		Onset:  PartFrost,
	},
}

const (
	IdleStatus     = "Press start to begin the experiment"
	CompleteStatus = "Experiment complete! Sublimation and deposition were observed."
	completeNote   = "Sublimation and deposition are complete"
)

// Phases returns a copy of the phase table in evaluation order.
func Phases() []Phase {
	out := make([]Phase, len(phaseTable))
	copy(out, phaseTable)
	return out
}

// Lookup returns the first bucket containing minute t. It reports false for
// t < 1 and for t >= CompletionMinute.
func Lookup(t int) (Phase, bool) {
	for _, p := range phaseTable {
		if t <= p.To && t >= p.From {
			return p, true
		}
	}
	return Phase{}, false
}

func (p Phase) Temperature(t int) float64 {
	return p.Base + p.Slope*float64(t-p.Offset)
}

// TemperatureAt evaluates the phase table at minute t. Outside the table it
// returns room temperature.
func TemperatureAt(t int) float64 {
	p, ok := Lookup(t)
	if !ok {
		return RoomTemperature
	}
	return p.Temperature(t)
}

// Round is the display and recording precision for temperatures.
func Round(temp float64) int {
	return int(math.Round(temp))
}

// NoteAt buckets minute t into a fixed observation text, independent of the
// exact temperature.
func NoteAt(t int) string {
	for _, p := range phaseTable {
		if t <= p.To {
			return p.Note
		}
	}
	return completeNote
}

// ShouldRecord reports whether minute t produces an observation row.
func ShouldRecord(t int) bool {
	return t%2 == 0 || t >= 13
}

// Observation is one row of the learner's table.
type Observation struct {
	Time        int    `json:"time"`
	Temperature int    `json:"temperature"`
	Note        string `json:"observation"`
}
