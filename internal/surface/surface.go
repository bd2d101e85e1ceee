// Package surface is the one-way channel the tutorial core uses to push
// display updates to whatever renders them.
package surface

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/san-kum/sublab/internal/lab"
)

// Event is a display update. Concrete types are listed below.
type Event interface {
	Kind() string
}

// Control names an input the learner can trigger.
type Control string

const (
	ControlSafetyNext     Control = "safety-next"
	ControlHypothesisNext Control = "hypothesis-next"
	ControlStart          Control = "start"
	ControlExperimentNext Control = "experiment-next"
)

// Visual states attached to controls.
const (
	VisualNone    = ""
	VisualRunning = "running"
	VisualDone    = "done"
	VisualBounce  = "bounce"
)

type StepShown struct {
	Step  int
	Total int
	Title string
}

type ProgressChanged struct {
	Step  int
	Total int
}

// Percent is the fill of the progress indicator, 0..100.
func (e ProgressChanged) Percent() float64 {
	if e.Total == 0 {
		return 0
	}
	return float64(e.Step) / float64(e.Total) * 100
}

type ReadingChanged struct {
	Minute      int
	Temperature int
	Status      string
}

type ObservationAppended struct {
	Observation lab.Observation
}

type ObservationsCleared struct{}

type ControlChanged struct {
	Control Control
	Enabled bool
	Visual  string
}

type ApparatusChanged struct {
	Part   lab.Part
	Active bool
}

type Chime struct{}

type ResultRevealed struct {
	Reveal lab.Reveal
}

// Fault is a generic, auto-dismissing notification for unexpected failures.
type Fault struct {
	Message string
	Dismiss time.Duration
}

func (StepShown) Kind() string           { return "step" }
func (ProgressChanged) Kind() string     { return "progress" }
func (ReadingChanged) Kind() string      { return "reading" }
func (ObservationAppended) Kind() string { return "observation" }
func (ObservationsCleared) Kind() string { return "observations-cleared" }
func (ControlChanged) Kind() string      { return "control" }
func (ApparatusChanged) Kind() string    { return "apparatus" }
func (Chime) Kind() string               { return "chime" }
func (ResultRevealed) Kind() string      { return "result" }
func (Fault) Kind() string               { return "fault" }

// Surface receives events. Implementations render what they can and ignore
// the rest.
type Surface interface {
	Publish(Event)
}

// Func adapts a plain function to Surface.
type Func func(Event)

func (f Func) Publish(e Event) {
	if f != nil {
		f(e)
	}
}

// Bus fans events out to its listeners. A nil *Bus is valid and drops
// everything. A listener that panics is logged and skipped; the publisher
// never sees the failure.
type Bus struct {
	listeners []Surface
	logger    *slog.Logger
}

func NewBus(logger *slog.Logger, listeners ...Surface) *Bus {
	b := &Bus{logger: logger}
	for _, l := range listeners {
		b.Subscribe(l)
	}
	return b
}

func (b *Bus) Subscribe(s Surface) {
	if b == nil || s == nil {
		return
	}
	b.listeners = append(b.listeners, s)
}

func (b *Bus) Publish(e Event) {
	if b == nil {
		return
	}
	for _, l := range b.listeners {
		b.deliver(l, e)
	}
}

func (b *Bus) deliver(l Surface, e Event) {
	defer func() {
		if r := recover(); r != nil && b.logger != nil {
			b.logger.Warn("surface listener failed", "event", e.Kind(), "panic", fmt.Sprint(r))
		}
	}()
	l.Publish(e)
}

// Recorder keeps every published event. Handy for headless runs and tests.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Publish(e Event) { r.Events = append(r.Events, e) }

// Of returns the recorded events of one kind, in order.
func (r *Recorder) Of(kind string) []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Kind() == kind {
			out = append(out, e)
		}
	}
	return out
}

func (r *Recorder) Reset() { r.Events = nil }
