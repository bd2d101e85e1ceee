// Package tutorial owns the learner's session: the step flow, the inputs
// that gate it, and the experiment simulator hosted on the experiment step.
package tutorial

import (
	"log/slog"

	"github.com/san-kum/sublab/internal/lab"
	"github.com/san-kum/sublab/internal/logging"
	"github.com/san-kum/sublab/internal/metrics"
	"github.com/san-kum/sublab/internal/sim"
	"github.com/san-kum/sublab/internal/surface"
)

// State is a copy of everything the session holds.
type State struct {
	Step               Step
	SafetyAcknowledged bool
	Hypothesis         lab.Hypothesis
	Experiment         sim.Snapshot
}

// Session is the single owner of session state. All input events go through
// its methods and all display updates leave through its surface. It must be
// driven from one goroutine.
type Session struct {
	out    surface.Surface
	logger *slog.Logger
	nav    *Navigator
	sim    *sim.Simulator

	safety     bool
	hypothesis lab.Hypothesis
}

// NewSession builds a session at step 1. out may be nil.
func NewSession(out surface.Surface, logger *slog.Logger) *Session {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Session{
		out:    out,
		logger: logger,
		sim:    sim.New(out, logger),
	}
	for _, m := range metrics.Default() {
		s.sim.AddMetric(m)
	}
	s.nav = NewNavigator(map[Step]Gate{
		StepHypothesis:   func() bool { return s.safety },
		StepExperiment:   func() bool { return s.hypothesis.Valid() },
		StepObservations: func() bool { return s.sim.Status() == sim.Completed },
	})
	return s
}

// Init pushes the initial view to the surface.
func (s *Session) Init() {
	s.publishControls()
	s.publish(surface.ReadingChanged{Minute: 0, Temperature: lab.Round(lab.RoomTemperature), Status: lab.IdleStatus})
	s.showStep()
}

func (s *Session) Step() Step                 { return s.nav.Current() }
func (s *Session) Hypothesis() lab.Hypothesis { return s.hypothesis }
func (s *Session) Running() bool              { return s.sim.Status() == sim.Running }
func (s *Session) RunID() int                 { return s.sim.RunID() }
func (s *Session) CanAdvance() bool           { return s.nav.CanAdvance() }
func (s *Session) CanRetreat() bool           { return s.nav.Current() > StepWelcome }

// CanStart reports whether the start control is live.
func (s *Session) CanStart() bool {
	return s.nav.Current() == StepExperiment && s.sim.Status() == sim.Idle
}

func (s *Session) State() State {
	return State{
		Step:               s.nav.Current(),
		SafetyAcknowledged: s.safety,
		Hypothesis:         s.hypothesis,
		Experiment:         s.sim.Snapshot(),
	}
}

func (s *Session) AcknowledgeSafety(ok bool) {
	s.safety = ok
	s.publish(surface.ControlChanged{Control: surface.ControlSafetyNext, Enabled: ok})
}

// SelectHypothesis records the learner's choice. Only the three selectable
// values are accepted.
func (s *Session) SelectHypothesis(h lab.Hypothesis) bool {
	if !h.Valid() {
		return false
	}
	s.hypothesis = h
	s.logger.Debug("hypothesis selected", "hypothesis", h)
	s.publish(surface.ControlChanged{Control: surface.ControlHypothesisNext, Enabled: true})
	return true
}

// StartExperiment starts the simulator when the start control is live. The
// caller schedules ticks for the returned run id.
func (s *Session) StartExperiment() (int, bool) {
	if !s.CanStart() {
		return s.sim.RunID(), false
	}
	s.sim.Start()
	return s.sim.RunID(), true
}

// Tick advances the current run and reports whether it is still running.
func (s *Session) Tick() bool { return s.sim.Tick() }

// TickRun is Tick for a scheduled timer. Ticks for a run that has been
// restarted are dropped.
func (s *Session) TickRun(run int) bool {
	if run != s.sim.RunID() {
		return false
	}
	return s.sim.Tick()
}

func (s *Session) Advance() bool {
	from := s.nav.Current()
	if !s.nav.Advance() {
		s.logger.Debug("advance blocked", "step", from)
		return false
	}
	s.logger.Debug("step advanced", "from", from, "to", s.nav.Current())
	s.showStep()
	return true
}

func (s *Session) Retreat() bool {
	from := s.nav.Current()
	if !s.nav.Retreat() {
		return false
	}
	s.logger.Debug("step retreated", "from", from, "to", s.nav.Current())
	s.showStep()
	return true
}

// Reveal is the outcome for the recorded hypothesis.
func (s *Session) Reveal() lab.Reveal { return lab.RevealFor(s.hypothesis) }

// Restart returns every part of the session to its defaults.
func (s *Session) Restart() {
	s.nav.Reset()
	s.safety = false
	s.hypothesis = lab.HypothesisUnset
	s.sim.Restart()
	s.publishControls()
	s.showStep()
	s.logger.Info("session restarted")
}

func (s *Session) showStep() {
	step := s.nav.Current()
	s.publish(surface.StepShown{Step: int(step), Total: TotalSteps, Title: step.Info().Title})
	s.publish(surface.ProgressChanged{Step: int(step), Total: TotalSteps})
	if step == StepResults {
		r := s.Reveal()
		s.logger.Info("results revealed", "hypothesis", s.hypothesis, "correct", r.Correct)
		s.publish(surface.ResultRevealed{Reveal: r})
	}
}

func (s *Session) publishControls() {
	s.publish(surface.ControlChanged{Control: surface.ControlSafetyNext, Enabled: s.safety})
	s.publish(surface.ControlChanged{Control: surface.ControlHypothesisNext, Enabled: s.hypothesis.Valid()})
	s.publish(surface.ControlChanged{Control: surface.ControlStart, Enabled: s.sim.Status() == sim.Idle})
	s.publish(surface.ControlChanged{Control: surface.ControlExperimentNext, Enabled: s.sim.Status() == sim.Completed})
}

func (s *Session) publish(e surface.Event) {
	if s.out != nil {
		s.out.Publish(e)
	}
}
