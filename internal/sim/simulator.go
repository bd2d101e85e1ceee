package sim

import (
	"log/slog"

	"github.com/san-kum/sublab/internal/lab"
	"github.com/san-kum/sublab/internal/logging"
	"github.com/san-kum/sublab/internal/surface"
)

// Simulator runs the sublimation experiment one simulated minute per Tick.
// It does not own a timer; the caller schedules ticks and passes the run id
// back so ticks from a cancelled run can be told apart. It is not safe for
// concurrent use.
type Simulator struct {
	out     surface.Surface
	logger  *slog.Logger
	metrics []Metric

	status       Status
	runID        int
	elapsed      int
	temperature  float64
	message      string
	observations []lab.Observation
	curve        []Reading
	apparatus    Apparatus
}

func New(out surface.Surface, logger *slog.Logger) *Simulator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Simulator{
		out:         out,
		logger:      logger,
		metrics:     make([]Metric, 0),
		temperature: lab.RoomTemperature,
		message:     lab.IdleStatus,
	}
}

func (s *Simulator) AddMetric(m Metric) { s.metrics = append(s.metrics, m) }

func (s *Simulator) Status() Status { return s.status }
func (s *Simulator) RunID() int     { return s.runID }
func (s *Simulator) Elapsed() int   { return s.elapsed }

// Start begins a new run. It returns false, changing nothing, while a run is
// in progress.
func (s *Simulator) Start() bool {
	if s.status == Running {
		return false
	}

	s.status = Running
	s.runID++
	s.elapsed = 0
	s.temperature = lab.RoomTemperature
	s.observations = s.observations[:0]
	s.curve = s.curve[:0]
	s.apparatus = Apparatus{}
	for _, m := range s.metrics {
		m.Reset()
	}

	s.publish(surface.ObservationsCleared{})
	s.publish(surface.ControlChanged{Control: surface.ControlStart, Enabled: false, Visual: surface.VisualRunning})
	s.publish(surface.ControlChanged{Control: surface.ControlExperimentNext, Enabled: false})
	s.setPart(lab.PartHeater, true)
	s.logger.Debug("experiment started", "run", s.runID)
	return true
}

// Tick advances the run by one simulated minute and reports whether it is
// still running afterwards. Ticks outside a run are ignored.
func (s *Simulator) Tick() bool {
	if s.status != Running {
		return false
	}

	s.elapsed++
	t := s.elapsed

	p, ok := lab.Lookup(t)
	if !ok {
		s.complete()
		return false
	}

	s.temperature = p.Temperature(t)
	s.message = p.Status
	if t == p.From && p.Onset != lab.PartNone {
		s.setPart(p.Onset, true)
	}

	r := Reading{Minute: t, Temperature: s.temperature, Phase: p.Name}
	s.curve = append(s.curve, r)
	for _, m := range s.metrics {
		m.Observe(r)
	}
	s.publish(surface.ReadingChanged{Minute: t, Temperature: r.Rounded(), Status: p.Status})

	if lab.ShouldRecord(t) {
		obs := lab.Observation{Time: t, Temperature: r.Rounded(), Note: lab.NoteAt(t)}
		s.observations = append(s.observations, obs)
		s.publish(surface.ObservationAppended{Observation: obs})
	}
	return true
}

func (s *Simulator) complete() {
	s.status = Completed
	s.message = lab.CompleteStatus
	s.setPart(lab.PartHeater, false)

	s.publish(surface.ReadingChanged{Minute: s.elapsed, Temperature: lab.Round(s.temperature), Status: lab.CompleteStatus})
	s.publish(surface.ControlChanged{Control: surface.ControlStart, Enabled: false, Visual: surface.VisualDone})
	s.publish(surface.ControlChanged{Control: surface.ControlExperimentNext, Enabled: true, Visual: surface.VisualBounce})
	s.publish(surface.Chime{})
	s.logger.Info("experiment completed", "run", s.runID, "observations", len(s.observations))
}

// Restart abandons any run and returns to the initial idle state.
func (s *Simulator) Restart() {
	s.status = Idle
	// A new id invalidates ticks already scheduled for the old run.
	s.runID++
	s.elapsed = 0
	s.temperature = lab.RoomTemperature
	s.message = lab.IdleStatus
	s.observations = nil
	s.curve = nil
	s.apparatus = Apparatus{}
	for _, m := range s.metrics {
		m.Reset()
	}

	s.publish(surface.ObservationsCleared{})
	for _, p := range []lab.Part{lab.PartHeater, lab.PartSolid, lab.PartVapor, lab.PartFrost} {
		s.publish(surface.ApparatusChanged{Part: p, Active: false})
	}
	s.publish(surface.ReadingChanged{Minute: 0, Temperature: lab.Round(lab.RoomTemperature), Status: lab.IdleStatus})
	s.publish(surface.ControlChanged{Control: surface.ControlStart, Enabled: true})
	s.publish(surface.ControlChanged{Control: surface.ControlExperimentNext, Enabled: false})
}

// Observations returns a copy of the recorded rows.
func (s *Simulator) Observations() []lab.Observation {
	out := make([]lab.Observation, len(s.observations))
	copy(out, s.observations)
	return out
}

// Curve returns a copy of every reading of the current run.
func (s *Simulator) Curve() []Reading {
	out := make([]Reading, len(s.curve))
	copy(out, s.curve)
	return out
}

func (s *Simulator) Snapshot() Snapshot {
	snap := Snapshot{
		Status:       s.status,
		RunID:        s.runID,
		Elapsed:      s.elapsed,
		Temperature:  s.temperature,
		Message:      s.message,
		Observations: s.Observations(),
		Curve:        s.Curve(),
		Apparatus:    s.apparatus,
		Metrics:      make(map[string]float64, len(s.metrics)),
	}
	for _, m := range s.metrics {
		snap.Metrics[m.Name()] = m.Value()
	}
	return snap
}

func (s *Simulator) setPart(p lab.Part, on bool) {
	s.apparatus.set(p, on)
	s.publish(surface.ApparatusChanged{Part: p, Active: on})
}

func (s *Simulator) publish(e surface.Event) {
	if s.out != nil {
		s.out.Publish(e)
	}
}
