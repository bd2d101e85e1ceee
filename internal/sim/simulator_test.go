package sim

import (
	"reflect"
	"testing"

	"github.com/san-kum/sublab/internal/lab"
	"github.com/san-kum/sublab/internal/surface"
)

func runToCompletion(s *Simulator) int {
	ticks := 0
	for s.Tick() {
		ticks++
	}
	return ticks + 1
}

func TestSimulatorStart(t *testing.T) {
	s := New(nil, nil)
	if s.Status() != Idle {
		t.Fatalf("expected idle, got %s", s.Status())
	}

	if !s.Start() {
		t.Fatal("expected first start to succeed")
	}
	snap := s.Snapshot()
	if snap.Status != Running || !snap.Running() {
		t.Errorf("expected running, got %s", snap.Status)
	}
	if snap.Elapsed != 0 || snap.Temperature != lab.RoomTemperature {
		t.Errorf("expected elapsed 0 and 25°C, got %d and %.1f", snap.Elapsed, snap.Temperature)
	}
	if !snap.Apparatus.Heater {
		t.Error("expected heater on")
	}
}

func TestSimulatorStart_Reentrant(t *testing.T) {
	once := New(nil, nil)
	once.Start()
	once.Tick()
	once.Tick()

	twice := New(nil, nil)
	twice.Start()
	twice.Tick()
	if twice.Start() {
		t.Error("expected second start to be a no-op")
	}
	twice.Tick()

	if !reflect.DeepEqual(once.Observations(), twice.Observations()) {
		t.Errorf("expected %v, got %v", once.Observations(), twice.Observations())
	}
	if once.Elapsed() != twice.Elapsed() || once.RunID() != twice.RunID() {
		t.Error("second start should not reset the run")
	}
}

func TestSimulatorTemperatures(t *testing.T) {
	s := New(nil, nil)
	s.Start()

	expected := map[int]int{2: 75, 5: 120, 8: 140, 12: 130}
	for minute := 1; minute <= 13; minute++ {
		s.Tick()
		if want, ok := expected[minute]; ok {
			if got := lab.Round(s.Snapshot().Temperature); got != want {
				t.Errorf("t=%d: expected %d°C, got %d°C", minute, want, got)
			}
		}
	}
}

func TestSimulatorObservations(t *testing.T) {
	s := New(nil, nil)
	s.Start()
	ticks := runToCompletion(s)

	if ticks != lab.CompletionMinute {
		t.Errorf("expected %d ticks, got %d", lab.CompletionMinute, ticks)
	}

	expected := []lab.Observation{
		{Time: 2, Temperature: 75, Note: lab.NoteAt(2)},
		{Time: 4, Temperature: 110, Note: lab.NoteAt(4)},
		{Time: 6, Temperature: 130, Note: lab.NoteAt(6)},
		{Time: 8, Temperature: 140, Note: lab.NoteAt(8)},
		{Time: 10, Temperature: 150, Note: lab.NoteAt(10)},
		{Time: 12, Temperature: 130, Note: lab.NoteAt(12)},
		{Time: 13, Temperature: 120, Note: lab.NoteAt(13)},
	}
	if got := s.Observations(); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestSimulatorCompletion(t *testing.T) {
	rec := &surface.Recorder{}
	s := New(rec, nil)
	s.Start()
	for i := 0; i < 13; i++ {
		if !s.Tick() {
			t.Fatalf("run ended early at tick %d", i+1)
		}
	}
	if s.Tick() {
		t.Fatal("expected tick 14 to complete the run")
	}

	snap := s.Snapshot()
	if snap.Status != Completed || snap.Running() {
		t.Errorf("expected completed, got %s", snap.Status)
	}
	if snap.Elapsed != lab.CompletionMinute {
		t.Errorf("expected elapsed %d, got %d", lab.CompletionMinute, snap.Elapsed)
	}
	if len(snap.Curve) != 13 {
		t.Errorf("expected 13 curve points, got %d", len(snap.Curve))
	}
	if snap.Apparatus.Heater {
		t.Error("expected heater off after completion")
	}
	if !snap.Apparatus.Solid || !snap.Apparatus.Vapor || !snap.Apparatus.Frost {
		t.Errorf("expected all onsets, got %+v", snap.Apparatus)
	}
	if len(rec.Of("chime")) != 1 {
		t.Errorf("expected one chime, got %d", len(rec.Of("chime")))
	}

	var nextEnabled bool
	for _, e := range rec.Of("control") {
		c := e.(surface.ControlChanged)
		if c.Control == surface.ControlExperimentNext {
			nextEnabled = c.Enabled
		}
	}
	if !nextEnabled {
		t.Error("expected experiment-next control enabled after completion")
	}

	if s.Tick() {
		t.Error("ticks after completion should be ignored")
	}
	if s.Elapsed() != lab.CompletionMinute {
		t.Errorf("expected elapsed to stay %d, got %d", lab.CompletionMinute, s.Elapsed())
	}
}

func TestSimulatorOnsetEvents(t *testing.T) {
	rec := &surface.Recorder{}
	s := New(rec, nil)
	s.Start()
	runToCompletion(s)

	var parts []lab.Part
	for _, e := range rec.Of("apparatus") {
		a := e.(surface.ApparatusChanged)
		if a.Active {
			parts = append(parts, a.Part)
		}
	}
	expected := []lab.Part{lab.PartHeater, lab.PartSolid, lab.PartVapor, lab.PartFrost}
	if !reflect.DeepEqual(parts, expected) {
		t.Errorf("expected %v, got %v", expected, parts)
	}
}

func TestSimulatorRestart(t *testing.T) {
	fresh := New(nil, nil).Snapshot()

	prepare := map[string]func(s *Simulator){
		"idle": func(s *Simulator) {},
		"mid-run": func(s *Simulator) {
			s.Start()
			s.Tick()
			s.Tick()
			s.Tick()
			s.Tick()
		},
		"completed": func(s *Simulator) {
			s.Start()
			runToCompletion(s)
		},
	}

	for name, setup := range prepare {
		t.Run(name, func(t *testing.T) {
			s := New(nil, nil)
			setup(s)
			s.Restart()

			snap := s.Snapshot()
			if snap.Status != Idle || snap.Elapsed != 0 || snap.Temperature != lab.RoomTemperature {
				t.Errorf("expected defaults, got %s elapsed=%d temp=%.1f", snap.Status, snap.Elapsed, snap.Temperature)
			}
			if len(snap.Observations) != 0 || len(snap.Curve) != 0 {
				t.Errorf("expected cleared history, got %d rows", len(snap.Observations))
			}
			if snap.Apparatus != fresh.Apparatus || snap.Message != fresh.Message {
				t.Errorf("expected fresh apparatus and message, got %+v %q", snap.Apparatus, snap.Message)
			}
			if s.Tick() {
				t.Error("restart should stop the run")
			}
		})
	}
}

func TestSimulatorRestart_InvalidatesRunID(t *testing.T) {
	s := New(nil, nil)
	s.Start()
	old := s.RunID()
	s.Restart()
	s.Start()
	if s.RunID() == old {
		t.Error("expected a new run id after restart")
	}
}

type countMetric struct{ n int }

func (c *countMetric) Name() string      { return "count" }
func (c *countMetric) Observe(r Reading) { c.n++ }
func (c *countMetric) Value() float64    { return float64(c.n) }
func (c *countMetric) Reset()            { c.n = 0 }

func TestSimulatorMetrics(t *testing.T) {
	s := New(nil, nil)
	m := &countMetric{}
	s.AddMetric(m)

	s.Start()
	runToCompletion(s)
	if got := s.Snapshot().Metrics["count"]; got != 13 {
		t.Errorf("expected 13 observed readings, got %v", got)
	}

	s.Start()
	if m.n != 0 {
		t.Errorf("expected metric reset on start, got %d", m.n)
	}
}

func TestStatusString(t *testing.T) {
	tests := map[Status]string{Idle: "idle", Running: "running", Completed: "completed"}
	for st, want := range tests {
		if st.String() != want {
			t.Errorf("expected %q, got %q", want, st.String())
		}
	}
}
