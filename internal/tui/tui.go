// Package tui is the interactive terminal front end. It feeds key presses to
// a tutorial.Session, schedules experiment ticks with tea.Tick and renders
// whatever the session publishes.
package tui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/sublab/internal/config"
	"github.com/san-kum/sublab/internal/lab"
	"github.com/san-kum/sublab/internal/logging"
	"github.com/san-kum/sublab/internal/sim"
	"github.com/san-kum/sublab/internal/storage"
	"github.com/san-kum/sublab/internal/surface"
	"github.com/san-kum/sublab/internal/tutorial"
	"github.com/san-kum/sublab/internal/viz"
)

const (
	faultMessage = "Something went wrong. Please reload."
	faultDismiss = 5 * time.Second
)

type Options struct {
	Config *config.Config
	Logger *slog.Logger

	// Store is the notebook used by the save key. Nil disables saving.
	Store *storage.Store

	// Bell receives the completion chime. Defaults to stderr.
	Bell io.Writer
}

// display is what the surface has told us so far.
type display struct {
	step     int
	total    int
	title    string
	percent  float64
	minute   int
	temp     int
	status   string
	obs      []lab.Observation
	controls map[surface.Control]surface.ControlChanged
	parts    sim.Apparatus
	reveal   *lab.Reveal
	chime    bool
	fault    string
	faultSeq int
}

type Model struct {
	cfg     *config.Config
	store   *storage.Store
	logger  *slog.Logger
	bell    io.Writer
	styles  viz.Styles
	session *tutorial.Session
	bus     *surface.Bus

	d      *display
	notice string
	width  int
	height int

	// send and after deliver a dismiss raised outside Update, where no
	// command can be returned. send is set once the program runs.
	send  func(tea.Msg)
	after func(time.Duration, func())
}

type tickMsg struct{ run int }

type dismissMsg struct{ seq int }

func tick(run int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{run: run} })
}

func dismiss(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return dismissMsg{seq: seq} })
}

func New(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	bell := opts.Bell
	if bell == nil {
		bell = os.Stderr
	}

	m := &Model{
		cfg:    cfg,
		store:  opts.Store,
		logger: logger,
		bell:   bell,
		styles: viz.NewStyles(viz.GetTheme(cfg.Theme)),
		d: &display{
			step:     int(tutorial.StepWelcome),
			total:    tutorial.TotalSteps,
			temp:     lab.Round(lab.RoomTemperature),
			status:   lab.IdleStatus,
			controls: make(map[surface.Control]surface.ControlChanged),
		},
		width:  80,
		height: 24,
		after:  func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
	m.bus = surface.NewBus(logger, surface.Func(m.d.apply))
	m.session = tutorial.NewSession(m.bus, logger)
	m.session.Init()
	return m
}

// Session exposes the controller, mainly for tests.
func (m *Model) Session() *tutorial.Session { return m.session }

func (d *display) apply(e surface.Event) {
	switch e := e.(type) {
	case surface.StepShown:
		d.step, d.total, d.title = e.Step, e.Total, e.Title
		if e.Step != int(tutorial.StepResults) {
			d.reveal = nil
		}
	case surface.ProgressChanged:
		d.percent = e.Percent()
	case surface.ReadingChanged:
		d.minute, d.temp, d.status = e.Minute, e.Temperature, e.Status
	case surface.ObservationAppended:
		d.obs = append(d.obs, e.Observation)
	case surface.ObservationsCleared:
		d.obs = nil
	case surface.ControlChanged:
		d.controls[e.Control] = e
	case surface.ApparatusChanged:
		switch e.Part {
		case lab.PartHeater:
			d.parts.Heater = e.Active
		case lab.PartSolid:
			d.parts.Solid = e.Active
		case lab.PartVapor:
			d.parts.Vapor = e.Active
		case lab.PartFrost:
			d.parts.Frost = e.Active
		}
	case surface.Chime:
		d.chime = true
	case surface.ResultRevealed:
		r := e.Reveal
		d.reveal = &r
	case surface.Fault:
		d.fault = e.Message
		d.faultSeq++
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s := msg.String(); s == "q" || s == "ctrl+c" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		if fault := m.guard(func() { cmd = m.handleKey(msg) }); fault != nil {
			return m, fault
		}
		return m, tea.Batch(cmd, m.ring())
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		var running bool
		if fault := m.guard(func() { running = m.session.TickRun(msg.run) }); fault != nil {
			return m, fault
		}
		if running {
			return m, tick(msg.run, m.cfg.TickInterval)
		}
		return m, m.ring()
	case dismissMsg:
		if msg.seq == m.d.faultSeq {
			m.d.fault = ""
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.notice = ""
	step := m.session.Step()

	switch msg.String() {
	case " ":
		if step == tutorial.StepSafety {
			m.session.AcknowledgeSafety(!m.session.State().SafetyAcknowledged)
		}
	case "1", "2", "3":
		if step == tutorial.StepHypothesis {
			h, err := lab.ParseHypothesis(msg.String())
			if err == nil {
				m.session.SelectHypothesis(h)
			}
		}
	case "s":
		if run, ok := m.session.StartExperiment(); ok {
			return tick(run, m.cfg.TickInterval)
		}
	case "right", "l", "enter":
		m.session.Advance()
	case "left", "h":
		m.session.Retreat()
	case "r":
		m.session.Restart()
	case "e":
		if step == tutorial.StepResults {
			m.save()
		}
	}
	return nil
}

func (m *Model) save() {
	if m.store == nil {
		m.notice = "Notebook is disabled."
		return
	}
	id, err := m.store.Save(m.session.State(), m.cfg.TickInterval)
	switch {
	case errors.Is(err, lab.ErrRunNotFinished):
		m.notice = "Finish the experiment before saving."
	case err != nil:
		m.logger.Error("save run", "error", err)
		m.notice = "Could not save the run."
	default:
		m.logger.Info("run saved", "id", id)
		m.notice = fmt.Sprintf("Saved as %s", id)
	}
}

// ring delivers a pending completion chime.
func (m *Model) ring() tea.Cmd {
	if !m.d.chime {
		return nil
	}
	m.d.chime = false
	if !m.cfg.Chime {
		return nil
	}
	w := m.bell
	return func() tea.Msg {
		fmt.Fprint(w, "\a")
		return nil
	}
}

// guard runs fn and turns a panic into a logged fault with a dismiss timer.
// The session is left as it is.
func (m *Model) guard(fn func()) (cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			cmd = dismiss(m.fail(r), faultDismiss)
		}
	}()
	fn()
	return nil
}

// viewGuard is guard for rendering. View cannot return a command, so the
// dismiss is sent to the program from a timer. While the toast is up a
// failing render is not reported again.
func (m *Model) viewGuard(render func() string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			if m.d.fault == "" {
				seq := m.fail(r)
				if send := m.send; send != nil {
					m.after(faultDismiss, func() { send(dismissMsg{seq: seq}) })
				}
			}
			out = "\n   " + m.styles.Toast.Render(m.d.fault) + "\n"
		}
	}()
	return render()
}

// fail logs a recovered panic, raises the toast and returns its sequence.
func (m *Model) fail(r any) int {
	m.logger.Error("recovered fault", "panic", fmt.Sprint(r), "step", m.d.step)
	m.bus.Publish(surface.Fault{Message: faultMessage, Dismiss: faultDismiss})
	return m.d.faultSeq
}

func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	m.send = p.Send
	_, err := p.Run()
	return err
}
