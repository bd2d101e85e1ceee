package automation

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/san-kum/sublab/internal/lab"
	"github.com/san-kum/sublab/internal/tutorial"
	"gopkg.in/yaml.v3"
)

// Scenario is a scripted sequence of learner inputs.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one input. Count repeats tick, next and prev.
type ScenarioStep struct {
	Action string `yaml:"action"`
	Value  string `yaml:"value,omitempty"`
	Count  int    `yaml:"count,omitempty"`
}

const (
	ActionAcknowledge   = "acknowledge"
	ActionUnacknowledge = "unacknowledge"
	ActionSelect        = "select"
	ActionStart         = "start"
	ActionTick          = "tick"
	ActionRun           = "run"
	ActionNext          = "next"
	ActionPrev          = "prev"
	ActionRestart       = "restart"
)

// StepResult records what one scenario step did.
type StepResult struct {
	Index   int
	Action  string
	Applied int
	Step    tutorial.Step
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	for i, step := range scenario.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &scenario, nil
}

func (s ScenarioStep) validate() error {
	switch strings.ToLower(s.Action) {
	case ActionAcknowledge, ActionUnacknowledge, ActionStart, ActionTick, ActionRun,
		ActionNext, ActionPrev, ActionRestart:
		return nil
	case ActionSelect:
		_, err := lab.ParseHypothesis(s.Value)
		return err
	}
	return fmt.Errorf("%w: %q", lab.ErrUnknownAction, s.Action)
}

func (s ScenarioStep) times() int {
	if s.Count < 1 {
		return 1
	}
	return s.Count
}

// RunScenario applies every step to session in order. Actions that the
// session refuses (a gated advance, a second start) are not errors; the
// result's Applied count shows how many repetitions took effect. The run
// action drives the experiment with interval between ticks.
func RunScenario(ctx context.Context, scenario *Scenario, session *tutorial.Session, interval time.Duration) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		applied := 0
		switch strings.ToLower(step.Action) {
		case ActionAcknowledge:
			session.AcknowledgeSafety(true)
			applied = 1
		case ActionUnacknowledge:
			session.AcknowledgeSafety(false)
			applied = 1
		case ActionSelect:
			h, err := lab.ParseHypothesis(step.Value)
			if err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
			if session.SelectHypothesis(h) {
				applied = 1
			}
		case ActionStart:
			if _, ok := session.StartExperiment(); ok {
				applied = 1
			}
		case ActionTick:
			for n := 0; n < step.times(); n++ {
				if session.Tick() {
					applied++
				}
			}
		case ActionRun:
			if session.Running() {
				if err := tutorial.Drive(ctx, session, interval); err != nil {
					return results, fmt.Errorf("step %d run: %w", i+1, err)
				}
				applied = 1
			}
		case ActionNext:
			for n := 0; n < step.times(); n++ {
				if session.Advance() {
					applied++
				}
			}
		case ActionPrev:
			for n := 0; n < step.times(); n++ {
				if session.Retreat() {
					applied++
				}
			}
		case ActionRestart:
			session.Restart()
			applied = 1
		default:
			return results, fmt.Errorf("step %d: %w: %q", i+1, lab.ErrUnknownAction, step.Action)
		}

		results = append(results, StepResult{Index: i + 1, Action: step.Action, Applied: applied, Step: session.Step()})
	}

	return results, nil
}
