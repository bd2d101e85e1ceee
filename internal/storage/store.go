package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/sublab/internal/lab"
	"github.com/san-kum/sublab/internal/sim"
	"github.com/san-kum/sublab/internal/tutorial"
)

const (
	metadataFile     = "metadata.json"
	observationsFile = "observations.csv"
	curveFile        = "curve.csv"
)

// Store is the lab notebook: one directory per finished run.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID           string             `json:"id"`
	Timestamp    time.Time          `json:"timestamp"`
	Hypothesis   lab.Hypothesis     `json:"hypothesis"`
	Correct      bool               `json:"correct"`
	TickInterval string             `json:"tick_interval"`
	Minutes      int                `json:"minutes"`
	Observations int                `json:"observations"`
	Metrics      map[string]float64 `json:"metrics"`
}

// Save writes a completed run. It refuses runs that are idle or in progress.
func (s *Store) Save(st tutorial.State, tickInterval time.Duration) (string, error) {
	exp := st.Experiment
	if exp.Status != sim.Completed {
		return "", lab.ErrRunNotFinished
	}

	runID := "run_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:           runID,
		Timestamp:    time.Now(),
		Hypothesis:   st.Hypothesis,
		Correct:      lab.RevealFor(st.Hypothesis).Correct,
		TickInterval: tickInterval.String(),
		Minutes:      exp.Elapsed,
		Observations: len(exp.Observations),
		Metrics:      exp.Metrics,
	}
	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}

	rows := [][]string{{"minute", "temperature_c", "note"}}
	for _, o := range exp.Observations {
		rows = append(rows, []string{strconv.Itoa(o.Time), strconv.Itoa(o.Temperature), o.Note})
	}
	if err := writeCSV(filepath.Join(runDir, observationsFile), rows); err != nil {
		return "", err
	}

	rows = [][]string{{"minute", "temperature_c", "phase"}}
	for _, r := range exp.Curve {
		rows = append(rows, []string{strconv.Itoa(r.Minute), strconv.FormatFloat(r.Temperature, 'f', 2, 64), string(r.Phase)})
	}
	if err := writeCSV(filepath.Join(runDir, curveFile), rows); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns saved runs, oldest first. Unreadable entries are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

// runFile resolves name inside the run directory. Ids must be a single path
// element so they cannot leave the notebook.
func (s *Store) runFile(runID, name string) (string, error) {
	if runID == "" || runID == "." || runID == ".." || filepath.Base(runID) != runID {
		return "", fmt.Errorf("%w: %q", lab.ErrInvalidRunID, runID)
	}
	return filepath.Join(s.baseDir, runID, name), nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	path, err := s.runFile(runID, metadataFile)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

func (s *Store) LoadObservations(runID string) ([]lab.Observation, error) {
	path, err := s.runFile(runID, observationsFile)
	if err != nil {
		return nil, err
	}
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	out := make([]lab.Observation, 0, len(records))
	for _, rec := range records {
		if len(rec) < 3 {
			continue
		}
		minute, err := strconv.Atoi(rec[0])
		if err != nil {
			continue
		}
		temp, err := strconv.Atoi(rec[1])
		if err != nil {
			continue
		}
		out = append(out, lab.Observation{Time: minute, Temperature: temp, Note: rec[2]})
	}
	return out, nil
}

func (s *Store) LoadCurve(runID string) ([]sim.Reading, error) {
	path, err := s.runFile(runID, curveFile)
	if err != nil {
		return nil, err
	}
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	out := make([]sim.Reading, 0, len(records))
	for _, rec := range records {
		if len(rec) < 3 {
			continue
		}
		minute, err := strconv.Atoi(rec[0])
		if err != nil {
			continue
		}
		temp, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			continue
		}
		out = append(out, sim.Reading{Minute: minute, Temperature: temp, Phase: lab.PhaseName(rec[2])})
	}
	return out, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return f.Sync()
}

// readCSV returns the data rows, without the header.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return [][]string{}, nil
	}
	return records[1:], nil
}
