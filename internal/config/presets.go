package config

import (
	"fmt"
	"sort"
	"time"

	"github.com/san-kum/sublab/internal/lab"
)

// Preset is a named pacing for the experiment timer.
type Preset struct {
	Description  string
	TickInterval time.Duration
	Chime        bool
}

var Presets = map[string]Preset{
	"classroom": {Description: "one simulated minute per second", TickInterval: time.Second, Chime: true},
	"brisk":     {Description: "four simulated minutes per second", TickInterval: 250 * time.Millisecond, Chime: true},
	"demo":      {Description: "fast pacing for demonstrations", TickInterval: 100 * time.Millisecond, Chime: false},
}

func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

// ApplyPreset copies the preset's pacing into c.
func (c *Config) ApplyPreset(name string) error {
	p, ok := GetPreset(name)
	if !ok {
		return fmt.Errorf("%w: %s (available: %v)", lab.ErrUnknownPreset, name, ListPresets())
	}
	c.TickInterval = p.TickInterval
	c.Chime = p.Chime
	return nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
