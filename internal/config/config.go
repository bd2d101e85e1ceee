package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/san-kum/sublab/internal/lab"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTickInterval = time.Second
	DefaultTheme        = "lab"
	DefaultDataDir      = ".sublab"
	DefaultLogLevel     = "info"
	logFileName         = "sublab.log"
)

type Config struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	Theme        string        `yaml:"theme"`
	Chime        bool          `yaml:"chime"`
	DataDir      string        `yaml:"data_dir"`
	LogLevel     string        `yaml:"log_level"`
	LogFile      string        `yaml:"log_file,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		TickInterval: DefaultTickInterval,
		Theme:        DefaultTheme,
		Chime:        true,
		DataDir:      DefaultDataDir,
		LogLevel:     DefaultLogLevel,
	}
}

// Load reads a yaml file over the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.TickInterval < 0 {
		return fmt.Errorf("%w: tick_interval must not be negative, got %s", lab.ErrInvalidConfig, c.TickInterval)
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("%w: data_dir must be set", lab.ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", lab.ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// LogPath is where the interactive program writes its log.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(c.DataDir, logFileName)
}
