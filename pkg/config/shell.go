package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file.
const (
	EnvMaxCommands  = "MICROSHELL_MAX_COMMANDS"
	EnvMaxInput     = "MICROSHELL_MAX_INPUT"
	EnvMaxArgs      = "MICROSHELL_MAX_ARGS"
	EnvHistoryDepth = "MICROSHELL_HISTORY_DEPTH"
	EnvMaxName      = "MICROSHELL_MAX_NAME"
	EnvMaxBanner    = "MICROSHELL_MAX_BANNER"
	EnvPrompt       = "MICROSHELL_PROMPT"
	EnvBell         = "MICROSHELL_BELL"
	EnvTickMS       = "MICROSHELL_TICK_MS"
)

// DefaultFileName is looked up in the home directory when no config path is
// given.
const DefaultFileName = ".microshell.yaml"

var ErrInvalidConfig = errors.New("invalid shell configuration")

// Shell holds the limits and presentation settings of a shell engine. Every
// buffer the engine owns is sized from these values once, at construction.
type Shell struct {
	MaxCommands  int    `yaml:"max_commands"`  // command table capacity
	MaxInput     int    `yaml:"max_input"`     // line buffer bytes, one reserved
	MaxArgs      int    `yaml:"max_args"`      // argv slots
	HistoryDepth int    `yaml:"history_depth"` // recallable lines, 0 disables
	MaxName      int    `yaml:"max_name"`      // longest command name
	MaxBanner    int    `yaml:"max_banner"`    // longest startup message
	Prompt       string `yaml:"prompt"`
	Bell         bool   `yaml:"bell"` // ring BEL when the line is full
	TickMS       int    `yaml:"tick_ms"`
}

// Default returns the stock limits.
func Default() Shell {
	return Shell{
		MaxCommands:  5,
		MaxInput:     100,
		MaxArgs:      10,
		HistoryDepth: 4,
		MaxName:      16,
		MaxBanner:    128,
		Prompt:       "device> ",
		Bell:         true,
		TickMS:       10,
	}
}

// Validate checks that the limits describe a usable engine.
func (s Shell) Validate() error {
	switch {
	case s.MaxCommands < 1:
		return fmt.Errorf("%w: max_commands must be at least 1, got %d", ErrInvalidConfig, s.MaxCommands)
	case s.MaxInput < 2:
		return fmt.Errorf("%w: max_input must be at least 2, got %d", ErrInvalidConfig, s.MaxInput)
	case s.MaxArgs < 1:
		return fmt.Errorf("%w: max_args must be at least 1, got %d", ErrInvalidConfig, s.MaxArgs)
	case s.HistoryDepth < 0:
		return fmt.Errorf("%w: history_depth must not be negative, got %d", ErrInvalidConfig, s.HistoryDepth)
	case s.MaxName < 1:
		return fmt.Errorf("%w: max_name must be at least 1, got %d", ErrInvalidConfig, s.MaxName)
	case s.MaxBanner < 0:
		return fmt.Errorf("%w: max_banner must not be negative, got %d", ErrInvalidConfig, s.MaxBanner)
	case s.TickMS < 1:
		return fmt.Errorf("%w: tick_ms must be at least 1, got %d", ErrInvalidConfig, s.TickMS)
	}
	for i := 0; i < len(s.Prompt); i++ {
		if c := s.Prompt[i]; c < 0x20 || c > 0x7E {
			return fmt.Errorf("%w: prompt must be printable ASCII", ErrInvalidConfig)
		}
	}
	return nil
}

// Tick returns how often the driving loop should call the engine.
func (s Shell) Tick() time.Duration {
	return time.Duration(s.TickMS) * time.Millisecond
}

// WithEnv returns s with any MICROSHELL_* variables applied on top.
func (s Shell) WithEnv(m Manager) Shell {
	s.MaxCommands = m.GetIntWithDefault(EnvMaxCommands, s.MaxCommands)
	s.MaxInput = m.GetIntWithDefault(EnvMaxInput, s.MaxInput)
	s.MaxArgs = m.GetIntWithDefault(EnvMaxArgs, s.MaxArgs)
	s.HistoryDepth = m.GetIntWithDefault(EnvHistoryDepth, s.HistoryDepth)
	s.MaxName = m.GetIntWithDefault(EnvMaxName, s.MaxName)
	s.MaxBanner = m.GetIntWithDefault(EnvMaxBanner, s.MaxBanner)
	s.Prompt = m.GetStringWithDefault(EnvPrompt, s.Prompt)
	s.Bell = m.GetBoolWithDefault(EnvBell, s.Bell)
	s.TickMS = m.GetIntWithDefault(EnvTickMS, s.TickMS)
	return s
}

// DefaultPath returns ~/.microshell.yaml.
func DefaultPath() (string, error) {
	path, err := homedir.Expand("~/" + DefaultFileName)
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return path, nil
}

// LoadFile reads a YAML file over the defaults. A missing file is not an
// error; the defaults are returned.
func LoadFile(path string) (Shell, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Load reads path (or the default path when empty), applies environment
// overrides from m and validates the result.
func Load(path string, m Manager) (Shell, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return Shell{}, err
		}
	}

	cfg, err := LoadFile(path)
	if err != nil {
		return Shell{}, err
	}

	cfg = cfg.WithEnv(m)
	if err := cfg.Validate(); err != nil {
		return Shell{}, err
	}
	return cfg, nil
}
