// Package config loads NeuroVerse settings from a YAML file and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Komalshar25/NeuroVerse/internal/game"
	"github.com/Komalshar25/NeuroVerse/internal/history"
	"github.com/Komalshar25/NeuroVerse/internal/logging"
)

// File is the on-disk configuration layout.
type File struct {
	Game game.Config `yaml:"game"`

	Logging LoggingConfig `yaml:"logging"`

	History HistoryConfig `yaml:"history"`
}

// LoggingConfig controls the slog level and the optional tick trace.
type LoggingConfig struct {
	// Level is one of warn, info, debug or trace.
	Level string `yaml:"level"`

	// TraceFile receives one JSON line per tick when non-empty.
	TraceFile string `yaml:"trace_file,omitempty"`
}

// HistoryConfig selects where finished episodes are recorded.
type HistoryConfig struct {
	// Backend is "memory" or "sqlite".
	Backend string `yaml:"backend"`

	// Path is the SQLite database file. Ignored by the memory backend.
	Path string `yaml:"path,omitempty"`
}

// Dir returns the per-user settings directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".neuroverse"), nil
}

// Default returns the built-in settings.
func Default() *File {
	historyPath := "neuroverse.db"
	if dir, err := Dir(); err == nil {
		historyPath = filepath.Join(dir, "history.db")
	}
	return &File{
		Game: game.DefaultConfig(),
		Logging: LoggingConfig{
			Level: "info",
		},
		History: HistoryConfig{
			Backend: history.BackendSQLite,
			Path:    historyPath,
		},
	}
}

// Load reads path, or ~/.neuroverse/config.yaml when path is empty and that
// file exists, then applies NEUROVERSE_* environment overrides.
func Load(path string) (*File, error) {
	cfg := Default()

	if path == "" {
		if dir, err := Dir(); err == nil {
			candidate := filepath.Join(dir, "config.yaml")
			if _, statErr := os.Stat(candidate); statErr == nil {
				path = candidate
			}
		}
	}
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile parses a YAML file on top of the defaults.
func LoadFromFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.History.Path = expandPath(cfg.History.Path)
	cfg.Logging.TraceFile = expandPath(cfg.Logging.TraceFile)
	return cfg, nil
}

// Validate checks every section.
func (f *File) Validate() error {
	if err := f.Game.Validate(); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if f.Logging.Level != "" && !logging.ValidLevel(f.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: warn, info, debug, trace)", f.Logging.Level)
	}
	if !history.ValidBackend(f.History.Backend) {
		return fmt.Errorf("invalid history backend: %s (valid: %s)", f.History.Backend, strings.Join(history.Backends(), ", "))
	}
	if f.History.Backend == history.BackendSQLite && f.History.Path == "" {
		return fmt.Errorf("history.path is required for the sqlite backend")
	}
	return nil
}

// Marshal renders the settings as YAML.
func (f *File) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}

func applyEnvOverrides(cfg *File) {
	if v := os.Getenv("NEUROVERSE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("NEUROVERSE_TRACE_FILE"); v != "" {
		cfg.Logging.TraceFile = expandPath(v)
	}
	if v := os.Getenv("NEUROVERSE_HISTORY_BACKEND"); v != "" {
		cfg.History.Backend = v
	}
	if v := os.Getenv("NEUROVERSE_HISTORY_PATH"); v != "" {
		cfg.History.Path = expandPath(v)
	}
	if v := os.Getenv("NEUROVERSE_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Game.Seed = n
		}
	}
	if v := os.Getenv("NEUROVERSE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Game.Size = n
		}
	}
	if v := os.Getenv("NEUROVERSE_AI_INTERVAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Game.AIInterval = n
		}
	}
	if v := os.Getenv("NEUROVERSE_ACTIVATION"); v != "" {
		cfg.Game.Activation = v
	}
}

func expandPath(p string) string {
	if p == "" {
		return p
	}
	if strings.Contains(p, "${") {
		p = os.Expand(p, os.Getenv)
	}
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
