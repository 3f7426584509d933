package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Komalshar25/NeuroVerse/internal/game"
	"github.com/Komalshar25/NeuroVerse/internal/history"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Game != game.DefaultConfig() {
		t.Errorf("expected default game config, got %+v", cfg.Game)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected Logging.Level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.History.Backend != history.BackendSQLite {
		t.Errorf("expected sqlite history backend, got '%s'", cfg.History.Backend)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
game:
  size: 12
  seed: 7
  hazards: 5
  activation: threshold
  agent:
    decay_per_tick: 0.5
    food_reward: 25
logging:
  level: debug
  trace_file: ${NV_TEST_DIR}/trace.jsonl
history:
  backend: memory
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	t.Setenv("NV_TEST_DIR", tmpDir)

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Game.Size != 12 || cfg.Game.Seed != 7 || cfg.Game.Hazards != 5 {
		t.Errorf("unexpected game section %+v", cfg.Game)
	}
	if cfg.Game.Food != 4 {
		t.Errorf("unset food should keep default 4, got %d", cfg.Game.Food)
	}
	if cfg.Game.Activation != "threshold" {
		t.Errorf("expected threshold activation, got %q", cfg.Game.Activation)
	}
	if cfg.Game.Agent.DecayPerTick != 0.5 || cfg.Game.Agent.FoodReward != 25 {
		t.Errorf("unexpected agent section %+v", cfg.Game.Agent)
	}
	if cfg.Game.Agent.HazardDamage != 20 {
		t.Errorf("unset hazard_damage should keep default, got %v", cfg.Game.Agent.HazardDamage)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %q", cfg.Logging.Level)
	}
	if want := filepath.Join(tmpDir, "trace.jsonl"); cfg.Logging.TraceFile != want {
		t.Errorf("expected trace file %q, got %q", want, cfg.Logging.TraceFile)
	}
	if cfg.History.Backend != history.BackendMemory {
		t.Errorf("expected memory backend, got %q", cfg.History.Backend)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("game: [unclosed"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadFromFile(path)
	if err == nil || !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoadExplicitPathWithEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("game:\n  seed: 3\n"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("NEUROVERSE_SEED", "99")
	t.Setenv("NEUROVERSE_LOG_LEVEL", "trace")
	t.Setenv("NEUROVERSE_HISTORY_BACKEND", "memory")
	t.Setenv("NEUROVERSE_AI_INTERVAL", "not-a-number")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.Seed != 99 {
		t.Errorf("env seed should win, got %d", cfg.Game.Seed)
	}
	if cfg.Logging.Level != "trace" {
		t.Errorf("expected trace level, got %q", cfg.Logging.Level)
	}
	if cfg.History.Backend != history.BackendMemory {
		t.Errorf("expected memory backend, got %q", cfg.History.Backend)
	}
	if cfg.Game.AIInterval != game.DefaultConfig().AIInterval {
		t.Errorf("unparseable override should be ignored, got %d", cfg.Game.AIInterval)
	}
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game != game.DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg.Game)
	}
}

func TestLoadFindsHomeConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".neuroverse")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("game:\n  size: 8\n  spawn_x: 2\n  spawn_y: 2\n"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.Size != 8 {
		t.Errorf("expected size from home config, got %d", cfg.Game.Size)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*File)
		wantErr string
	}{
		{"valid", func(*File) {}, ""},
		{"bad game", func(f *File) { f.Game.Size = 1 }, "game:"},
		{"bad level", func(f *File) { f.Logging.Level = "verbose" }, "invalid log level"},
		{"empty level", func(f *File) { f.Logging.Level = "" }, ""},
		{"bad backend", func(f *File) { f.History.Backend = "postgres" }, "invalid history backend"},
		{"sqlite without path", func(f *File) { f.History.Path = "" }, "history.path"},
		{"memory without path", func(f *File) { f.History.Backend = "memory"; f.History.Path = "" }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMarshalRoundTripsThroughLoad(t *testing.T) {
	cfg := Default()
	cfg.Game.Seed = 1234
	cfg.History.Backend = history.BackendMemory
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if loaded.Game != cfg.Game || loaded.History.Backend != history.BackendMemory {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}
