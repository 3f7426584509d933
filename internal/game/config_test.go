package game

import (
	"math"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"tiny grid", func(c *Config) { c.Size = 1 }, "size"},
		{"spawn outside", func(c *Config) { c.SpawnY = -1 }, "spawn"},
		{"negative food", func(c *Config) { c.Food = -1 }, "non-negative"},
		{"overfull", func(c *Config) { c.Size = 2; c.SpawnX, c.SpawnY = 0, 0; c.Hazards = 3; c.Food = 1 }, "do not fit"},
		{"activation", func(c *Config) { c.Activation = "relu" }, "relu"},
		{"tps", func(c *Config) { c.TPS = 0 }, "tps"},
		{"ai interval", func(c *Config) { c.AIInterval = 0 }, "ai_interval"},
		{"start health", func(c *Config) { c.Agent.StartHealth = 150 }, "start_health"},
		{"negative decay", func(c *Config) { c.Agent.DecayPerTick = -0.1 }, "decay_per_tick"},
		{"nan start health", func(c *Config) { c.Agent.StartHealth = math.NaN() }, "start_health"},
		{"nan decay", func(c *Config) { c.Agent.DecayPerTick = math.NaN() }, "decay_per_tick"},
		{"inf hazard damage", func(c *Config) { c.Agent.HazardDamage = math.Inf(1) }, "hazard_damage"},
		{"nan food heal", func(c *Config) { c.Agent.FoodHeal = math.NaN() }, "food_heal"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestApplyMap(t *testing.T) {
	cfg, err := ApplyMap(DefaultConfig(), map[string]string{
		"size":           "12",
		"seed":           "-3",
		"hazards":        "5",
		"activation":     "threshold",
		"decay_per_tick": "0.5",
		"food_reward":    "7",
	})
	if err != nil {
		t.Fatalf("ApplyMap: %v", err)
	}
	if cfg.Size != 12 || cfg.Seed != -3 || cfg.Hazards != 5 {
		t.Fatalf("unexpected world values %+v", cfg)
	}
	if cfg.Activation != "threshold" {
		t.Fatalf("expected threshold activation, got %q", cfg.Activation)
	}
	if cfg.Agent.DecayPerTick != 0.5 || cfg.Agent.FoodReward != 7 {
		t.Fatalf("unexpected agent values %+v", cfg.Agent)
	}
	def := DefaultConfig()
	if cfg.TPS != def.TPS || cfg.Agent.StartHealth != def.Agent.StartHealth {
		t.Fatal("keys not in the map should keep the base values")
	}
	if got, err := ApplyMap(def, nil); err != nil || got != def {
		t.Fatalf("nil map should return the base unchanged, got %+v, %v", got, err)
	}
}

func TestApplyMapRejectsBadInput(t *testing.T) {
	base := DefaultConfig()
	for _, kv := range []map[string]string{
		{"tps": "nope"},
		{"colour": "red"},
		{"decay_per_tick": "fast"},
	} {
		got, err := ApplyMap(base, kv)
		if err == nil {
			t.Fatalf("expected error for %v", kv)
		}
		if got != base {
			t.Fatalf("failed ApplyMap must return the base, got %+v", got)
		}
	}

	// NaN parses but Validate catches it.
	cfg, err := ApplyMap(base, map[string]string{"decay_per_tick": "NaN"})
	if err != nil {
		t.Fatalf("ApplyMap: %v", err)
	}
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "decay_per_tick") {
		t.Fatalf("expected decay_per_tick validation error, got %v", err)
	}
}
