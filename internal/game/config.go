package game

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/Komalshar25/NeuroVerse/internal/agent"
	"github.com/Komalshar25/NeuroVerse/internal/brain"
	"github.com/Komalshar25/NeuroVerse/internal/world"
)

// Config controls the world layout, the brain and the agent tuning of a session.
type Config struct {
	Size    int   `yaml:"size"`
	SpawnX  int   `yaml:"spawn_x"`
	SpawnY  int   `yaml:"spawn_y"`
	Hazards int   `yaml:"hazards"`
	Food    int   `yaml:"food"`
	Seed    int64 `yaml:"seed"`

	// Activation names the function applied to non-input nodes.
	Activation string `yaml:"activation"`

	// TPS is the driver tick rate; the AI acts every AIInterval ticks unless
	// a manual move is pending. Headless runs ignore both.
	TPS        int `yaml:"tps"`
	AIInterval int `yaml:"ai_interval"`

	Agent agent.Params `yaml:"agent"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:       world.DefaultSize,
		SpawnX:     5,
		SpawnY:     5,
		Hazards:    world.DefaultHazards,
		Food:       world.DefaultFood,
		Seed:       42,
		Activation: "identity",
		TPS:        10,
		AIInterval: 8,
		Agent:      agent.DefaultParams(),
	}
}

// Spawn returns the configured spawn cell.
func (c Config) Spawn() world.Point { return world.Point{X: c.SpawnX, Y: c.SpawnY} }

// Validate reports the first setting that cannot produce a playable world.
func (c Config) Validate() error {
	if c.Size < 2 {
		return fmt.Errorf("size must be at least 2, got %d", c.Size)
	}
	if c.SpawnX < 0 || c.SpawnY < 0 || c.SpawnX >= c.Size || c.SpawnY >= c.Size {
		return fmt.Errorf("spawn (%d,%d) outside %dx%d grid", c.SpawnX, c.SpawnY, c.Size, c.Size)
	}
	if c.Hazards < 0 || c.Food < 0 {
		return fmt.Errorf("tile counts must be non-negative, got hazards=%d food=%d", c.Hazards, c.Food)
	}
	if free := c.Size*c.Size - 1; c.Hazards+c.Food > free {
		return fmt.Errorf("%d hazards and %d food do not fit in %d free cells", c.Hazards, c.Food, free)
	}
	if _, err := brain.ActivationByName(c.Activation); err != nil {
		return err
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.AIInterval <= 0 {
		return fmt.Errorf("ai_interval must be positive, got %d", c.AIInterval)
	}
	p := c.Agent
	if !finite(p.StartHealth) || p.StartHealth <= 0 || p.StartHealth > agent.MaxHealth {
		return fmt.Errorf("start_health must be in (0,%g], got %g", agent.MaxHealth, p.StartHealth)
	}
	for _, f := range []struct {
		key   string
		value float64
	}{
		{"decay_per_tick", p.DecayPerTick},
		{"hazard_damage", p.HazardDamage},
		{"food_heal", p.FoodHeal},
	} {
		if !finite(f.value) || f.value < 0 {
			return fmt.Errorf("%s must be a finite non-negative number, got %g", f.key, f.value)
		}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// MapKeys lists the keys ApplyMap understands.
var MapKeys = []string{
	"size", "spawn_x", "spawn_y", "hazards", "food", "seed", "activation", "tps", "ai_interval",
	"start_health", "decay_per_tick", "hazard_damage", "hazard_penalty", "food_heal", "food_reward",
}

// ApplyMap overlays flag-style key/value pairs on base. Unknown keys and
// unparseable values are errors; range checks are left to Validate.
func ApplyMap(base Config, kv map[string]string) (Config, error) {
	c := base
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		v := kv[k]
		var err error
		switch k {
		case "size":
			c.Size, err = strconv.Atoi(v)
		case "spawn_x":
			c.SpawnX, err = strconv.Atoi(v)
		case "spawn_y":
			c.SpawnY, err = strconv.Atoi(v)
		case "hazards":
			c.Hazards, err = strconv.Atoi(v)
		case "food":
			c.Food, err = strconv.Atoi(v)
		case "seed":
			c.Seed, err = strconv.ParseInt(v, 10, 64)
		case "activation":
			c.Activation = v
		case "tps":
			c.TPS, err = strconv.Atoi(v)
		case "ai_interval":
			c.AIInterval, err = strconv.Atoi(v)
		case "start_health":
			c.Agent.StartHealth, err = strconv.ParseFloat(v, 64)
		case "decay_per_tick":
			c.Agent.DecayPerTick, err = strconv.ParseFloat(v, 64)
		case "hazard_damage":
			c.Agent.HazardDamage, err = strconv.ParseFloat(v, 64)
		case "hazard_penalty":
			c.Agent.HazardPenalty, err = strconv.Atoi(v)
		case "food_heal":
			c.Agent.FoodHeal, err = strconv.ParseFloat(v, 64)
		case "food_reward":
			c.Agent.FoodReward, err = strconv.Atoi(v)
		default:
			return base, fmt.Errorf("unknown setting %q (known: %v)", k, MapKeys)
		}
		if err != nil {
			return base, fmt.Errorf("setting %s=%q: %w", k, v, err)
		}
	}
	return c, nil
}
