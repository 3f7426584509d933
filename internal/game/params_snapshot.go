package game

import (
	"strconv"

	"github.com/Komalshar25/NeuroVerse/internal/core"
)

// Parameters reports the live values shown on the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	p := s.agent.Params()
	pos := s.agent.Position()
	out := s.last.Outputs
	groups := []core.ParameterGroup{
		{
			Name: "Agent",
			Params: []core.Parameter{
				floatParam("health", "Health", s.agent.Health()),
				intParam("score", "Score", s.agent.Score()),
				intParam("x", "X", pos.X),
				intParam("y", "Y", pos.Y),
				textParam("state", "State", s.agent.State().String()),
				textParam("action", "Last action", s.last.Action.String()),
			},
		},
		{
			Name: "Episode",
			Params: []core.Parameter{
				int64Param("seed", "Seed", s.cfg.Seed),
				intParam("tick", "Tick", s.tick),
				intParam("food_eaten", "Food eaten", s.stats.FoodEaten),
				intParam("hazard_hits", "Hazard hits", s.stats.HazardHits),
			},
		},
		{
			Name: "Brain outputs",
			Params: []core.Parameter{
				floatParam("move_left", "Left", out.Left),
				floatParam("move_right", "Right", out.Right),
				floatParam("move_up", "Up", out.Up),
				floatParam("move_down", "Down", out.Down),
			},
		},
		{
			Name: "Tuning",
			Params: []core.Parameter{
				floatParam("decay_per_tick", "Decay per tick", p.DecayPerTick),
				floatParam("hazard_damage", "Hazard damage", p.HazardDamage),
				floatParam("food_heal", "Food heal", p.FoodHeal),
				intParam("ai_interval", "AI interval", s.cfg.AIInterval),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "decay_per_tick", Label: "Decay per tick", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, Max: 5, HasMin: true, HasMax: true},
		{Key: "hazard_damage", Label: "Hazard damage", Type: core.ParamTypeFloat, Step: 5, Min: 0, Max: 100, HasMin: true, HasMax: true},
		{Key: "food_heal", Label: "Food heal", Type: core.ParamTypeFloat, Step: 5, Min: 0, Max: 100, HasMin: true, HasMax: true},
		{Key: "ai_interval", Label: "AI interval", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 60, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer control. It reports whether key was
// recognised and value accepted.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case "ai_interval":
		if value < 1 {
			return false
		}
		s.cfg.AIInterval = value
		return true
	}
	return false
}

// SetFloatParameter updates a float control.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	if !finite(value) || value < 0 {
		return false
	}
	p := s.agent.Params()
	switch key {
	case "decay_per_tick":
		p.DecayPerTick = value
	case "hazard_damage":
		p.HazardDamage = value
	case "food_heal":
		p.FoodHeal = value
	default:
		return false
	}
	s.agent.SetParams(p)
	s.cfg.Agent = p
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', 2, 64)}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeText, Value: value}
}
