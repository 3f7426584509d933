package world

// Sensor keys reported by Sensors.Map.
const (
	KeyFireLeft  = "fire_left"
	KeyFireRight = "fire_right"
	KeyFireUp    = "fire_up"
	KeyFireDown  = "fire_down"
	KeyFoodLeft  = "food_left"
	KeyFoodRight = "food_right"
	KeyFoodUp    = "food_up"
	KeyFoodDown  = "food_down"
)

// Sensors holds 0/1 readings for the four axis-adjacent cells.
type Sensors struct {
	FireLeft, FireRight, FireUp, FireDown float64
	FoodLeft, FoodRight, FoodUp, FoodDown float64
}

// Map returns the readings keyed by sensor name. It always has eight entries.
func (s Sensors) Map() map[string]float64 {
	return map[string]float64{
		KeyFireLeft:  s.FireLeft,
		KeyFireRight: s.FireRight,
		KeyFireUp:    s.FireUp,
		KeyFireDown:  s.FireDown,
		KeyFoodLeft:  s.FoodLeft,
		KeyFoodRight: s.FoodRight,
		KeyFoodUp:    s.FoodUp,
		KeyFoodDown:  s.FoodDown,
	}
}

// SenseDirectional inspects the left, right, up and down neighbours of
// (x, y). Neighbours off the grid read as absent. Up is towards y = 0.
func (w *World) SenseDirectional(x, y int) Sensors {
	var s Sensors
	s.FireLeft, s.FoodLeft = w.probe(x-1, y)
	s.FireRight, s.FoodRight = w.probe(x+1, y)
	s.FireUp, s.FoodUp = w.probe(x, y-1)
	s.FireDown, s.FoodDown = w.probe(x, y+1)
	return s
}

func (w *World) probe(x, y int) (fire, food float64) {
	if !w.InBounds(x, y) {
		return 0, 0
	}
	switch Tile(w.grid.At(x, y)) {
	case Hazard:
		return 1, 0
	case Food:
		return 0, 1
	}
	return 0, 0
}
