package nav

import "math"

// Vec2 is a world-space point or offset in tile units.
type Vec2 struct {
	X, Y float64
}

func floor(v float64) float64 {
	return math.Floor(v)
}

// cellOf truncates a world position down to its containing integer cell.
func cellOf(p Vec2) (int, int) {
	return int(floor(p.X)), int(floor(p.Y))
}

func euclidean(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
