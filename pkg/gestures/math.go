package gestures

import "math"

func distance(offset Offset) float64 {
	return math.Hypot(offset.X, offset.Y)
}
