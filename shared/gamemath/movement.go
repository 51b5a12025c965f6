package gamemath

import "math"

// DirectionalVelocity turns four direction keys into a velocity. Left wins
// over right and up wins over down. When both axes are active the result is
// scaled so its length is still speed.
func DirectionalVelocity(left, right, up, down bool, speed float64) (vx, vy float64) {
	if left {
		vx = -speed
	} else if right {
		vx = speed
	}

	if up {
		vy = -speed
	} else if down {
		vy = speed
	}

	if vx != 0 && vy != 0 {
		vx *= math.Sqrt2 / 2
		vy *= math.Sqrt2 / 2
	}
	return vx, vy
}

// Clamp limits v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// DirectionName describes a velocity as one of the eight compass words,
// or "none" when standing still.
func DirectionName(vx, vy float64) string {
	var ns, ew string
	switch {
	case vy < 0:
		ns = "up"
	case vy > 0:
		ns = "down"
	}
	switch {
	case vx < 0:
		ew = "left"
	case vx > 0:
		ew = "right"
	}

	switch {
	case ns == "" && ew == "":
		return "none"
	case ns == "":
		return ew
	case ew == "":
		return ns
	default:
		return ns + "-" + ew
	}
}
