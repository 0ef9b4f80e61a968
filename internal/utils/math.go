// internal/utils/math.go
package utils

import "math"

// Lerp performs standard linear interpolation.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// InverseLerp returns the t for which Lerp(from, to, t) == v, clamped to [0, 1].
func InverseLerp(from, to, v float64) float64 {
	if from == to {
		return 0
	}
	return Clamp((v-from)/(to-from), 0, 1)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizeAngle wraps an angle into [-π, π].
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle > math.Pi {
		angle -= 2 * math.Pi
	} else if angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}
