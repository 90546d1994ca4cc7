// Package gamemath holds the scalar helpers shared by the movement and
// collision systems.
package gamemath

import "math"

// RangesTouch reports whether two centers a and b are within size of each
// other on one axis. When they are not, it also returns the remaining gap.
func RangesTouch(a, b, size float64) (bool, float64) {
	d := math.Abs(b - a)
	if d <= size {
		return true, 0
	}
	return false, d - size
}

// DistanceToContact returns 0 when the ranges touch, else the gap between them.
func DistanceToContact(a, b, size float64) float64 {
	_, gap := RangesTouch(a, b, size)
	return gap
}

// DriftTowards moves current toward target by at most speed without overshoot.
func DriftTowards(target, current, speed float64) float64 {
	if current < target {
		return math.Min(current+speed, target)
	}
	if current > target {
		return math.Max(current-speed, target)
	}
	return current
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
