package gamemath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampFall limits downward (negative) speed to maxFall without touching
// upward speed.
func ClampFall(vy, maxFall float64) float64 {
	if vy < -maxFall {
		return -maxFall
	}
	return vy
}

// Tilt returns a rotation in degrees that follows vertical velocity, clamped
// to [minDeg, maxDeg].
func Tilt(vy, degPerUnit, minDeg, maxDeg float64) float64 {
	return Clamp(vy*degPerUnit, minDeg, maxDeg)
}

// Wrap returns v folded into [0, period). A non-positive period returns 0.
func Wrap(v, period float64) float64 {
	if period <= 0 {
		return 0
	}
	r := math.Mod(v, period)
	if r < 0 {
		r += period
	}
	return r
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
