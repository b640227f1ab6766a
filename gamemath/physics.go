package gamemath

import "math"

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

// Approach moves current toward target by at most maxDelta.
func Approach(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// Lerp returns a + (b-a)*t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ClampCameraAxis keeps a camera center inside [0, levelSize] so the level
// always fills the screen. Levels smaller than the screen are centered.
func ClampCameraAxis(target, screenSize, levelSize float64) float64 {
	if levelSize <= screenSize {
		return levelSize / 2
	}
	return Clamp(target, screenSize/2, levelSize-screenSize/2)
}

// WalkDirection turns a pair of held directions into -1, 0 or 1.
func WalkDirection(left, right bool) float64 {
	switch {
	case left && !right:
		return -1
	case right && !left:
		return 1
	}
	return 0
}
