package gamemath

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 0.5, -1, 1, 0.5},
		{"below", -1.2, -1, 1, -1},
		{"above", 1.05, -1, 1, 1},
		{"edge", 1, -1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestApproach(t *testing.T) {
	tests := []struct {
		name                   string
		current, target, delta float64
		want                   float64
	}{
		{"reaches target", 9, 10, 5, 10},
		{"steps up", 0, 10, 3, 3},
		{"steps down", 0, -10, 3, -3},
		{"already there", 4, 4, 1, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Approach(tt.current, tt.target, tt.delta); got != tt.want {
				t.Errorf("Approach() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClampCameraAxis(t *testing.T) {
	if got := ClampCameraAxis(10, 640, 2000); got != 320 {
		t.Errorf("expected camera clamped to 320, got %v", got)
	}
	if got := ClampCameraAxis(1990, 640, 2000); got != 1680 {
		t.Errorf("expected camera clamped to 1680, got %v", got)
	}
	if got := ClampCameraAxis(1000, 640, 2000); got != 1000 {
		t.Errorf("expected camera untouched at 1000, got %v", got)
	}
	if got := ClampCameraAxis(50, 640, 400); got != 200 {
		t.Errorf("expected small level centered at 200, got %v", got)
	}
}

func TestWalkDirection(t *testing.T) {
	if WalkDirection(true, false) != -1 || WalkDirection(false, true) != 1 {
		t.Error("expected single directions to map to -1 and 1")
	}
	if WalkDirection(true, true) != 0 || WalkDirection(false, false) != 0 {
		t.Error("expected opposing or no input to cancel out")
	}
}
