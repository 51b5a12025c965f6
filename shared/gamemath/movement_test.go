package gamemath

import (
	"math"
	"testing"
)

func TestDirectionalVelocity(t *testing.T) {
	const diag = 141.4213562373095

	cases := []struct {
		name                  string
		left, right, up, down bool
		wantX, wantY          float64
	}{
		{"idle", false, false, false, false, 0, 0},
		{"left", true, false, false, false, -200, 0},
		{"right", false, true, false, false, 200, 0},
		{"up", false, false, true, false, 0, -200},
		{"down", false, false, false, true, 0, 200},
		{"left_beats_right", true, true, false, false, -200, 0},
		{"up_beats_down", false, false, true, true, 0, -200},
		{"left_up", true, false, true, false, -diag, -diag},
		{"right_down", false, true, false, true, diag, diag},
		{"everything", true, true, true, true, -diag, -diag},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			vx, vy := DirectionalVelocity(c.left, c.right, c.up, c.down, 200)
			if math.Abs(vx-c.wantX) > 1e-9 || math.Abs(vy-c.wantY) > 1e-9 {
				t.Fatalf("expected (%v, %v), got (%v, %v)", c.wantX, c.wantY, vx, vy)
			}
			if c.wantX != 0 || c.wantY != 0 {
				if speed := math.Hypot(vx, vy); math.Abs(speed-200) > 1e-9 {
					t.Fatalf("expected speed 200, got %v", speed)
				}
			}
		})
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, min, max, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.min, c.max); got != c.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.min, c.max, got, c.want)
		}
	}
}

func TestDirectionName(t *testing.T) {
	cases := []struct {
		vx, vy float64
		want   string
	}{
		{0, 0, "none"},
		{-200, 0, "left"},
		{0, 200, "down"},
		{-141, -141, "up-left"},
		{141, 141, "down-right"},
	}
	for _, c := range cases {
		if got := DirectionName(c.vx, c.vy); got != c.want {
			t.Errorf("DirectionName(%v, %v) = %q, want %q", c.vx, c.vy, got, c.want)
		}
	}
}
