package solar

import (
	"math"
	"math/rand"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		min      float64
		max      float64
		expected float64
	}{
		{"inside range", 45, 0, 360, 45},
		{"negative", -30, 0, 360, 330},
		{"above range", 725, 0, 360, 5},
		{"lower bound is kept", 0, 0, 360, 0},
		{"upper bound wraps", 360, 0, 360, 0},
		{"symmetric upper bound", 180, -180, 180, -180},
		{"symmetric below range", -190, -180, 180, 170},
		{"hours", -1.5, 0, 24, 22.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.x, tt.min, tt.max)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Normalize(%v, %v, %v): expected %v, got %v", tt.x, tt.min, tt.max, tt.expected, got)
			}
		})
	}
}

func TestNormalize_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 10000; i++ {
		x := (rng.Float64() - 0.5) * 1e5
		got := Normalize(x, 0, 360)

		if got < 0 || got >= 360 {
			t.Fatalf("Normalize(%v) = %v, out of [0, 360)", x, got)
		}

		// Congruent modulo 360.
		turns := (x - got) / 360
		if math.Abs(turns-math.Round(turns)) > 1e-9 {
			t.Fatalf("Normalize(%v) = %v is not congruent modulo 360", x, got)
		}

		k := float64(rng.Intn(21) - 10)
		shifted := Normalize(x+360*k, 0, 360)
		if diff := math.Abs(shifted - got); diff > 1e-6 && math.Abs(diff-360) > 1e-6 {
			t.Fatalf("Normalize is not periodic: %v vs %v for x=%v k=%v", shifted, got, x, k)
		}
	}
}

func TestRev(t *testing.T) {
	if got := Rev360(-90); got != 270 {
		t.Errorf("Expected 270, got %v", got)
	}
	if got := Rev24(25.5); got != 1.5 {
		t.Errorf("Expected 1.5, got %v", got)
	}
	if got := Rev24(-1e-20); got < 0 || got >= 24 {
		t.Errorf("Expected a value in [0, 24), got %v", got)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, expected int
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{7, -2, -4},
		{-8, 2, -4},
		{0, 5, 0},
	}

	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.expected {
			t.Errorf("floorDiv(%d, %d): expected %d, got %d", tt.a, tt.b, tt.expected, got)
		}
	}
}
