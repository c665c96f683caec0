package entities

import (
	"math"
	"testing"

	"tiltmaze/pkg/engine/geom"
)

func TestSpike_Periodic(t *testing.T) {
	s := Spike{Period: 2, Duty: 0.5, Phase: 0.3}
	for _, tm := range []float64{0, 0.1, 0.6, 1.2, 1.69, 1.71, 3.3} {
		for k := -3; k <= 3; k++ {
			shifted := tm + float64(k)*s.Period
			if s.Active(tm) != s.Active(shifted) {
				t.Errorf("Active(%v) = %v but Active(%v) = %v", tm, s.Active(tm), shifted, s.Active(shifted))
			}
		}
	}
}

func TestSpike_ActiveWindow(t *testing.T) {
	s := Spike{Period: 2, Duty: 0.45, Phase: 0}
	tests := []struct {
		t    float64
		want bool
	}{
		{0, true},
		{0.89, true},
		{0.95, false},
		{1.99, false},
		{2.0, true},
		{-0.5, false}, // wraps to 1.5
		{-1.5, true},  // wraps to 0.5
	}
	for _, tt := range tests {
		if got := s.Active(tt.t); got != tt.want {
			t.Errorf("Active(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestSpike_Phase01Range(t *testing.T) {
	s := Spike{Period: 1.3, Duty: 0.5, Phase: 1.1}
	for tm := -5.0; tm < 5; tm += 0.17 {
		p := s.Phase01(tm)
		if p < 0 || p >= 1 {
			t.Fatalf("Phase01(%v) = %v, want [0, 1)", tm, p)
		}
	}
}

func TestRadii_Clamped(t *testing.T) {
	tests := []struct {
		cell         float64
		body, hazard float64
	}{
		{10, 8, 6},
		{40, 11.2, 8.8},
		{100, 16, 14},
	}
	for _, tt := range tests {
		if got := BodyRadius(tt.cell); math.Abs(got-tt.body) > 1e-9 {
			t.Errorf("BodyRadius(%v) = %v, want %v", tt.cell, got, tt.body)
		}
		if got := HazardRadius(tt.cell); math.Abs(got-tt.hazard) > 1e-9 {
			t.Errorf("HazardRadius(%v) = %v, want %v", tt.cell, got, tt.hazard)
		}
	}
}

func TestBody_Respawn(t *testing.T) {
	spots := []StartSpot{{Pos: geom.V(10, 10)}, {Pos: geom.V(10, 90)}}

	b := NewBody(spots, 1, 8)
	if b.Pos != geom.V(10, 90) {
		t.Fatalf("NewBody spot 1 at %v, want (10, 90)", b.Pos)
	}

	b.Pos = geom.V(50, 50)
	b.Vel = geom.V(3, -4)
	b.Respawn(spots)
	if b.Pos != geom.V(10, 90) || b.Vel != (geom.Vec2{}) {
		t.Errorf("Respawn -> pos %v vel %v, want (10, 90) at rest", b.Pos, b.Vel)
	}

	// Out of range index falls back to the last spot
	b.Spot = 5
	b.Respawn(spots[:1])
	if b.Pos != geom.V(10, 10) {
		t.Errorf("Respawn with short spot list at %v, want (10, 10)", b.Pos)
	}
}
