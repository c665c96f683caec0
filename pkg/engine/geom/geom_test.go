package geom

import (
	"math"
	"testing"
)

func TestRect_ClosestPointAndDistance(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 4}
	tests := []struct {
		name string
		p    Vec2
		want Vec2
		dist float64
	}{
		{"inside", V(5, 2), V(5, 2), 0},
		{"left", V(-3, 2), V(0, 2), 3},
		{"below", V(5, 8), V(5, 4), 4},
		{"corner", V(13, 8), V(10, 4), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ClosestPoint(tt.p); got != tt.want {
				t.Errorf("ClosestPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
			if got := r.Distance(tt.p); math.Abs(got-tt.dist) > 1e-12 {
				t.Errorf("Distance(%v) = %v, want %v", tt.p, got, tt.dist)
			}
		})
	}
}

func TestNormalize_Zero(t *testing.T) {
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("Normalize(0) = %v, want zero vector", got)
	}
	if got := V(3, 4).Normalize(); math.Abs(got.Len()-1) > 1e-12 {
		t.Errorf("|Normalize(3,4)| = %v, want 1", got.Len())
	}
}

func TestClampInt_CapWins(t *testing.T) {
	if got := ClampInt(5, 2, 1); got != 1 {
		t.Errorf("ClampInt(5, 2, 1) = %d, want 1", got)
	}
	if got := ClampInt(0, 2, 9); got != 2 {
		t.Errorf("ClampInt(0, 2, 9) = %d, want 2", got)
	}
}

func TestContainsStrict_ExcludesEdges(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 2, H: 2}
	if r.ContainsStrict(V(0, 1)) {
		t.Error("ContainsStrict included a point on the left edge")
	}
	if !r.ContainsStrict(V(1, 1)) {
		t.Error("ContainsStrict excluded the centre")
	}
}
