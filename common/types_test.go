package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBounds(t *testing.T) {
	b := NewBounds(mgl32.Vec3{8, 4, -8}, mgl32.Vec3{-8, 1, 8})

	if b.Min != (mgl32.Vec3{-8, 1, -8}) || b.Max != (mgl32.Vec3{8, 4, 8}) {
		t.Fatalf("NewBounds = %+v, want min (-8, 1, -8) max (8, 4, 8)", b)
	}
	if !b.Valid() {
		t.Error("Valid() = false for a normalized box")
	}
	if (Bounds{Min: mgl32.Vec3{1, 0, 0}}).Valid() {
		t.Error("Valid() = true with min.x > max.x")
	}

	tests := []struct {
		name     string
		p        mgl32.Vec3
		contains bool
		clamped  mgl32.Vec3
	}{
		{"inside", mgl32.Vec3{0, 2, 0}, true, mgl32.Vec3{0, 2, 0}},
		{"on the boundary", mgl32.Vec3{8, 4, -8}, true, mgl32.Vec3{8, 4, -8}},
		{"past max x", mgl32.Vec3{9, 2, 0}, false, mgl32.Vec3{8, 2, 0}},
		{"below the floor", mgl32.Vec3{0, 0, 0}, false, mgl32.Vec3{0, 1, 0}},
		{"outside on every axis", mgl32.Vec3{-20, 10, 20}, false, mgl32.Vec3{-8, 4, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.p); got != tt.contains {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.contains)
			}
			if got := b.Clamp(tt.p); got != tt.clamped {
				t.Errorf("Clamp(%v) = %v, want %v", tt.p, got, tt.clamped)
			}
		})
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce[float32](0, 0, 0.3, 0.5); got != 0.3 {
		t.Errorf("Coalesce = %v, want 0.3", got)
	}
	if got := Coalesce("", "first_person"); got != "first_person" {
		t.Errorf("Coalesce = %q, want first_person", got)
	}
	if got := Coalesce(mgl32.Vec3{}, mgl32.Vec3{8, 8, 8}); got != (mgl32.Vec3{8, 8, 8}) {
		t.Errorf("Coalesce = %v, want (8, 8, 8)", got)
	}
	if got := Coalesce[int](); got != 0 {
		t.Errorf("Coalesce() = %v, want 0", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp[float32](1.2, 0.01, 1); got != 1 {
		t.Errorf("Clamp(1.2) = %v, want 1", got)
	}
	if got := Clamp[float32](0, 0.01, 1); got != 0.01 {
		t.Errorf("Clamp(0) = %v, want 0.01", got)
	}
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5) = %v, want 5", got)
	}
}
