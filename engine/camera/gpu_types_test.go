package camera

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func readFloat(buf []byte, offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
}

func TestGPUCameraUniformLayout(t *testing.T) {
	var u GPUCameraUniform
	if u.Size() != 80 {
		t.Fatalf("Size() = %d, want 80", u.Size())
	}
	if !strings.Contains(GPUCameraUniformSource, "struct CameraUniform") {
		t.Error("GPUCameraUniformSource does not declare CameraUniform")
	}
}

func TestGPUCameraUniformMarshal(t *testing.T) {
	cam := NewCamera(WithPosition(mgl32.Vec3{1, 2, 3}))
	u := NewGPUCameraUniform(cam)

	buf := u.Marshal()
	if len(buf) != 80 {
		t.Fatalf("len(Marshal()) = %d, want 80", len(buf))
	}

	// Row-major flattening: the translation row lands in elements 12..14.
	wantTranslation := [3]float32{-1, -2, -3}
	for i, want := range wantTranslation {
		if got := readFloat(buf, (12+i)*4); got != want {
			t.Errorf("viewProj[%d] = %v, want %v", 12+i, got, want)
		}
	}

	wantPosition := [3]float32{1, 2, 3}
	for i, want := range wantPosition {
		if got := readFloat(buf, 64+i*4); got != want {
			t.Errorf("position[%d] = %v, want %v", i, got, want)
		}
	}

	if got := binary.LittleEndian.Uint32(buf[76:]); got != 0 {
		t.Errorf("padding = %#x, want 0", got)
	}
}

func TestGPUCameraUniformMatchesViewProjection(t *testing.T) {
	cam := NewCamera(
		WithLookAt(mgl32.Vec3{2, 3, -6}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}),
		WithPerspective(90, 4.0/3.0, 0.1, 100),
	)
	u := NewGPUCameraUniform(cam)
	vp := cam.ViewProjectionMatrix()

	for r := range 4 {
		for c := range 4 {
			if got := u.ViewProj[r*4+c]; got != vp.At(r, c) {
				t.Errorf("ViewProj[%d] = %v, want vp(%d,%d) = %v", r*4+c, got, r, c, vp.At(r, c))
			}
		}
	}
}
