package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const float32EqualityThreshold = 1e-4

func almostEqual(a, b float32) bool {
	return mgl32.Abs(a-b) <= float32EqualityThreshold
}

func vecAlmostEqual(a, b mgl32.Vec3) bool {
	return almostEqual(a[0], b[0]) && almostEqual(a[1], b[1]) && almostEqual(a[2], b[2])
}

func assertOrthonormal(t *testing.T, cam Camera) {
	t.Helper()

	x, y, z := cam.XAxis(), cam.YAxis(), cam.ZAxis()
	for name, axis := range map[string]mgl32.Vec3{"x": x, "y": y, "z": z} {
		if !almostEqual(axis.Len(), 1) {
			t.Errorf("%s axis length = %v, want 1 (%v)", name, axis.Len(), axis)
		}
	}
	if !almostEqual(x.Dot(y), 0) || !almostEqual(y.Dot(z), 0) || !almostEqual(z.Dot(x), 0) {
		t.Errorf("basis not orthogonal: x=%v y=%v z=%v", x, y, z)
	}
}

func TestNewCameraDefaults(t *testing.T) {
	cam := NewCamera()

	if cam.Behavior() != BehaviorFlight {
		t.Errorf("Behavior() = %v, want flight", cam.Behavior())
	}
	if cam.Position() != (mgl32.Vec3{}) {
		t.Errorf("Position() = %v, want origin", cam.Position())
	}
	if cam.ViewDirection() != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("ViewDirection() = %v, want +Z", cam.ViewDirection())
	}
	if cam.ViewMatrix() != mgl32.Ident4() {
		t.Errorf("ViewMatrix() = %v, want identity", cam.ViewMatrix())
	}
	if cam.RotationSpeed() != DefaultRotationSpeed {
		t.Errorf("RotationSpeed() = %v, want %v", cam.RotationSpeed(), DefaultRotationSpeed)
	}
}

func TestViewMatrixTranslation(t *testing.T) {
	cam := NewCamera(WithPosition(mgl32.Vec3{1, 2, 3}))

	view := cam.ViewMatrix()
	want := [3]float32{-1, -2, -3}
	for c := range 3 {
		if !almostEqual(view.At(3, c), want[c]) {
			t.Errorf("view(3,%d) = %v, want %v", c, view.At(3, c), want[c])
		}
	}

	// The eye itself maps to the view-space origin.
	eye := mgl32.Vec4{1, 2, 3, 1}
	got := view.Transpose().Mul4x1(eye)
	if !almostEqual(got.X(), 0) || !almostEqual(got.Y(), 0) || !almostEqual(got.Z(), 0) {
		t.Errorf("eye in view space = %v, want origin", got)
	}
}

func TestLookAt(t *testing.T) {
	testCases := []struct {
		name      string
		eye       mgl32.Vec3
		target    mgl32.Vec3
		wantZ     mgl32.Vec3
		wantPitch float32
	}{
		{
			name:      "level forward",
			eye:       mgl32.Vec3{0, 0, -5},
			target:    mgl32.Vec3{0, 0, 0},
			wantZ:     mgl32.Vec3{0, 0, 1},
			wantPitch: 0,
		},
		{
			name:      "looking up 45 degrees",
			eye:       mgl32.Vec3{0, 0, 0},
			target:    mgl32.Vec3{0, 1, 1},
			wantZ:     mgl32.Vec3{0, 0.70710677, 0.70710677},
			wantPitch: -45,
		},
		{
			name:      "looking down 45 degrees",
			eye:       mgl32.Vec3{0, 2, 0},
			target:    mgl32.Vec3{2, 0, 0},
			wantZ:     mgl32.Vec3{0.70710677, -0.70710677, 0},
			wantPitch: 45,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cam := NewCamera()
			cam.LookAt(tc.eye, tc.target, mgl32.Vec3{0, 1, 0})

			if cam.Position() != tc.eye {
				t.Errorf("Position() = %v, want %v", cam.Position(), tc.eye)
			}
			if !vecAlmostEqual(cam.ZAxis(), tc.wantZ) {
				t.Errorf("ZAxis() = %v, want %v", cam.ZAxis(), tc.wantZ)
			}
			if !vecAlmostEqual(cam.ViewDirection(), tc.wantZ) {
				t.Errorf("ViewDirection() = %v, want %v", cam.ViewDirection(), tc.wantZ)
			}
			if !almostEqual(cam.AccumulatedPitch(), tc.wantPitch) {
				t.Errorf("AccumulatedPitch() = %v, want %v", cam.AccumulatedPitch(), tc.wantPitch)
			}
			if !almostEqual(cam.XAxis().Y(), 0) {
				t.Errorf("XAxis() = %v, want a horizontal right axis", cam.XAxis())
			}
			assertOrthonormal(t, cam)
		})
	}
}

func TestLookAtTargetKeepsPosition(t *testing.T) {
	cam := NewCamera(WithPosition(mgl32.Vec3{3, 0, 0}))
	cam.LookAtTarget(mgl32.Vec3{3, 0, 10})

	if cam.Position() != (mgl32.Vec3{3, 0, 0}) {
		t.Errorf("Position() = %v, want unchanged", cam.Position())
	}
	if !vecAlmostEqual(cam.ViewDirection(), mgl32.Vec3{0, 0, 1}) {
		t.Errorf("ViewDirection() = %v, want +Z", cam.ViewDirection())
	}
}

func TestPerspective(t *testing.T) {
	cam := NewCamera(WithPerspective(90, 1, 0.1, 1000))

	proj := cam.ProjectionMatrix()
	if !almostEqual(proj.At(0, 0), 1) || !almostEqual(proj.At(1, 1), 1) {
		t.Errorf("scale terms = (%v, %v), want (1, 1)", proj.At(0, 0), proj.At(1, 1))
	}
	if !almostEqual(proj.At(2, 3), 1) || proj.At(3, 3) != 0 {
		t.Errorf("w terms = (%v, %v), want (1, 0)", proj.At(2, 3), proj.At(3, 3))
	}

	if cam.FovX() != 90 || cam.Aspect() != 1 || cam.Near() != 0.1 || cam.Far() != 1000 {
		t.Errorf("stored parameters = (%v, %v, %v, %v)", cam.FovX(), cam.Aspect(), cam.Near(), cam.Far())
	}
}

func TestSetAspectOnlyChangesScaleTerms(t *testing.T) {
	cam := NewCamera(WithPerspective(90, 1, 0.1, 1000))
	before := cam.ProjectionMatrix()

	cam.SetAspect(2)
	after := cam.ProjectionMatrix()

	if after.At(0, 0) == before.At(0, 0) {
		t.Errorf("(0,0) unchanged at %v after aspect change", after.At(0, 0))
	}
	if after.At(1, 1) == before.At(1, 1) {
		t.Errorf("(1,1) unchanged at %v after aspect change", after.At(1, 1))
	}

	for r := range 4 {
		for c := range 4 {
			if r == c && r < 2 {
				continue
			}
			if after.At(r, c) != before.At(r, c) {
				t.Errorf("(%d,%d) = %v, want %v", r, c, after.At(r, c), before.At(r, c))
			}
		}
	}

	if cam.FovX() != 90 || cam.Aspect() != 2 {
		t.Errorf("FovX/Aspect = %v/%v, want 90/2", cam.FovX(), cam.Aspect())
	}
}

func TestViewProjectionMatrix(t *testing.T) {
	cam := NewCamera(
		WithPosition(mgl32.Vec3{0, 1, -4}),
		WithPerspective(75, 16.0/9.0, 0.1, 100),
	)

	want := cam.ViewMatrix().Mul4(cam.ProjectionMatrix())
	if cam.ViewProjectionMatrix() != want {
		t.Errorf("ViewProjectionMatrix() = %v, want View*Projection %v", cam.ViewProjectionMatrix(), want)
	}
}

func TestFrustum(t *testing.T) {
	cam := NewCamera(WithPerspective(90, 1, 0.1, 100))
	f := cam.Frustum()

	if !f.ContainsPoint(mgl32.Vec3{0, 0, 10}) {
		t.Error("point straight ahead should be inside the frustum")
	}
	if f.ContainsPoint(mgl32.Vec3{0, 0, -1}) {
		t.Error("point behind the camera should be outside the frustum")
	}
	if f.ContainsPoint(mgl32.Vec3{0, 0, 200}) {
		t.Error("point beyond the far plane should be outside the frustum")
	}
	if f.ContainsPoint(mgl32.Vec3{20, 0, 10}) {
		t.Error("point outside the horizontal FOV should be outside the frustum")
	}

	cam.Rotate(180, 0, 0)
	f = cam.Frustum()
	if !f.ContainsPoint(mgl32.Vec3{0, 0, -10}) {
		t.Error("after turning around, point at -Z should be inside the frustum")
	}
}
