package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-camera/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

func TestParseCameraConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *CameraConfig)
	}{
		{
			name: "full config",
			yamlContent: `
behavior: flight
position: [1, 2, 3]
target: [1, 2, 10]
fovX: 75
zNear: 0.5
zFar: 500
rotationSpeed: 0.5
acceleration: [4, 5, 6]
velocity: [1, 1, 3]
flightYawSpeed: 45
groundHeight: 0.5
bounds:
  min: [-10, 0, -10]
  max: [10, 5, 10]
`,
			validate: func(t *testing.T, cfg *CameraConfig) {
				if cfg.CameraBehavior() != camera.BehaviorFlight {
					t.Errorf("expected flight behavior, got %v", cfg.Behavior)
				}
				if *cfg.Position != (mgl32.Vec3{1, 2, 3}) {
					t.Errorf("expected position (1,2,3), got %v", *cfg.Position)
				}
				if cfg.Target == nil || *cfg.Target != (mgl32.Vec3{1, 2, 10}) {
					t.Errorf("expected target (1,2,10), got %v", cfg.Target)
				}
				if cfg.FovX != 75 || cfg.ZNear != 0.5 || cfg.ZFar != 500 {
					t.Errorf("unexpected projection %v/%v/%v", cfg.FovX, cfg.ZNear, cfg.ZFar)
				}
				if cfg.Acceleration != (mgl32.Vec3{4, 5, 6}) {
					t.Errorf("expected acceleration (4,5,6), got %v", cfg.Acceleration)
				}
				if *cfg.GroundHeight != 0.5 {
					t.Errorf("expected ground height 0.5, got %v", *cfg.GroundHeight)
				}
				if cfg.Bounds.Max != (mgl32.Vec3{10, 5, 10}) {
					t.Errorf("expected bounds max (10,5,10), got %v", cfg.Bounds.Max)
				}
			},
		},
		{
			name:        "empty document uses defaults",
			yamlContent: ``,
			validate: func(t *testing.T, cfg *CameraConfig) {
				if cfg.CameraBehavior() != camera.BehaviorFirstPerson {
					t.Errorf("expected first person, got %v", cfg.Behavior)
				}
				if *cfg.Position != DefaultPosition {
					t.Errorf("expected default position, got %v", *cfg.Position)
				}
				if cfg.ZFar != DefaultZFar || cfg.FovX != DefaultFovX {
					t.Errorf("expected default projection, got fovX=%v zFar=%v", cfg.FovX, cfg.ZFar)
				}
				if cfg.Velocity != DefaultVelocity {
					t.Errorf("expected default velocity, got %v", cfg.Velocity)
				}
				if *cfg.Bounds != DefaultBounds {
					t.Errorf("expected default bounds, got %v", *cfg.Bounds)
				}
			},
		},
		{
			name:        "ground height follows position",
			yamlContent: `position: [0, 3, 0]`,
			validate: func(t *testing.T, cfg *CameraConfig) {
				if *cfg.GroundHeight != 3 {
					t.Errorf("expected ground height 3, got %v", *cfg.GroundHeight)
				}
			},
		},
		{
			name:        "explicit origin is kept",
			yamlContent: `position: [0, 0, 0]`,
			validate: func(t *testing.T, cfg *CameraConfig) {
				if *cfg.Position != (mgl32.Vec3{}) {
					t.Errorf("expected origin, got %v", *cfg.Position)
				}
			},
		},
		{
			name:        "unknown behavior",
			yamlContent: `behavior: orbit`,
			wantErr:     true,
			errContains: "orbit",
		},
		{
			name:        "negative near plane",
			yamlContent: `zNear: -1`,
			wantErr:     true,
			errContains: "zNear",
		},
		{
			name:        "far plane before near plane",
			yamlContent: "zNear: 10\nzFar: 5",
			wantErr:     true,
			errContains: "zFar",
		},
		{
			name:        "fov out of range",
			yamlContent: `fovX: 180`,
			wantErr:     true,
			errContains: "fovX",
		},
		{
			name:        "target equals position",
			yamlContent: "position: [1, 1, 1]\ntarget: [1, 1, 1]",
			wantErr:     true,
			errContains: "target",
		},
		{
			name:        "target straight above position",
			yamlContent: "position: [0, 1, 0]\ntarget: [0, 5, 0]",
			wantErr:     true,
			errContains: "target",
		},
		{
			name:        "target straight below position",
			yamlContent: "position: [2, 3, 4]\ntarget: [2, -1, 4]",
			wantErr:     true,
			errContains: "target",
		},
		{
			name: "inverted bounds",
			yamlContent: `
bounds:
  min: [1, 1, 1]
  max: [0, 0, 0]
`,
			wantErr:     true,
			errContains: "bounds",
		},
		{
			name:        "wrong vector length",
			yamlContent: `position: [1, 2]`,
			wantErr:     true,
		},
		{
			name:        "malformed yaml",
			yamlContent: "position: [1, 2, 3\n",
			wantErr:     true,
			errContains: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseCameraConfig([]byte(tt.yamlContent))

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadCameraConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "camera.yaml")
	if err := os.WriteFile(path, []byte("behavior: flight\nzFar: 250\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadCameraConfig(path)
	if err != nil {
		t.Fatalf("LoadCameraConfig: %v", err)
	}
	if cfg.ZFar != 250 || cfg.CameraBehavior() != camera.BehaviorFlight {
		t.Errorf("unexpected config: zFar=%v behavior=%v", cfg.ZFar, cfg.Behavior)
	}

	if _, err := LoadCameraConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadShippedCameraConfig(t *testing.T) {
	cfg, err := LoadCameraConfig(filepath.Join("..", "..", DefaultConfigPath))
	if err != nil {
		t.Fatalf("shipped config does not load: %v", err)
	}
	if *cfg.Bounds != DefaultBounds {
		t.Errorf("shipped bounds %v differ from defaults %v", *cfg.Bounds, DefaultBounds)
	}
}

func TestCameraOptions(t *testing.T) {
	cfg, err := ParseCameraConfig([]byte(`
behavior: first_person
position: [0, 2, 0]
target: [0, 2, -5]
rotationSpeed: 0.4
`))
	if err != nil {
		t.Fatalf("ParseCameraConfig: %v", err)
	}

	cam := camera.NewCamera(cfg.CameraOptions(2)...)

	if cam.Behavior() != camera.BehaviorFirstPerson {
		t.Errorf("Behavior() = %v, want first person", cam.Behavior())
	}
	if cam.Position() != (mgl32.Vec3{0, 2, 0}) {
		t.Errorf("Position() = %v, want (0,2,0)", cam.Position())
	}
	if d := cam.ViewDirection(); mgl32.Abs(d.Z()+1) > 1e-4 {
		t.Errorf("ViewDirection() = %v, want -Z", d)
	}
	if cam.Aspect() != 2 || cam.Far() != DefaultZFar {
		t.Errorf("Aspect/Far = %v/%v, want 2/%v", cam.Aspect(), cam.Far(), DefaultZFar)
	}
	if cam.RotationSpeed() != 0.4 {
		t.Errorf("RotationSpeed() = %v, want 0.4", cam.RotationSpeed())
	}
	if cam.Velocity() != DefaultVelocity || cam.Acceleration() != DefaultAcceleration {
		t.Errorf("Velocity/Acceleration = %v/%v, want defaults", cam.Velocity(), cam.Acceleration())
	}

	cc := camera.NewCameraController(cam, cfg.ControllerOptions()...)
	if cc.GroundHeight() != 2 {
		t.Errorf("GroundHeight() = %v, want 2", cc.GroundHeight())
	}
	if b, ok := cc.Bounds(); !ok || b != DefaultBounds {
		t.Errorf("Bounds() = %v, %v; want defaults", b, ok)
	}
	if cc.FlightYawSpeed() != DefaultFlightYawSpeed {
		t.Errorf("FlightYawSpeed() = %v, want %v", cc.FlightYawSpeed(), DefaultFlightYawSpeed)
	}
}

func TestControllerOptionsUnbounded(t *testing.T) {
	cfg, err := ParseCameraConfig([]byte(`unbounded: true`))
	if err != nil {
		t.Fatalf("ParseCameraConfig: %v", err)
	}

	cc := camera.NewCameraController(camera.NewCamera(cfg.CameraOptions(1)...), cfg.ControllerOptions()...)
	if _, ok := cc.Bounds(); ok {
		t.Error("expected no bounds for an unbounded config")
	}
}
