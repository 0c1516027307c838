package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/Carmen-Shannon/oxy-camera/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where the demo looks for its camera configuration.
const DefaultConfigPath = "data/camera.yaml"

// Defaults used for fields left out of a configuration file.
const (
	DefaultBehavior       = "first_person"
	DefaultFovX           float32 = 90.0
	DefaultZNear          float32 = 0.1
	DefaultZFar           float32 = 100.0
	DefaultRotationSpeed  float32 = 0.3
	DefaultFlightYawSpeed float32 = 100.0
)

var (
	// DefaultPosition is the starting eye position, one unit above the floor.
	DefaultPosition = mgl32.Vec3{0, 1, 0}
	// DefaultAcceleration is the per-axis acceleration in world units / s².
	DefaultAcceleration = mgl32.Vec3{8, 8, 8}
	// DefaultVelocity is the per-axis speed cap in world units / s.
	DefaultVelocity = mgl32.Vec3{2, 2, 2}
	// DefaultBounds keeps the camera above a 16x16 floor and below a 4 unit ceiling.
	DefaultBounds = common.Bounds{Min: mgl32.Vec3{-8, 1, -8}, Max: mgl32.Vec3{8, 4, 8}}
)

// CameraConfig describes the initial camera state and how the controller drives it.
//
// Configuration file location: data/camera.yaml
type CameraConfig struct {
	// Behavior is "first_person" or "flight".
	Behavior string `yaml:"behavior"`

	// Position is the starting eye position.
	Position *mgl32.Vec3 `yaml:"position"`

	// Target, when set, is the point the camera initially faces. Otherwise it faces +Z.
	Target *mgl32.Vec3 `yaml:"target"`

	// FovX is the horizontal field of view in degrees.
	FovX float32 `yaml:"fovX"`

	// ZNear is the near clipping plane distance.
	ZNear float32 `yaml:"zNear"`

	// ZFar is the far clipping plane distance.
	ZFar float32 `yaml:"zFar"`

	// RotationSpeed scales mouse deltas into degrees.
	RotationSpeed float32 `yaml:"rotationSpeed"`

	// Acceleration is the per-axis acceleration used while moving.
	Acceleration mgl32.Vec3 `yaml:"acceleration"`

	// Velocity is the per-axis speed cap.
	Velocity mgl32.Vec3 `yaml:"velocity"`

	// FlightYawSpeed is the flight heading rate in degrees per second.
	FlightYawSpeed float32 `yaml:"flightYawSpeed"`

	// GroundHeight is the Y position restored when switching to first person.
	// Defaults to the starting Y position.
	GroundHeight *float32 `yaml:"groundHeight"`

	// Bounds is the box the camera is kept in. Defaults to DefaultBounds.
	Bounds *common.Bounds `yaml:"bounds"`

	// Unbounded disables position clamping entirely.
	Unbounded bool `yaml:"unbounded"`
}

// DefaultCameraConfig returns the configuration used when no file is available.
//
// Returns:
//   - *CameraConfig: a fully populated default configuration
func DefaultCameraConfig() *CameraConfig {
	c := &CameraConfig{}
	c.applyDefaults()
	return c
}

// LoadCameraConfig loads a YAML camera configuration file.
// Fields left out of the file fall back to their defaults before validation.
//
// Parameters:
//   - path: configuration file path (e.g. "data/camera.yaml")
//
// Returns:
//   - *CameraConfig: the loaded configuration
//   - error: error if the file cannot be read, parsed or validated
func LoadCameraConfig(path string) (*CameraConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read camera config: %w", err)
	}

	c, err := ParseCameraConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ParseCameraConfig parses YAML camera configuration data.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - *CameraConfig: the parsed configuration with defaults applied
//   - error: error if the data cannot be parsed or validated
func ParseCameraConfig(data []byte) (*CameraConfig, error) {
	var c CameraConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse camera config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid camera config: %w", err)
	}
	return &c, nil
}

// minLookAtCrossLenSqr rejects look directions (nearly) parallel to the world up axis,
// for which LookAt cannot build a basis.
const minLookAtCrossLenSqr float32 = 1e-6

// Validate checks that the configuration describes a usable camera.
//
// Returns:
//   - error: the first problem found, or nil
func (c *CameraConfig) Validate() error {
	if _, err := camera.ParseBehavior(c.Behavior); err != nil {
		return err
	}
	if c.ZNear <= 0 {
		return fmt.Errorf("zNear must be positive, got %v", c.ZNear)
	}
	if c.ZFar <= c.ZNear {
		return fmt.Errorf("zFar (%v) must be greater than zNear (%v)", c.ZFar, c.ZNear)
	}
	if c.FovX <= 0 || c.FovX >= 180 {
		return fmt.Errorf("fovX must be in (0, 180), got %v", c.FovX)
	}
	if c.RotationSpeed <= 0 {
		return fmt.Errorf("rotationSpeed must be positive, got %v", c.RotationSpeed)
	}
	for i := range 3 {
		if c.Acceleration[i] < 0 || c.Velocity[i] < 0 {
			return errors.New("acceleration and velocity must not be negative")
		}
	}
	if c.Target != nil {
		if *c.Target == *c.Position {
			return errors.New("target must differ from position")
		}
		forward := c.Target.Sub(*c.Position).Normalize()
		if forward.Cross(common.WorldYAxis).LenSqr() < minLookAtCrossLenSqr {
			return fmt.Errorf("target %v must not be straight above or below position %v", *c.Target, *c.Position)
		}
	}
	if c.Bounds != nil && !c.Bounds.Valid() {
		return fmt.Errorf("bounds invalid: min %v > max %v", c.Bounds.Min, c.Bounds.Max)
	}
	return nil
}

// CameraBehavior returns the parsed behavior. Call Validate first.
//
// Returns:
//   - camera.Behavior: the configured behavior, first person if unknown
func (c *CameraConfig) CameraBehavior() camera.Behavior {
	b, err := camera.ParseBehavior(c.Behavior)
	if err != nil {
		return camera.BehaviorFirstPerson
	}
	return b
}

// CameraOptions converts the configuration into camera builder options.
//
// Parameters:
//   - aspect: the viewport aspect ratio (width / height)
//
// Returns:
//   - []camera.CameraBuilderOption: options for camera.NewCamera
func (c *CameraConfig) CameraOptions(aspect float32) []camera.CameraBuilderOption {
	options := []camera.CameraBuilderOption{
		camera.WithPosition(*c.Position),
	}
	if c.Target != nil {
		options = append(options, camera.WithLookAt(*c.Position, *c.Target, common.WorldYAxis))
	}

	return append(options,
		camera.WithBehavior(c.CameraBehavior()),
		camera.WithPerspective(c.FovX, aspect, c.ZNear, c.ZFar),
		camera.WithRotationSpeed(c.RotationSpeed),
		camera.WithAcceleration(c.Acceleration),
		camera.WithVelocity(c.Velocity),
	)
}

// ControllerOptions converts the configuration into camera controller options.
//
// Returns:
//   - []camera.CameraControllerOption: options for camera.NewCameraController
func (c *CameraConfig) ControllerOptions() []camera.CameraControllerOption {
	options := []camera.CameraControllerOption{
		camera.WithFlightYawSpeed(c.FlightYawSpeed),
		camera.WithGroundHeight(*c.GroundHeight),
	}
	if !c.Unbounded {
		options = append(options, camera.WithBounds(*c.Bounds))
	}
	return options
}

// applyDefaults fills every unset field.
func (c *CameraConfig) applyDefaults() {
	c.Behavior = common.Coalesce(c.Behavior, DefaultBehavior)
	c.FovX = common.Coalesce(c.FovX, DefaultFovX)
	c.ZNear = common.Coalesce(c.ZNear, DefaultZNear)
	c.ZFar = common.Coalesce(c.ZFar, DefaultZFar)
	c.RotationSpeed = common.Coalesce(c.RotationSpeed, DefaultRotationSpeed)
	c.Acceleration = common.Coalesce(c.Acceleration, DefaultAcceleration)
	c.Velocity = common.Coalesce(c.Velocity, DefaultVelocity)
	c.FlightYawSpeed = common.Coalesce(c.FlightYawSpeed, DefaultFlightYawSpeed)

	if c.Position == nil {
		pos := DefaultPosition
		c.Position = &pos
	}
	if c.GroundHeight == nil {
		y := c.Position.Y()
		c.GroundHeight = &y
	}
	if c.Bounds == nil {
		bounds := DefaultBounds
		c.Bounds = &bounds
	}
}
