package camera

import (
	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraController defines the per-frame driver for a Camera.
// Controllers collect raw input (key codes and cursor positions) between ticks and translate it
// into movement intent and rotation requests once per Tick. The controller also keeps the camera
// inside its configured bounds, which the camera itself never checks.
type CameraController interface {
	// Camera returns the driven camera.
	//
	// Returns:
	//   - Camera: the camera this controller updates
	Camera() Camera

	// KeyDown records a key press. The first press of the behavior toggle or rotation speed keys
	// triggers their action; repeats are ignored.
	//
	// Parameters:
	//   - keyCode: the virtual key code (see common.Key*)
	KeyDown(keyCode uint32)

	// KeyUp records a key release.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	KeyUp(keyCode uint32)

	// CursorMove records a new cursor position. Deltas are accumulated until the next Tick.
	// The first position received only establishes the reference point.
	//
	// Parameters:
	//   - x, y: cursor position in window coordinates
	CursorMove(x, y float32)

	// Tick applies the input collected since the previous tick: rotates the camera according to its
	// behavior, integrates movement, and clamps the position into the bounds.
	//
	// Parameters:
	//   - elapsedTimeSec: seconds since the previous tick
	Tick(elapsedTimeSec float32)

	// MovementDirection returns the movement intent used by the most recent Tick.
	//
	// Returns:
	//   - mgl32.Vec3: per-axis intent in [-1, 1]
	MovementDirection() mgl32.Vec3

	// ToggleBehavior switches between flight and first person. Entering first person drops the
	// camera back to the ground height.
	ToggleBehavior()

	// Bounds returns the box the camera position is clamped into.
	//
	// Returns:
	//   - common.Bounds: the clamp box
	//   - bool: false if no bounds are configured
	Bounds() (common.Bounds, bool)

	// SetBounds sets the box the camera position is clamped into after each Tick.
	//
	// Parameters:
	//   - bounds: the clamp box
	SetBounds(bounds common.Bounds)

	// FlightYawSpeed returns the flight mode heading rate in degrees per second for full strafe intent.
	//
	// Returns:
	//   - float32: degrees per second
	FlightYawSpeed() float32

	// GroundHeight returns the Y position restored when entering first person.
	//
	// Returns:
	//   - float32: world-space height
	GroundHeight() float32
}
