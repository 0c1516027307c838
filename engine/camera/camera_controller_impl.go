package camera

import (
	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultFlightYawSpeed is the flight heading rate in degrees per second.
	DefaultFlightYawSpeed float32 = 100.0

	rotationSpeedStep float32 = 0.01
	minRotationSpeed  float32 = 0.01
	maxRotationSpeed  float32 = 1.0
)

// movementBinding maps a group of keys to a signed movement intent on one axis.
type movementBinding struct {
	axis int
	sign float32
	keys [2]uint32
}

// movementBindings lists the movement keys: WASD / arrows for the ground plane, E/Q and
// PageUp/PageDown for vertical motion.
var movementBindings = [...]movementBinding{
	{axis: 2, sign: 1, keys: [2]uint32{common.KeyW, common.KeyUp}},
	{axis: 2, sign: -1, keys: [2]uint32{common.KeyS, common.KeyDown}},
	{axis: 0, sign: 1, keys: [2]uint32{common.KeyD, common.KeyRight}},
	{axis: 0, sign: -1, keys: [2]uint32{common.KeyA, common.KeyLeft}},
	{axis: 1, sign: 1, keys: [2]uint32{common.KeyE, common.KeyPageUp}},
	{axis: 1, sign: -1, keys: [2]uint32{common.KeyQ, common.KeyPageDown}},
}

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	camera Camera

	keys map[uint32]bool
	// held tracks which movement bindings were active on the previous tick.
	held [len(movementBindings)]bool

	cursorX, cursorY float32
	hasCursor        bool
	mouseDX, mouseDY float32

	direction mgl32.Vec3

	bounds    common.Bounds
	hasBounds bool

	flightYawSpeed float32
	groundHeight   float32
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a controller that drives cam.
// The ground height defaults to the camera's Y position at construction time.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(cam Camera, options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		camera:         cam,
		keys:           make(map[uint32]bool),
		flightYawSpeed: DefaultFlightYawSpeed,
		groundHeight:   cam.Position().Y(),
	}

	for _, option := range options {
		option(cc)
	}

	return cc
}

func (cc *cameraControllerImpl) Camera() Camera {
	return cc.camera
}

func (cc *cameraControllerImpl) KeyDown(keyCode uint32) {
	wasDown := cc.keys[keyCode]
	cc.keys[keyCode] = true
	if wasDown {
		return
	}

	switch keyCode {
	case common.KeySpace:
		cc.ToggleBehavior()
	case common.KeyEqual, common.KeyNumpadAdd:
		cc.adjustRotationSpeed(rotationSpeedStep)
	case common.KeyMinus, common.KeyNumpadSubtract:
		cc.adjustRotationSpeed(-rotationSpeedStep)
	}
}

func (cc *cameraControllerImpl) KeyUp(keyCode uint32) {
	cc.keys[keyCode] = false
}

func (cc *cameraControllerImpl) CursorMove(x, y float32) {
	if cc.hasCursor {
		cc.mouseDX += x - cc.cursorX
		cc.mouseDY += y - cc.cursorY
	}
	cc.cursorX, cc.cursorY = x, y
	cc.hasCursor = true
}

func (cc *cameraControllerImpl) Tick(elapsedTimeSec float32) {
	direction := cc.movementDirection()
	rotationSpeed := cc.camera.RotationSpeed()

	switch cc.camera.Behavior() {
	case BehaviorFirstPerson:
		heading := cc.mouseDX * rotationSpeed
		pitch := cc.mouseDY * rotationSpeed
		cc.camera.Rotate(heading, pitch, 0)

	case BehaviorFlight:
		// Strafe keys yaw the aircraft instead of sliding it sideways.
		heading := direction[0] * cc.flightYawSpeed * elapsedTimeSec
		pitch := -cc.mouseDY * rotationSpeed
		roll := cc.mouseDX * rotationSpeed
		cc.camera.Rotate(heading, pitch, roll)
		direction[0] = 0
	}

	cc.camera.UpdatePosition(direction, elapsedTimeSec)

	if cc.hasBounds {
		cc.camera.SetPosition(cc.bounds.Clamp(cc.camera.Position()))
	}

	cc.direction = direction
	cc.mouseDX, cc.mouseDY = 0, 0
}

func (cc *cameraControllerImpl) MovementDirection() mgl32.Vec3 {
	return cc.direction
}

func (cc *cameraControllerImpl) ToggleBehavior() {
	if cc.camera.Behavior() == BehaviorFlight {
		cc.camera.SetBehavior(BehaviorFirstPerson)
		pos := cc.camera.Position()
		cc.camera.SetPosition(mgl32.Vec3{pos.X(), cc.groundHeight, pos.Z()})
		return
	}
	cc.camera.SetBehavior(BehaviorFlight)
}

func (cc *cameraControllerImpl) Bounds() (common.Bounds, bool) {
	return cc.bounds, cc.hasBounds
}

func (cc *cameraControllerImpl) SetBounds(bounds common.Bounds) {
	cc.bounds = bounds
	cc.hasBounds = true
}

func (cc *cameraControllerImpl) FlightYawSpeed() float32 {
	return cc.flightYawSpeed
}

func (cc *cameraControllerImpl) GroundHeight() float32 {
	return cc.groundHeight
}

// --- internal helpers ---

// movementDirection builds the movement intent from the held keys.
// The first tick a binding becomes active, the camera's velocity on that axis is zeroed so a
// reversal takes effect immediately instead of first decelerating through zero.
func (cc *cameraControllerImpl) movementDirection() mgl32.Vec3 {
	var direction mgl32.Vec3

	for i, binding := range movementBindings {
		if !cc.keys[binding.keys[0]] && !cc.keys[binding.keys[1]] {
			cc.held[i] = false
			continue
		}

		if !cc.held[i] {
			cc.held[i] = true
			velocity := cc.camera.CurrentVelocity()
			velocity[binding.axis] = 0
			cc.camera.SetCurrentVelocity(velocity)
		}

		direction[binding.axis] += binding.sign
	}

	return direction
}

// adjustRotationSpeed nudges the camera's rotation speed, keeping it within [0.01, 1].
func (cc *cameraControllerImpl) adjustRotationSpeed(delta float32) {
	speed := common.Clamp(cc.camera.RotationSpeed()+delta, minRotationSpeed, maxRotationSpeed)
	cc.camera.SetRotationSpeed(speed)
}
