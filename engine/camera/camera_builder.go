package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CameraBuilderOption is a functional option applied by NewCamera in the order given.
type CameraBuilderOption func(*cameraImpl)

// WithBehavior sets the camera's initial behavior.
// Switching to first person levels the camera the same way SetBehavior does.
//
// Parameters:
//   - behavior: the initial behavior
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's behavior
func WithBehavior(behavior Behavior) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetBehavior(behavior)
	}
}

// WithPosition sets the camera's initial world-space position.
//
// Parameters:
//   - eye: world-space position
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's position
func WithPosition(eye mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetPosition(eye)
	}
}

// WithLookAt orients the camera as LookAt does.
//
// Parameters:
//   - eye: camera position
//   - target: point to face
//   - up: up hint
//
// Returns:
//   - CameraBuilderOption: a function that orients the camera
func WithLookAt(eye, target, up mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.LookAt(eye, target, up)
	}
}

// WithAcceleration sets the acceleration used by UpdatePosition.
//
// Parameters:
//   - acceleration: per-axis acceleration in world units / s²
//
// Returns:
//   - CameraBuilderOption: a function that sets the acceleration
func WithAcceleration(acceleration mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.acceleration = acceleration
	}
}

// WithVelocity sets the per-axis maximum velocity used by UpdatePosition.
//
// Parameters:
//   - velocity: per-axis speed cap in world units / s
//
// Returns:
//   - CameraBuilderOption: a function that sets the maximum velocity
func WithVelocity(velocity mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.velocity = velocity
	}
}

// WithRotationSpeed sets the multiplier used by RotateSmoothly.
//
// Parameters:
//   - rotationSpeed: angle multiplier
//
// Returns:
//   - CameraBuilderOption: a function that sets the rotation speed
func WithRotationSpeed(rotationSpeed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.rotationSpeed = rotationSpeed
	}
}

// WithPerspective builds the projection matrix from a horizontal field of view.
//
// Parameters:
//   - fovX: horizontal field of view in degrees
//   - aspect: viewport width / height
//   - zNear: near plane distance
//   - zFar: far plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the projection
func WithPerspective(fovX, aspect, zNear, zFar float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.Perspective(fovX, aspect, zNear, zFar)
	}
}
