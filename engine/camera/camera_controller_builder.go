package camera

import "github.com/Carmen-Shannon/oxy-camera/common"

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithBounds enables clamping of the camera position into a world-space box.
//
// Parameters:
//   - bounds: the clamp box
//
// Returns:
//   - CameraControllerOption: functional option to set the bounds
func WithBounds(bounds common.Bounds) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.bounds = bounds
		cc.hasBounds = true
	}
}

// WithFlightYawSpeed sets the flight mode heading rate.
//
// Parameters:
//   - degreesPerSecond: heading change per second at full strafe intent
//
// Returns:
//   - CameraControllerOption: functional option to set the flight yaw speed
func WithFlightYawSpeed(degreesPerSecond float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.flightYawSpeed = degreesPerSecond
	}
}

// WithGroundHeight sets the height the camera returns to when entering first person.
//
// Parameters:
//   - y: world-space height
//
// Returns:
//   - CameraControllerOption: functional option to set the ground height
func WithGroundHeight(y float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.groundHeight = y
	}
}
