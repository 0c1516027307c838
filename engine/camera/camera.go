package camera

import (
	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Default camera settings applied by NewCamera before any options.
const (
	DefaultRotationSpeed float32 = 0.3
	DefaultFovX          float32 = 90.0
	DefaultZNear         float32 = 0.1
	DefaultZFar          float32 = 1000.0
)

type cameraImpl struct {
	behavior Behavior

	accumPitchDegrees float32
	rotationSpeed     float32

	fovX        float32
	aspectRatio float32
	zNear       float32
	zFar        float32

	eye     mgl32.Vec3
	xAxis   mgl32.Vec3
	yAxis   mgl32.Vec3
	zAxis   mgl32.Vec3
	viewDir mgl32.Vec3

	acceleration    mgl32.Vec3
	currentVelocity mgl32.Vec3
	velocity        mgl32.Vec3

	viewMatrix mgl32.Mat4
	projMatrix mgl32.Mat4
}

// Camera defines the interface for a 6DoF vector camera.
//
// The camera keeps an orthonormal local basis (right, up, forward into the screen) and a position,
// and derives a view matrix from them after every change. Two behaviors are supported:
// BehaviorFirstPerson (heading and clamped pitch only, movement parallel to the ground plane) and
// BehaviorFlight (heading, pitch and roll about the camera's own axes).
//
// The camera can be moved by fixed steps with Move, or by Newtonian integration of its velocity and
// acceleration with UpdatePosition.
//
// All matrices use the row-vector convention (v' = v * M) with a left-handed, [0, 1] depth projection.
// A Camera is not safe for concurrent use; drive it from a single goroutine.
type Camera interface {
	// LookAt orients the camera at eye so that it faces target, using up as the world up hint.
	// The pitch accumulator is recovered from the resulting orientation.
	// up must not be parallel to target-eye and target must differ from eye.
	//
	// Parameters:
	//   - eye: new camera position
	//   - target: world-space point to face
	//   - up: up hint (typically 0,1,0)
	LookAt(eye, target, up mgl32.Vec3)

	// LookAtTarget turns the camera to face target from its current position, using the current
	// local Y axis as the up hint.
	//
	// Parameters:
	//   - target: world-space point to face
	LookAtTarget(target mgl32.Vec3)

	// Move moves the camera by dx world units along its local X axis, dy world units along the
	// world Y axis and dz world units forwards. In first person the forward direction is kept
	// parallel to the ground plane so speed does not drop as the view approaches straight up or down.
	//
	// Parameters:
	//   - dx, dy, dz: step distances in world units
	Move(dx, dy, dz float32)

	// MoveWorld displaces the camera in world space by direction scaled component-wise by amount.
	//
	// Parameters:
	//   - direction: world-space direction
	//   - amount: per-axis scale applied to direction
	MoveWorld(direction, amount mgl32.Vec3)

	// Perspective rebuilds the projection matrix from a horizontal field of view and stores the
	// parameters for later recomputation.
	//
	// Parameters:
	//   - fovX: horizontal field of view in degrees
	//   - aspect: viewport width / height
	//   - zNear: near clipping plane distance
	//   - zFar: far clipping plane distance
	Perspective(fovX, aspect, zNear, zFar float32)

	// SetAspect rebuilds the projection matrix for a new aspect ratio, keeping FOV and clip planes.
	//
	// Parameters:
	//   - aspect: viewport width / height
	SetAspect(aspect float32)

	// Rotate rotates the camera according to its behavior. Roll is ignored in first person.
	// Angles follow the left-hand rule, so positive roll is clockwise when looking down the view direction.
	//
	// Parameters:
	//   - headingDegrees: yaw delta
	//   - pitchDegrees: pitch delta
	//   - rollDegrees: roll delta
	Rotate(headingDegrees, pitchDegrees, rollDegrees float32)

	// RotateSmoothly scales the angles by the rotation speed before calling Rotate.
	// Intended for continuous input devices such as a mouse.
	//
	// Parameters:
	//   - headingDegrees: yaw delta
	//   - pitchDegrees: pitch delta
	//   - rollDegrees: roll delta
	RotateSmoothly(headingDegrees, pitchDegrees, rollDegrees float32)

	// UpdatePosition moves the camera using its current velocity and acceleration (unit mass) and
	// then updates the velocity toward the movement intent. Components of direction are in [-1, 1]
	// along local X, world Y and forward.
	//
	// Parameters:
	//   - direction: movement intent per axis
	//   - elapsedTimeSec: seconds since the last update (must be >= 0)
	UpdatePosition(direction mgl32.Vec3, elapsedTimeSec float32)

	// Behavior returns the current camera behavior.
	Behavior() Behavior

	// SetBehavior switches the camera behavior. Switching from flight to first person levels the
	// camera, discarding roll while keeping heading and pitch.
	//
	// Parameters:
	//   - behavior: the new behavior
	SetBehavior(behavior Behavior)

	// Position returns the camera's world-space position.
	Position() mgl32.Vec3

	// SetPosition moves the camera to eye without changing its orientation.
	//
	// Parameters:
	//   - eye: new world-space position
	SetPosition(eye mgl32.Vec3)

	// Acceleration returns the acceleration used by UpdatePosition (world units / s²).
	Acceleration() mgl32.Vec3

	// SetAcceleration sets the acceleration used by UpdatePosition.
	//
	// Parameters:
	//   - acceleration: per-axis acceleration in world units / s²
	SetAcceleration(acceleration mgl32.Vec3)

	// Velocity returns the per-axis maximum velocity (world units / s).
	Velocity() mgl32.Vec3

	// SetVelocity sets the per-axis maximum velocity.
	//
	// Parameters:
	//   - velocity: per-axis speed cap in world units / s
	SetVelocity(velocity mgl32.Vec3)

	// CurrentVelocity returns the velocity integrated by UpdatePosition.
	CurrentVelocity() mgl32.Vec3

	// SetCurrentVelocity overrides the integrated velocity.
	//
	// Parameters:
	//   - currentVelocity: per-axis velocity in world units / s
	SetCurrentVelocity(currentVelocity mgl32.Vec3)

	// RotationSpeed returns the multiplier used by RotateSmoothly.
	RotationSpeed() float32

	// SetRotationSpeed sets the multiplier used by RotateSmoothly.
	//
	// Parameters:
	//   - rotationSpeed: angle multiplier, typically in (0, 1]
	SetRotationSpeed(rotationSpeed float32)

	// AccumulatedPitch returns the first person pitch accumulator in degrees, within [-90, 90].
	AccumulatedPitch() float32

	// XAxis returns the camera's local right axis.
	XAxis() mgl32.Vec3

	// YAxis returns the camera's local up axis.
	YAxis() mgl32.Vec3

	// ZAxis returns the camera's local forward axis.
	ZAxis() mgl32.Vec3

	// ViewDirection returns the direction the camera is facing.
	ViewDirection() mgl32.Vec3

	// FovX returns the horizontal field of view in degrees.
	FovX() float32

	// Aspect returns the aspect ratio used by the last Perspective call.
	Aspect() float32

	// Near returns the near clipping plane distance.
	Near() float32

	// Far returns the far clipping plane distance.
	Far() float32

	// ViewMatrix returns the current view matrix.
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current projection matrix.
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns View * Projection.
	ViewProjectionMatrix() mgl32.Mat4

	// Frustum returns the world-space view frustum of the current view and projection.
	Frustum() common.Frustum
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera in flight mode at the origin, looking down +Z with the world Y axis up.
// The projection matrix stays identity until Perspective (or WithPerspective) is called.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		behavior:      BehaviorFlight,
		rotationSpeed: DefaultRotationSpeed,
		fovX:          DefaultFovX,
		zNear:         DefaultZNear,
		zFar:          DefaultZFar,
		xAxis:         common.WorldXAxis,
		yAxis:         common.WorldYAxis,
		zAxis:         common.WorldZAxis,
		viewDir:       common.WorldZAxis,
		viewMatrix:    mgl32.Ident4(),
		projMatrix:    mgl32.Ident4(),
	}
	for _, option := range options {
		option(c)
	}
	c.updateViewMatrix(false)
	return c
}

func (c *cameraImpl) LookAt(eye, target, up mgl32.Vec3) {
	c.eye = eye

	c.zAxis = target.Sub(eye).Normalize()
	c.viewDir = c.zAxis

	c.xAxis = up.Cross(c.zAxis).Normalize()
	c.yAxis = c.zAxis.Cross(c.xAxis).Normalize()
	c.xAxis = c.xAxis.Normalize()

	c.viewMatrix = common.ViewMatrix(c.xAxis, c.yAxis, c.zAxis, c.eye)

	// Element (1, 2) is the forward axis' Y component.
	c.accumPitchDegrees = mgl32.RadToDeg(-common.SafeAsin(c.viewMatrix.At(1, 2)))
}

func (c *cameraImpl) LookAtTarget(target mgl32.Vec3) {
	c.LookAt(c.eye, target, c.yAxis)
}

func (c *cameraImpl) Perspective(fovX, aspect, zNear, zFar float32) {
	c.projMatrix = common.PerspectiveFovX(fovX, aspect, zNear, zFar)

	c.fovX = fovX
	c.aspectRatio = aspect
	c.zNear = zNear
	c.zFar = zFar
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.Perspective(c.fovX, aspect, c.zNear, c.zFar)
}

func (c *cameraImpl) Rotate(headingDegrees, pitchDegrees, rollDegrees float32) {
	// Z points into the screen, so a clockwise roll is a negative angle about it.
	rollDegrees = -rollDegrees

	switch c.behavior {
	case BehaviorFirstPerson:
		rotateFirstPerson(c, headingDegrees, pitchDegrees)
	case BehaviorFlight:
		rotateFlight(c, headingDegrees, pitchDegrees, rollDegrees)
	}

	c.updateViewMatrix(true)
}

func (c *cameraImpl) RotateSmoothly(headingDegrees, pitchDegrees, rollDegrees float32) {
	c.Rotate(
		headingDegrees*c.rotationSpeed,
		pitchDegrees*c.rotationSpeed,
		rollDegrees*c.rotationSpeed,
	)
}

func (c *cameraImpl) Behavior() Behavior {
	return c.behavior
}

func (c *cameraImpl) SetBehavior(behavior Behavior) {
	if c.behavior == BehaviorFlight && behavior == BehaviorFirstPerson {
		c.LookAt(c.eye, c.eye.Add(c.zAxis), common.WorldYAxis)
	}
	c.behavior = behavior
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	return c.eye
}

func (c *cameraImpl) SetPosition(eye mgl32.Vec3) {
	c.eye = eye
	c.updateViewMatrix(false)
}

func (c *cameraImpl) Acceleration() mgl32.Vec3 {
	return c.acceleration
}

func (c *cameraImpl) SetAcceleration(acceleration mgl32.Vec3) {
	c.acceleration = acceleration
}

func (c *cameraImpl) Velocity() mgl32.Vec3 {
	return c.velocity
}

func (c *cameraImpl) SetVelocity(velocity mgl32.Vec3) {
	c.velocity = velocity
}

func (c *cameraImpl) CurrentVelocity() mgl32.Vec3 {
	return c.currentVelocity
}

func (c *cameraImpl) SetCurrentVelocity(currentVelocity mgl32.Vec3) {
	c.currentVelocity = currentVelocity
}

func (c *cameraImpl) RotationSpeed() float32 {
	return c.rotationSpeed
}

func (c *cameraImpl) SetRotationSpeed(rotationSpeed float32) {
	c.rotationSpeed = rotationSpeed
}

func (c *cameraImpl) AccumulatedPitch() float32 {
	return c.accumPitchDegrees
}

func (c *cameraImpl) XAxis() mgl32.Vec3 {
	return c.xAxis
}

func (c *cameraImpl) YAxis() mgl32.Vec3 {
	return c.yAxis
}

func (c *cameraImpl) ZAxis() mgl32.Vec3 {
	return c.zAxis
}

func (c *cameraImpl) ViewDirection() mgl32.Vec3 {
	return c.viewDir
}

func (c *cameraImpl) FovX() float32 {
	return c.fovX
}

func (c *cameraImpl) Aspect() float32 {
	return c.aspectRatio
}

func (c *cameraImpl) Near() float32 {
	return c.zNear
}

func (c *cameraImpl) Far() float32 {
	return c.zFar
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	return c.projMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	return c.viewMatrix.Mul4(c.projMatrix)
}

func (c *cameraImpl) Frustum() common.Frustum {
	return common.ExtractFrustumFromMatrix(c.ViewProjectionMatrix())
}

// updateViewMatrix rebuilds the view matrix from the current basis and position.
// When orthogonalizeAxes is set the basis is first regenerated to remove drift accumulated by
// successive rotations; translation-only updates reuse the basis as-is.
func (c *cameraImpl) updateViewMatrix(orthogonalizeAxes bool) {
	if orthogonalizeAxes {
		c.xAxis, c.yAxis, c.zAxis = common.Orthonormalize(c.xAxis, c.zAxis)
		c.viewDir = c.zAxis
	}

	c.viewMatrix = common.ViewMatrix(c.xAxis, c.yAxis, c.zAxis, c.eye)
}
