package camera

import (
	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/go-gl/mathgl/mgl32"
)

// restVelocityEpsilon is the speed below which an axis with no movement intent is treated as stopped.
const restVelocityEpsilon float32 = 1e-6

func (c *cameraImpl) Move(dx, dy, dz float32) {
	var forwards mgl32.Vec3
	if c.behavior == BehaviorFirstPerson {
		// The local Z axis shrinks toward zero in the ground plane as pitch nears ±90 degrees.
		forwards = c.xAxis.Cross(common.WorldYAxis).Normalize()
	} else {
		forwards = c.viewDir
	}

	eye := c.eye.
		Add(c.xAxis.Mul(dx)).
		Add(common.WorldYAxis.Mul(dy)).
		Add(forwards.Mul(dz))

	c.SetPosition(eye)
}

func (c *cameraImpl) MoveWorld(direction, amount mgl32.Vec3) {
	c.eye[0] += direction[0] * amount[0]
	c.eye[1] += direction[1] * amount[1]
	c.eye[2] += direction[2] * amount[2]

	c.updateViewMatrix(false)
}

func (c *cameraImpl) UpdatePosition(direction mgl32.Vec3, elapsedTimeSec float32) {
	// A zero velocity never moves the camera, so rounding cannot make it creep while at rest.
	if c.currentVelocity.LenSqr() != 0 {
		displacement := c.currentVelocity.Mul(elapsedTimeSec).
			Add(c.acceleration.Mul(0.5 * elapsedTimeSec * elapsedTimeSec))

		for i := range 3 {
			if direction[i] == 0 && mgl32.Abs(c.currentVelocity[i]) < restVelocityEpsilon {
				displacement[i] = 0
			}
		}

		c.Move(displacement[0], displacement[1], displacement[2])
	}

	// Runs even without displacement so the camera keeps decelerating after input stops.
	c.updateVelocity(direction, elapsedTimeSec)
}

// updateVelocity integrates the current velocity toward the movement intent, one axis at a time.
func (c *cameraImpl) updateVelocity(direction mgl32.Vec3, elapsedTimeSec float32) {
	for i := range 3 {
		c.currentVelocity[i] = integrateAxisVelocity(
			c.currentVelocity[i],
			direction[i],
			c.acceleration[i],
			c.velocity[i],
			elapsedTimeSec,
		)
	}
}

// integrateAxisVelocity returns the velocity on one axis after elapsedTimeSec.
// With intent the velocity ramps linearly up to ±maxVelocity; without intent it ramps linearly back
// to exactly zero and never overshoots into the opposite sign.
func integrateAxisVelocity(current, intent, acceleration, maxVelocity, elapsedTimeSec float32) float32 {
	if intent != 0 {
		current += intent * acceleration * elapsedTimeSec

		if current > maxVelocity {
			current = maxVelocity
		} else if current < -maxVelocity {
			current = -maxVelocity
		}
		return current
	}

	if current > 0 {
		if current -= acceleration * elapsedTimeSec; current < 0 {
			current = 0
		}
	} else {
		if current += acceleration * elapsedTimeSec; current > 0 {
			current = 0
		}
	}
	return current
}
