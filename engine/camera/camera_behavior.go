package camera

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-camera/common"
)

// Behavior selects how a Camera interprets rotation and translation requests.
type Behavior int

const (
	// BehaviorFirstPerson allows heading and pitch only (5DoF). Pitch is clamped to [-90, 90] degrees
	// and forward movement stays parallel to the world X-Z plane.
	BehaviorFirstPerson Behavior = iota
	// BehaviorFlight allows heading, pitch and roll about the camera's own axes (6DoF).
	BehaviorFlight
)

// maxPitchDegrees is the first person pitch limit in either direction.
const maxPitchDegrees float32 = 90.0

func (b Behavior) String() string {
	switch b {
	case BehaviorFirstPerson:
		return "first_person"
	case BehaviorFlight:
		return "flight"
	default:
		return fmt.Sprintf("Behavior(%d)", int(b))
	}
}

// ParseBehavior converts a behavior name ("first_person" or "flight") to a Behavior.
//
// Parameters:
//   - name: the behavior name
//
// Returns:
//   - Behavior: the parsed behavior
//   - error: error if the name is unknown
func ParseBehavior(name string) (Behavior, error) {
	switch name {
	case "first_person":
		return BehaviorFirstPerson, nil
	case "flight":
		return BehaviorFlight, nil
	}
	return 0, fmt.Errorf("unknown camera behavior %q", name)
}

// MarshalText implements encoding.TextMarshaler so behaviors serialize by name.
func (b Behavior) MarshalText() ([]byte, error) {
	switch b {
	case BehaviorFirstPerson, BehaviorFlight:
		return []byte(b.String()), nil
	}
	return nil, fmt.Errorf("cannot marshal unknown camera behavior %d", int(b))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Behavior) UnmarshalText(text []byte) error {
	parsed, err := ParseBehavior(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// rotateFirstPerson applies heading about the world Y axis, then pitch about the camera's local X axis.
// The pitch actually applied is reduced so the accumulated pitch lands exactly on the ±90 degree limit.
func rotateFirstPerson(c *cameraImpl, headingDegrees, pitchDegrees float32) {
	c.accumPitchDegrees += pitchDegrees

	if c.accumPitchDegrees > maxPitchDegrees {
		pitchDegrees = maxPitchDegrees - (c.accumPitchDegrees - pitchDegrees)
		c.accumPitchDegrees = maxPitchDegrees
	}

	if c.accumPitchDegrees < -maxPitchDegrees {
		pitchDegrees = -maxPitchDegrees - (c.accumPitchDegrees - pitchDegrees)
		c.accumPitchDegrees = -maxPitchDegrees
	}

	if headingDegrees != 0 {
		c.xAxis = common.RotateAboutAxis(c.xAxis, common.WorldYAxis, headingDegrees)
		c.zAxis = common.RotateAboutAxis(c.zAxis, common.WorldYAxis, headingDegrees)
	}

	if pitchDegrees != 0 {
		c.yAxis = common.RotateAboutAxis(c.yAxis, c.xAxis, pitchDegrees)
		c.zAxis = common.RotateAboutAxis(c.zAxis, c.xAxis, pitchDegrees)
	}
}

// rotateFlight applies heading, pitch and roll in that order, each about the camera's current local axis
// as left by the previous step.
func rotateFlight(c *cameraImpl, headingDegrees, pitchDegrees, rollDegrees float32) {
	if headingDegrees != 0 {
		c.xAxis = common.RotateAboutAxis(c.xAxis, c.yAxis, headingDegrees)
		c.zAxis = common.RotateAboutAxis(c.zAxis, c.yAxis, headingDegrees)
	}

	if pitchDegrees != 0 {
		c.yAxis = common.RotateAboutAxis(c.yAxis, c.xAxis, pitchDegrees)
		c.zAxis = common.RotateAboutAxis(c.zAxis, c.xAxis, pitchDegrees)
	}

	if rollDegrees != 0 {
		c.xAxis = common.RotateAboutAxis(c.xAxis, c.zAxis, rollDegrees)
		c.yAxis = common.RotateAboutAxis(c.yAxis, c.zAxis, rollDegrees)
	}
}
