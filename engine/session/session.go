package session

import (
	"errors"
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-camera/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Storage location of the camera snapshot inside the gdata app directory.
const (
	sessionObject  = "session"
	cameraProperty = "camera"
)

// DefaultAppName names the per-user data directory used by the demo.
const DefaultAppName = "oxy_camera"

// ErrNoSnapshot is returned by RestoreCamera when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no saved camera snapshot")

// Snapshot is the persisted camera pose.
type Snapshot struct {
	Behavior      camera.Behavior `yaml:"behavior"`
	Position      mgl32.Vec3      `yaml:"position"`
	Forward       mgl32.Vec3      `yaml:"forward"`
	Up            mgl32.Vec3      `yaml:"up"`
	RotationSpeed float32         `yaml:"rotationSpeed"`
}

// CaptureSnapshot records the pose of cam.
//
// Parameters:
//   - cam: the camera to capture
//
// Returns:
//   - Snapshot: the captured pose
func CaptureSnapshot(cam camera.Camera) Snapshot {
	return Snapshot{
		Behavior:      cam.Behavior(),
		Position:      cam.Position(),
		Forward:       cam.ViewDirection(),
		Up:            cam.YAxis(),
		RotationSpeed: cam.RotationSpeed(),
	}
}

// Apply restores the snapshot onto cam.
// The orientation is rebuilt with LookAt in flight mode so roll survives, then the saved behavior is applied.
//
// Parameters:
//   - cam: the camera to update
func (s Snapshot) Apply(cam camera.Camera) {
	cam.SetBehavior(camera.BehaviorFlight)
	cam.LookAt(s.Position, s.Position.Add(s.Forward), s.Up)
	cam.SetBehavior(s.Behavior)
	cam.SetRotationSpeed(s.RotationSpeed)
	cam.SetCurrentVelocity(mgl32.Vec3{})
}

// Store persists camera snapshots between runs.
// A Store created without a gdata manager keeps the last snapshot in memory only.
type Store struct {
	gdataManager *gdata.Manager // may be nil (in-memory mode)
	last         *Snapshot
}

// Open creates a Store backed by the per-user data directory of appName.
// When gdata cannot be opened the Store falls back to in-memory mode and the error is logged.
//
// Parameters:
//   - appName: application name used for the data directory
//
// Returns:
//   - *Store: the store
func Open(appName string) *Store {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Session] Warning: persistent storage unavailable: %v (snapshots kept in memory)", err)
		return NewStore(nil)
	}
	return NewStore(manager)
}

// NewStore creates a Store on top of an existing gdata manager.
//
// Parameters:
//   - gdataManager: storage manager, nil for in-memory mode
//
// Returns:
//   - *Store: the store
func NewStore(gdataManager *gdata.Manager) *Store {
	return &Store{gdataManager: gdataManager}
}

// Persistent reports whether snapshots survive the process.
func (s *Store) Persistent() bool {
	return s.gdataManager != nil
}

// SaveCamera stores the current pose of cam.
//
// Parameters:
//   - cam: the camera to save
//
// Returns:
//   - error: error if the snapshot cannot be encoded or written
func (s *Store) SaveCamera(cam camera.Camera) error {
	snapshot := CaptureSnapshot(cam)
	s.last = &snapshot

	if s.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal camera snapshot: %w", err)
	}

	if err := s.gdataManager.SaveObjectProp(sessionObject, cameraProperty, data); err != nil {
		return fmt.Errorf("failed to save camera snapshot: %w", err)
	}

	log.Printf("[Session] Camera saved at %v (%s)", snapshot.Position, snapshot.Behavior)
	return nil
}

// LoadSnapshot returns the most recently saved snapshot.
//
// Returns:
//   - Snapshot: the saved pose
//   - error: ErrNoSnapshot if nothing was saved, or a read/decode error
func (s *Store) LoadSnapshot() (Snapshot, error) {
	if s.gdataManager == nil {
		if s.last == nil {
			return Snapshot{}, ErrNoSnapshot
		}
		return *s.last, nil
	}

	if !s.gdataManager.ObjectPropExists(sessionObject, cameraProperty) {
		return Snapshot{}, ErrNoSnapshot
	}

	data, err := s.gdataManager.LoadObjectProp(sessionObject, cameraProperty)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load camera snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("failed to unmarshal camera snapshot: %w", err)
	}
	return snapshot, nil
}

// RestoreCamera applies the most recently saved snapshot to cam.
//
// Parameters:
//   - cam: the camera to update
//
// Returns:
//   - error: ErrNoSnapshot if nothing was saved, or a read/decode error
func (s *Store) RestoreCamera(cam camera.Camera) error {
	snapshot, err := s.LoadSnapshot()
	if err != nil {
		return err
	}

	snapshot.Apply(cam)
	log.Printf("[Session] Camera restored at %v (%s)", snapshot.Position, snapshot.Behavior)
	return nil
}
