package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-camera/engine/camera"
	"github.com/Carmen-Shannon/oxy-camera/engine/profiler"
	"github.com/Carmen-Shannon/oxy-camera/engine/window"
)

// DefaultHUDInterval is how often the window title is refreshed with the camera state.
const DefaultHUDInterval = time.Second

// engine implements the Engine interface.
// Everything runs on the window thread: input callbacks, the camera update and the tick callback.
type engine struct {
	window     window.Window
	camera     camera.Camera
	controller camera.CameraController

	frameTimer       *profiler.FrameTimer
	profiler         *profiler.Profiler
	profilingEnabled bool

	title       string
	hudInterval time.Duration // 0 disables the title HUD
	lastHUD     time.Time

	tickCallback func(deltaTime float32)

	frameLimit    time.Duration // minimum frame duration; 0 = uncapped
	quitRequested bool
}

// Engine is the main entry point for the engine.
// It owns the window message loop and drives the camera controller once per iteration.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Camera returns the camera driven by the engine.
	//
	// Returns:
	//   - camera.Camera: the camera instance
	Camera() camera.Camera

	// Controller returns the controller translating input into camera motion.
	//
	// Returns:
	//   - camera.CameraController: the controller instance
	Controller() camera.CameraController

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickCallback registers the function called each frame after the camera has been updated.
	//
	// Parameters:
	//   - callback: function receiving the smoothed delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// Step runs a single frame: smoothed delta time, controller tick, tick callback, profiler and HUD.
	// Run calls it once per message loop iteration.
	//
	// Parameters:
	//   - now: the frame timestamp
	Step(now time.Time)

	// HUDText formats the camera state shown in the window title.
	//
	// Returns:
	//   - string: the title text
	HUDText() string

	// Run starts the main loop (blocks until the window closes) and closes the window afterwards.
	Run()

	// Quit asks the main loop to stop after the current frame.
	// Safe to call multiple times.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// A window, camera and controller are created with defaults for any the options leave unset,
// and the window's input and resize events are routed to the controller and camera.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		frameTimer:  profiler.NewFrameTimer(),
		profiler:    profiler.NewProfiler(profiler.WithQuiet()),
		title:       "Vector Camera",
		hudInterval: DefaultHUDInterval,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		e.window = window.NewWindow(window.WithTitle(e.title))
	}
	// The controller's camera wins so input, resize and the HUD all act on the same camera.
	switch {
	case e.controller != nil:
		e.camera = e.controller.Camera()
	case e.camera != nil:
		e.controller = camera.NewCameraController(e.camera)
	default:
		e.camera = camera.NewCamera()
		e.controller = camera.NewCameraController(e.camera)
	}
	e.profiler.SetQuiet(!e.profilingEnabled)

	e.camera.SetAspect(e.window.AspectRatio())
	e.window.SetResizeCallback(func(width, height int) {
		if width <= 0 || height <= 0 {
			return
		}
		e.camera.SetAspect(float32(width) / float32(height))
	})
	e.window.SetKeyDownCallback(e.controller.KeyDown)
	e.window.SetKeyUpCallback(e.controller.KeyUp)
	e.window.SetMouseMoveCallback(e.controller.CursorMove)

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Controller() camera.CameraController {
	return e.controller
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
	e.profiler.SetQuiet(false)
}

// DisableProfiler disables performance profiling output.
// Frame rate is still measured for the HUD.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
	e.profiler.SetQuiet(true)
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) Step(now time.Time) {
	dt := e.frameTimer.Elapsed(now)

	e.controller.Tick(dt)

	if e.tickCallback != nil {
		e.tickCallback(dt)
	}

	e.profiler.TickAt(now)

	if e.hudInterval > 0 && now.Sub(e.lastHUD) >= e.hudInterval {
		e.window.SetTitle(e.HUDText())
		e.lastHUD = now
	}

	if e.quitRequested {
		e.window.RequestClose()
	}
}

func (e *engine) HUDText() string {
	pos := e.camera.Position()
	vel := e.camera.CurrentVelocity()
	return fmt.Sprintf("%s | %s | pos (%.2f, %.2f, %.2f) | vel (%.2f, %.2f, %.2f) | rot %.2f | %.0f fps",
		e.title, e.camera.Behavior(),
		pos.X(), pos.Y(), pos.Z(),
		vel.X(), vel.Y(), vel.Z(),
		e.camera.RotationSpeed(), e.profiler.FPS())
}

func (e *engine) Run() {
	e.window.SetUpdateCallback(func() {
		start := time.Now()
		e.Step(start)

		if e.frameLimit > 0 {
			if remaining := e.frameLimit - time.Since(start); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	})

	log.Printf("[Engine] Running (%dx%d, %s)", e.window.Width(), e.window.Height(), e.camera.Behavior())
	e.window.ProcessMessages()

	if err := e.window.Close(); err != nil {
		log.Printf("[Engine] Warning: failed to close window: %v", err)
	}
	log.Printf("[Engine] Stopped")
}

func (e *engine) Quit() {
	e.quitRequested = true
}
