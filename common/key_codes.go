package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87 // W key (ASCII)
	KeyA     = 65 // A key (ASCII)
	KeyS     = 83 // S key (ASCII)
	KeyD     = 68 // D key (ASCII)
	KeyQ     = 81 // Q key (ASCII)
	KeyE     = 69 // E key (ASCII)
	KeyH     = 72 // H key (ASCII)
	KeyM     = 77 // M key (ASCII)
	KeySpace = 32 // Spacebar (ASCII)
	KeyMinus = 45 // Minus key (ASCII)
	KeyEqual = 61 // Equal / plus key (ASCII)
	KeyEsc   = 256
)

// Navigation keys (GLFW)
const (
	KeyRight    = 262
	KeyLeft     = 263
	KeyDown     = 264
	KeyUp       = 265
	KeyPageUp   = 266
	KeyPageDown = 267

	KeyNumpadSubtract = 333
	KeyNumpadAdd      = 334
)
