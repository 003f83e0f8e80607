package terminal

import (
	"io"
	"os"
)

// Backend abstracts the OS-facing terminal session: raw mode, size queries,
// resize notification, and the byte sink the renderer writes frames to
type Backend interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions in cells
	Size() (width, height int)

	// Write sends raw bytes to the terminal
	Write(p []byte) (int, error)

	// SetResizeHandler registers a callback for dimension changes
	SetResizeHandler(handler func(width, height int))
}

// EmergencyReset attempts to restore terminal to sane state.
// Call this from panic recovery if Fini cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
