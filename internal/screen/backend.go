package screen

import (
	"errors"
	"image"
)

// ErrUnsupported is returned by the stub backend on platforms without a
// native capture implementation.
var ErrUnsupported = errors.New("screen capture is only supported on windows")

// Backend abstracts the window-system operations the capture engine needs.
// Every primitive is a typed call with an explicit error return; nothing in
// the core parses subprocess output.
type Backend interface {
	// ListWindows returns every currently visible, titled top-level window in
	// OS enumeration order. Index is not assigned here; the enumerator that
	// applies filtering owns the 1-based numbering.
	ListWindows() ([]Window, error)

	// Monitors returns all attached displays in OS-reported order. Ordinals
	// are assigned by the monitor enumerator after sorting.
	Monitors() ([]Monitor, error)

	// WindowRect returns the window's current screen rectangle.
	WindowRect(h Handle) (Rect, error)

	// IsMinimized reports whether the window is currently iconic.
	IsMinimized(h Handle) (bool, error)

	// Restore issues a non-minimizing show request for the window.
	Restore(h Handle) error

	// Minimize re-minimizes the window.
	Minimize(h Handle) error

	// ForegroundWindow returns the currently focused window, 0 when none.
	ForegroundWindow() (Handle, error)

	// SetForeground brings the window to the top of the stacking order.
	SetForeground(h Handle) error

	// CaptureWindow composites the window's content into an off-screen
	// buffer irrespective of occlusion. An error means the compositing
	// facility reported failure; no content-validity check is performed.
	CaptureWindow(h Handle) (*image.RGBA, error)

	// CaptureRegion copies the given virtual-screen rectangle directly from
	// the screen.
	CaptureRegion(r Rect) (*image.RGBA, error)
}
