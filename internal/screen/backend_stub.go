//go:build !windows

package screen

import "image"

// stubBackend keeps the rest of the module buildable and testable on
// non-Windows hosts; every operation reports ErrUnsupported.
type stubBackend struct{}

var _ Backend = stubBackend{}

// New returns the stub backend on platforms without native capture support.
func New() Backend {
	return stubBackend{}
}

func (stubBackend) ListWindows() ([]Window, error)            { return nil, ErrUnsupported }
func (stubBackend) Monitors() ([]Monitor, error)              { return nil, ErrUnsupported }
func (stubBackend) WindowRect(Handle) (Rect, error)           { return Rect{}, ErrUnsupported }
func (stubBackend) IsMinimized(Handle) (bool, error)          { return false, ErrUnsupported }
func (stubBackend) Restore(Handle) error                      { return ErrUnsupported }
func (stubBackend) Minimize(Handle) error                     { return ErrUnsupported }
func (stubBackend) ForegroundWindow() (Handle, error)         { return 0, ErrUnsupported }
func (stubBackend) SetForeground(Handle) error                { return ErrUnsupported }
func (stubBackend) CaptureWindow(Handle) (*image.RGBA, error) { return nil, ErrUnsupported }
func (stubBackend) CaptureRegion(Rect) (*image.RGBA, error)   { return nil, ErrUnsupported }
