package capture

import "github.com/shotbridge/shotbridge/internal/screen"

// Region copies a monitor or virtual-screen rectangle directly from the
// screen. No focus manipulation and no fallback: full-screen capture has no
// occlusion or minimization ambiguity.
func (e *Engine) Region(r screen.Rect) (*Result, error) {
	img, err := e.backend.CaptureRegion(r)
	if err != nil {
		return nil, screen.Capturef("region capture of %dx%d at (%d,%d) failed: %v",
			r.Width(), r.Height(), r.Left, r.Top, err)
	}
	return &Result{Image: img, Bounds: r, Strategy: StrategyRegion}, nil
}
