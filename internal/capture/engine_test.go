package capture

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shotbridge/shotbridge/internal/screen"
)

// fakeBackend scripts one window's behavior and records every call the
// engine makes, so tests can assert on ordering and cleanup.
type fakeBackend struct {
	minimized       bool
	restoreUnsticks bool // Restore actually leaves the iconic state

	rect    screen.Rect
	rectErr error

	bgErr error

	foreground screen.Handle
	setFgErr   error

	regionErr error

	restoreCalls  int
	minimizeCalls int
	bgCalls       int
	fgSets        []screen.Handle
	regionCalls   []screen.Rect
}

func (f *fakeBackend) ListWindows() ([]screen.Window, error) { return nil, nil }
func (f *fakeBackend) Monitors() ([]screen.Monitor, error)   { return nil, nil }

func (f *fakeBackend) WindowRect(screen.Handle) (screen.Rect, error) {
	return f.rect, f.rectErr
}

func (f *fakeBackend) IsMinimized(screen.Handle) (bool, error) {
	return f.minimized, nil
}

func (f *fakeBackend) Restore(screen.Handle) error {
	f.restoreCalls++
	if f.restoreUnsticks {
		f.minimized = false
	}
	return nil
}

func (f *fakeBackend) Minimize(screen.Handle) error {
	f.minimizeCalls++
	f.minimized = true
	return nil
}

func (f *fakeBackend) ForegroundWindow() (screen.Handle, error) {
	return f.foreground, nil
}

func (f *fakeBackend) SetForeground(h screen.Handle) error {
	if f.setFgErr != nil {
		return f.setFgErr
	}
	f.fgSets = append(f.fgSets, h)
	f.foreground = h
	return nil
}

func (f *fakeBackend) CaptureWindow(screen.Handle) (*image.RGBA, error) {
	f.bgCalls++
	if f.bgErr != nil {
		return nil, f.bgErr
	}
	return image.NewRGBA(image.Rect(0, 0, f.rect.Width(), f.rect.Height())), nil
}

func (f *fakeBackend) CaptureRegion(r screen.Rect) (*image.RGBA, error) {
	f.regionCalls = append(f.regionCalls, r)
	if f.regionErr != nil {
		return nil, f.regionErr
	}
	return image.NewRGBA(image.Rect(0, 0, r.Width(), r.Height())), nil
}

func newTestEngine(b screen.Backend) *Engine {
	e := NewEngine(b)
	e.sleep = func(time.Duration) {}
	return e
}

func defaultOptions() Options {
	return Options{
		Padding:             10,
		SettleDelay:         300 * time.Millisecond,
		RestorePollInterval: 100 * time.Millisecond,
		RestorePollAttempts: 20,
	}
}

var testWindow = screen.Window{Handle: 0x42, Title: "Untitled - Notepad"}

func TestWindowBackgroundCapture(t *testing.T) {
	b := &fakeBackend{rect: screen.Rect{Left: 100, Top: 100, Right: 500, Bottom: 400}}
	e := newTestEngine(b)

	res, err := e.Window(testWindow, defaultOptions())
	require.NoError(t, err)
	assert.Equal(t, StrategyBackground, res.Strategy)
	assert.Equal(t, 1, b.bgCalls)
	assert.Empty(t, b.regionCalls, "no screen copy on the background path")
	assert.Empty(t, b.fgSets, "focus untouched")
	assert.Equal(t, 0, b.minimizeCalls)
	assert.Equal(t, 400, res.Image.Bounds().Dx())
	assert.Equal(t, 300, res.Image.Bounds().Dy())
}

func TestWindowMinimizedWithoutRestore(t *testing.T) {
	b := &fakeBackend{minimized: true, rect: screen.Rect{Right: 100, Bottom: 100}}
	e := newTestEngine(b)

	opts := defaultOptions()
	opts.RestoreIfMinimized = false

	_, err := e.Window(testWindow, opts)
	require.Error(t, err)
	assert.Equal(t, screen.KindState, screen.KindOf(err))
	assert.Equal(t, 0, b.bgCalls, "no capture attempt occurs")
	assert.Equal(t, 0, b.restoreCalls)
}

func TestWindowMinimizedWithRestore(t *testing.T) {
	b := &fakeBackend{
		minimized:       true,
		restoreUnsticks: true,
		rect:            screen.Rect{Left: 50, Top: 50, Right: 450, Bottom: 350},
	}
	e := newTestEngine(b)

	opts := defaultOptions()
	opts.RestoreIfMinimized = true

	res, err := e.Window(testWindow, opts)
	require.NoError(t, err)
	assert.Equal(t, StrategyBackground, res.Strategy)
	assert.Equal(t, 1, b.restoreCalls)
	assert.Equal(t, 1, b.minimizeCalls, "window re-minimized after capture")
	assert.True(t, b.minimized, "post-capture state is minimized again")
}

func TestWindowStuckMinimizedProceedsAnyway(t *testing.T) {
	// Restore never takes effect; the engine gives up after the bounded
	// poll and lets the capture itself decide the outcome.
	b := &fakeBackend{
		minimized: true,
		rect:      screen.Rect{Right: 200, Bottom: 200},
	}
	e := newTestEngine(b)

	polls := 0
	e.sleep = func(time.Duration) { polls++ }

	opts := defaultOptions()
	opts.RestoreIfMinimized = true
	opts.RestorePollAttempts = 5

	res, err := e.Window(testWindow, opts)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 5, polls, "poll count is bounded")
}

func TestWindowFallbackDisallowed(t *testing.T) {
	b := &fakeBackend{
		rect:  screen.Rect{Left: 100, Top: 100, Right: 500, Bottom: 400},
		bgErr: errors.New("PrintWindow reported failure"),
	}
	e := newTestEngine(b)

	opts := defaultOptions()
	opts.AllowFocus = false

	_, err := e.Window(testWindow, opts)
	require.Error(t, err)
	assert.Equal(t, screen.KindCapture, screen.KindOf(err))
	assert.Contains(t, err.Error(), "allow_focus", "diagnostic tells the caller how to retry")
	assert.Empty(t, b.fgSets)
	assert.Empty(t, b.regionCalls)
}

func TestWindowForegroundFallback(t *testing.T) {
	prev := screen.Handle(0x999)
	b := &fakeBackend{
		rect:       screen.Rect{Left: 100, Top: 100, Right: 500, Bottom: 400},
		bgErr:      errors.New("PrintWindow reported failure"),
		foreground: prev,
	}
	e := newTestEngine(b)

	slept := time.Duration(0)
	e.sleep = func(d time.Duration) { slept += d }

	opts := defaultOptions()
	opts.AllowFocus = true

	res, err := e.Window(testWindow, opts)
	require.NoError(t, err)
	assert.Equal(t, StrategyForeground, res.Strategy)

	// The screen copy used the padded, clamped window rectangle.
	require.Len(t, b.regionCalls, 1)
	padded := screen.PadClamp(b.rect, opts.Padding)
	assert.Equal(t, padded, b.regionCalls[0])
	assert.Equal(t, padded.Width(), res.Image.Bounds().Dx())
	assert.Equal(t, padded.Height(), res.Image.Bounds().Dy())

	// Target foregrounded, then the previous owner got focus back.
	require.Len(t, b.fgSets, 2)
	assert.Equal(t, testWindow.Handle, b.fgSets[0])
	assert.Equal(t, prev, b.fgSets[1])

	assert.GreaterOrEqual(t, slept, opts.SettleDelay, "settle delay observed before the copy")
}

func TestWindowForegroundFallbackFails(t *testing.T) {
	b := &fakeBackend{
		rect:       screen.Rect{Left: 0, Top: 0, Right: 300, Bottom: 200},
		bgErr:      errors.New("PrintWindow reported failure"),
		regionErr:  errors.New("screen copy failed"),
		foreground: 0x999,
	}
	e := newTestEngine(b)

	opts := defaultOptions()
	opts.AllowFocus = true

	_, err := e.Window(testWindow, opts)
	require.Error(t, err)
	assert.Equal(t, screen.KindCapture, screen.KindOf(err))
	// Focus still handed back even though the capture failed.
	require.Len(t, b.fgSets, 2)
	assert.Equal(t, screen.Handle(0x999), b.fgSets[1])
}

func TestWindowDeadHandle(t *testing.T) {
	b := &fakeBackend{rectErr: errors.New("GetWindowRect failed")}
	e := newTestEngine(b)

	_, err := e.Window(screen.Window{Handle: 0xDEAD}, defaultOptions())
	require.Error(t, err)
	assert.Equal(t, screen.KindCapture, screen.KindOf(err))
	assert.Equal(t, 0, b.bgCalls)
}

func TestRegionCapture(t *testing.T) {
	b := &fakeBackend{}
	e := newTestEngine(b)

	r := screen.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080}
	res, err := e.Region(r)
	require.NoError(t, err)
	assert.Equal(t, StrategyRegion, res.Strategy)
	assert.Equal(t, 1920, res.Image.Bounds().Dx())
	assert.Equal(t, 1080, res.Image.Bounds().Dy())
	assert.Empty(t, b.fgSets, "no focus manipulation on the region path")
}

func TestRegionCaptureError(t *testing.T) {
	b := &fakeBackend{regionErr: errors.New("bad region")}
	e := newTestEngine(b)

	_, err := e.Region(screen.Rect{Right: 100, Bottom: 100})
	require.Error(t, err)
	assert.Equal(t, screen.KindCapture, screen.KindOf(err))
}
