// Package capture executes the two-tier window capture protocol and the
// simple monitor region copy.
package capture

import (
	"image"
	"time"

	"github.com/rs/zerolog"

	"github.com/shotbridge/shotbridge/internal/logging"
	"github.com/shotbridge/shotbridge/internal/screen"
)

// Strategy names the capture technique that produced an image.
type Strategy string

const (
	// StrategyBackground composites the window off-screen without touching
	// focus or stacking order.
	StrategyBackground Strategy = "background"
	// StrategyForeground raises the window and copies its padded screen
	// rectangle.
	StrategyForeground Strategy = "foreground"
	// StrategyRegion is a direct screen copy of a monitor rectangle.
	StrategyRegion Strategy = "region"
)

// Options controls one capture request.
type Options struct {
	AllowFocus         bool
	RestoreIfMinimized bool

	// Padding is the margin added around the window rectangle to avoid
	// clipped borders and shadows.
	Padding int
	// SettleDelay is how long to wait after foregrounding before the screen
	// copy, letting GPU-composited surfaces finish redrawing.
	SettleDelay time.Duration
	// RestorePollInterval and RestorePollAttempts bound the wait for a
	// minimized window to leave the iconic state after a restore request.
	RestorePollInterval time.Duration
	RestorePollAttempts int
}

// Result is a successful capture.
type Result struct {
	Image    *image.RGBA
	Bounds   screen.Rect
	Strategy Strategy
}

// Engine runs capture requests against a backend. It owns no state across
// requests; every call is an independent transaction against the live
// window set.
type Engine struct {
	backend screen.Backend
	log     zerolog.Logger

	sleep func(time.Duration)
}

// NewEngine creates a capture engine on top of the given backend.
func NewEngine(b screen.Backend) *Engine {
	return &Engine{
		backend: b,
		log:     *logging.WithComponent("capture"),
		sleep:   time.Sleep,
	}
}

// Window captures one resolved window, walking the
// CheckState → RestoreWindow → CaptureBackground → CaptureForegroundFallback
// → RestoreOriginalState protocol. On success the original window state and
// the previously focused window are restored best-effort; restoration
// failures never revert a capture result.
func (e *Engine) Window(w screen.Window, opts Options) (*Result, error) {
	minimized, err := e.backend.IsMinimized(w.Handle)
	if err != nil {
		return nil, screen.Environmentf(err, "cannot query state of window %s", w.Handle)
	}

	if minimized && !opts.RestoreIfMinimized {
		return nil, screen.Statef("window %s is minimized; retry with restore_if_minimized enabled", describe(w))
	}

	if minimized {
		e.restoreAndWait(w.Handle, opts)
	}

	rect, err := e.backend.WindowRect(w.Handle)
	if err != nil {
		e.cleanup(w.Handle, minimized, 0, false)
		return nil, screen.Capturef("cannot read bounds of window %s: %v", describe(w), err)
	}
	padded := screen.PadClamp(rect, opts.Padding)

	if img, err := e.backend.CaptureWindow(w.Handle); err == nil {
		e.cleanup(w.Handle, minimized, 0, false)
		e.log.Debug().Str("window", describe(w)).Msg("background capture succeeded")
		return &Result{Image: img, Bounds: rect, Strategy: StrategyBackground}, nil
	} else {
		e.log.Debug().Str("window", describe(w)).Err(err).Msg("background capture failed")
	}

	if !opts.AllowFocus {
		e.cleanup(w.Handle, minimized, 0, false)
		return nil, screen.Capturef("background capture of window %s failed and focus changes are not permitted; retry with allow_focus enabled", describe(w))
	}

	prev, _ := e.backend.ForegroundWindow()
	if err := e.backend.SetForeground(w.Handle); err != nil {
		e.cleanup(w.Handle, minimized, prev, true)
		return nil, screen.Capturef("cannot bring window %s to the foreground: %v", describe(w), err)
	}
	e.sleep(opts.SettleDelay)

	img, err := e.backend.CaptureRegion(padded)
	e.cleanup(w.Handle, minimized, prev, true)
	if err != nil {
		return nil, screen.Capturef("foreground capture of window %s failed: %v", describe(w), err)
	}
	e.log.Debug().Str("window", describe(w)).Msg("foreground fallback capture succeeded")
	return &Result{Image: img, Bounds: padded, Strategy: StrategyForeground}, nil
}

// restoreAndWait issues a restore request and polls the window out of the
// iconic state, bounded by the configured attempt count. A window that stays
// minimized is passed through anyway; the capture downstream surfaces the
// real failure.
func (e *Engine) restoreAndWait(h screen.Handle, opts Options) {
	if err := e.backend.Restore(h); err != nil {
		e.log.Warn().Str("window", h.String()).Err(err).Msg("restore request failed")
		return
	}
	for i := 0; i < opts.RestorePollAttempts; i++ {
		e.sleep(opts.RestorePollInterval)
		still, err := e.backend.IsMinimized(h)
		if err != nil || !still {
			return
		}
	}
	e.log.Warn().Str("window", h.String()).Msg("window still minimized after restore; proceeding anyway")
}

// cleanup re-minimizes the window when it had been minimized and hands focus
// back to prev when the foreground was changed. Both steps are best-effort;
// failures are logged and swallowed.
func (e *Engine) cleanup(h screen.Handle, wasMinimized bool, prev screen.Handle, focusChanged bool) {
	if wasMinimized {
		if err := e.backend.Minimize(h); err != nil {
			e.log.Debug().Str("window", h.String()).Err(err).Msg("re-minimize failed")
		}
	}
	if focusChanged && prev != 0 && prev != h {
		if err := e.backend.SetForeground(prev); err != nil {
			e.log.Debug().Str("window", prev.String()).Err(err).Msg("focus restore failed")
		}
	}
}

func describe(w screen.Window) string {
	if w.Title == "" {
		return w.Handle.String()
	}
	return w.Handle.String() + " (" + w.Title + ")"
}
