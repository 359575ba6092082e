// Package screen defines the OS-neutral window/monitor data model and the
// backend interface through which all Win32 operations are performed.
package screen

import "fmt"

// Handle is an opaque OS-assigned window identifier, valid only while the
// window exists.
type Handle uintptr

// String renders the handle the way window tools conventionally print it.
func (h Handle) String() string {
	return fmt.Sprintf("0x%X", uintptr(h))
}

// Rect is a rectangle in virtual-screen coordinates. Coordinates can be
// negative (a secondary monitor left of or above the primary).
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	out := r
	if o.Left < out.Left {
		out.Left = o.Left
	}
	if o.Top < out.Top {
		out.Top = o.Top
	}
	if o.Right > out.Right {
		out.Right = o.Right
	}
	if o.Bottom > out.Bottom {
		out.Bottom = o.Bottom
	}
	return out
}

// PadClamp expands r by pad on all sides, then clamps the origin to be
// non-negative. Width and height derive from the padded, clamped rectangle,
// so a window hanging off the left or top edge loses the off-screen strip
// rather than producing negative capture coordinates.
func PadClamp(r Rect, pad int) Rect {
	out := Rect{
		Left:   r.Left - pad,
		Top:    r.Top - pad,
		Right:  r.Right + pad,
		Bottom: r.Bottom + pad,
	}
	if out.Left < 0 {
		out.Left = 0
	}
	if out.Top < 0 {
		out.Top = 0
	}
	return out
}

// ShowState is a window's visibility state.
type ShowState int

const (
	StateNormal ShowState = iota
	StateMinimized
	StateMaximized
)

func (s ShowState) String() string {
	switch s {
	case StateMinimized:
		return "minimized"
	case StateMaximized:
		return "maximized"
	default:
		return "normal"
	}
}

// Window describes one visible, titled top-level window. A Window is value
// data: it is only meaningful for the lifetime of the enumeration call that
// produced it, since windows close and move between calls.
type Window struct {
	Handle  Handle
	Title   string
	Process string // owning process name; empty when the process cannot be queried
	PID     int
	State   ShowState
	Bounds  Rect
	Index   int // 1-based position in the listing that produced this descriptor
}

// Monitor describes one physical display region.
type Monitor struct {
	Ordinal int // 1-based, assigned by ascending horizontal origin
	Bounds  Rect
	Primary bool
}
