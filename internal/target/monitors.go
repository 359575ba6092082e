package target

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shotbridge/shotbridge/internal/screen"
)

// Monitors enumerates attached displays sorted by ascending horizontal
// origin and assigns 1-based ordinals by that order. Ordinals are recomputed
// on every call; monitor configuration changes between calls.
func Monitors(b screen.Backend) ([]screen.Monitor, error) {
	monitors, err := b.Monitors()
	if err != nil {
		return nil, screen.Environmentf(err, "monitor enumeration failed")
	}
	if len(monitors) == 0 {
		return nil, screen.Environmentf(nil, "no monitors reported")
	}

	sort.SliceStable(monitors, func(i, j int) bool {
		return monitors[i].Bounds.Left < monitors[j].Bounds.Left
	})

	sawPrimary := false
	for i := range monitors {
		monitors[i].Ordinal = i + 1
		if monitors[i].Primary {
			if sawPrimary {
				monitors[i].Primary = false
			}
			sawPrimary = true
		}
	}
	if !sawPrimary {
		monitors[0].Primary = true
	}
	return monitors, nil
}

// VirtualScreen returns the bounding rectangle spanning all monitors.
func VirtualScreen(monitors []screen.Monitor) screen.Rect {
	var union screen.Rect
	for _, m := range monitors {
		union = union.Union(m.Bounds)
	}
	return union
}

// ResolveMonitorRegion maps a monitor spec to a capture rectangle:
// "" or "all" selects the virtual-screen union, "primary" the primary
// display, and a number the 1-based ordinal in left-to-right order.
func ResolveMonitorRegion(b screen.Backend, spec string) (screen.Rect, error) {
	monitors, err := Monitors(b)
	if err != nil {
		return screen.Rect{}, err
	}

	switch strings.ToLower(strings.TrimSpace(spec)) {
	case "", "all":
		return VirtualScreen(monitors), nil
	case "primary":
		for _, m := range monitors {
			if m.Primary {
				return m.Bounds, nil
			}
		}
		// Monitors() guarantees a primary; unreachable in practice.
		return monitors[0].Bounds, nil
	}

	ordinal, err := strconv.Atoi(strings.TrimSpace(spec))
	if err != nil {
		return screen.Rect{}, screen.Resolutionf("monitor must be a number, %q or %q; got %q", "primary", "all", spec)
	}
	if ordinal < 1 || ordinal > len(monitors) {
		return screen.Rect{}, screen.Resolutionf("monitor %d out of range; valid range is [1, %d]", ordinal, len(monitors))
	}
	return monitors[ordinal-1].Bounds, nil
}
