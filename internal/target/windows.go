// Package target maps human-supplied selection criteria onto exactly one
// window or monitor region using fresh enumerations of the live desktop.
package target

import (
	"strings"

	"github.com/shotbridge/shotbridge/internal/screen"
)

// ListWindows enumerates the currently visible, titled top-level windows,
// applies the optional case-insensitive filter, and assigns each survivor
// its 1-based position in the filtered listing. The numbering is only stable
// within this one call; windows close and move between calls.
func ListWindows(b screen.Backend, filter string) ([]screen.Window, error) {
	all, err := b.ListWindows()
	if err != nil {
		return nil, screen.Environmentf(err, "window enumeration failed")
	}

	out := make([]screen.Window, 0, len(all))
	for _, w := range all {
		if w.Title == "" {
			continue
		}
		if !MatchesFilter(w, filter) {
			continue
		}
		w.Index = len(out) + 1
		out = append(out, w)
	}
	return out, nil
}

// MatchesFilter reports whether the filter substring occurs in the window's
// title or process name, case-insensitively. An empty filter matches all.
func MatchesFilter(w screen.Window, filter string) bool {
	if filter == "" {
		return true
	}
	f := strings.ToLower(filter)
	return strings.Contains(strings.ToLower(w.Title), f) ||
		strings.Contains(strings.ToLower(w.Process), f)
}
