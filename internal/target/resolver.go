package target

import (
	"strconv"
	"strings"

	"github.com/shotbridge/shotbridge/internal/screen"
)

// SelectorKind identifies which selection criterion is active.
type SelectorKind int

const (
	SelectHandle SelectorKind = iota
	SelectIndex
	SelectTitle
	SelectProcess
)

func (k SelectorKind) String() string {
	switch k {
	case SelectHandle:
		return "handle"
	case SelectIndex:
		return "index"
	case SelectTitle:
		return "title"
	default:
		return "process"
	}
}

// Selector is a tagged window-selection criterion with exactly one active
// case. The caller-facing layer collapses its independently-optional request
// fields into a Selector so the resolver never has to guess which field wins.
type Selector struct {
	Kind   SelectorKind
	Handle screen.Handle // SelectHandle
	Index  int           // SelectIndex, 1-based
	Text   string        // SelectTitle / SelectProcess substring
	Filter string        // optional narrowing filter applied at enumeration
}

// NewSelector builds a Selector from the raw optional request fields,
// honoring the fixed priority order: explicit handle, then enumeration
// index, then title substring, then process-name substring. Supplying more
// than one criterion is allowed; lower-priority ones are ignored.
func NewSelector(handle string, index int, title, processName, filter string) (Selector, error) {
	switch {
	case strings.TrimSpace(handle) != "":
		h, err := ParseHandle(handle)
		if err != nil {
			return Selector{}, err
		}
		return Selector{Kind: SelectHandle, Handle: h, Filter: filter}, nil
	case index != 0:
		return Selector{Kind: SelectIndex, Index: index, Filter: filter}, nil
	case title != "":
		return Selector{Kind: SelectTitle, Text: title, Filter: filter}, nil
	case processName != "":
		return Selector{Kind: SelectProcess, Text: processName, Filter: filter}, nil
	}
	return Selector{}, screen.Resolutionf("no window selector supplied; need a handle, number, title or process name")
}

// ParseHandle parses a window handle written as hexadecimal with an 0x
// prefix or as plain decimal.
func ParseHandle(s string) (screen.Handle, error) {
	raw := strings.TrimSpace(s)
	base := 10
	digits := raw
	if len(raw) > 2 && (raw[:2] == "0x" || raw[:2] == "0X") {
		base = 16
		digits = raw[2:]
	}
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil || v == 0 {
		return 0, screen.Resolutionf("invalid window handle %q", s)
	}
	return screen.Handle(v), nil
}

// Resolve maps the selector to exactly one window descriptor or fails with
// a resolution failure naming the criteria that did not match.
//
// An explicit handle is used verbatim and never cross-checked against the
// enumeration; a dead handle surfaces as a capture-time failure instead.
func Resolve(b screen.Backend, sel Selector) (screen.Window, error) {
	if sel.Kind == SelectHandle {
		return screen.Window{Handle: sel.Handle}, nil
	}

	windows, err := ListWindows(b, sel.Filter)
	if err != nil {
		return screen.Window{}, err
	}

	switch sel.Kind {
	case SelectIndex:
		if sel.Index < 1 || sel.Index > len(windows) {
			return screen.Window{}, screen.Resolutionf("window number %d out of range; valid range is [1, %d]", sel.Index, len(windows))
		}
		return windows[sel.Index-1], nil

	case SelectTitle:
		needle := strings.ToLower(sel.Text)
		for _, w := range windows {
			if strings.Contains(strings.ToLower(w.Title), needle) {
				return w, nil
			}
		}
		return screen.Window{}, screen.Resolutionf("no window with title containing %q%s", sel.Text, filterSuffix(sel.Filter))

	case SelectProcess:
		needle := strings.TrimSuffix(strings.ToLower(sel.Text), ".exe")
		for _, w := range windows {
			if strings.Contains(strings.ToLower(w.Process), needle) {
				return w, nil
			}
		}
		return screen.Window{}, screen.Resolutionf("no window owned by a process containing %q%s", sel.Text, filterSuffix(sel.Filter))
	}

	return screen.Window{}, screen.Resolutionf("unsupported selector kind %d", sel.Kind)
}

func filterSuffix(filter string) string {
	if filter == "" {
		return ""
	}
	return " (filter: " + strconv.Quote(filter) + ")"
}
