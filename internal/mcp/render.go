package mcp

import (
	"fmt"
	"strings"

	"github.com/shotbridge/shotbridge/internal/screen"
)

// FormatDetailed adds process id, handle and window state to each line.
const FormatDetailed = "detailed"

// RenderListing renders windows as the textual listing returned to callers.
// Compact lines look like "3. Untitled - Notepad (notepad.exe)".
func RenderListing(windows []screen.Window, format string) string {
	if len(windows) == 0 {
		return "no windows found"
	}

	detailed := strings.EqualFold(strings.TrimSpace(format), FormatDetailed)
	var b strings.Builder
	for i, w := range windows {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", w.Index, w.Title)
		if w.Process != "" {
			fmt.Fprintf(&b, " (%s)", w.Process)
		}
		if detailed {
			fmt.Fprintf(&b, " [pid=%d handle=%s state=%s]", w.PID, w.Handle, w.State)
		}
	}
	return b.String()
}
