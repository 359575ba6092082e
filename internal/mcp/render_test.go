package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shotbridge/shotbridge/internal/screen"
)

func TestRenderListingEmpty(t *testing.T) {
	assert.Equal(t, "no windows found", RenderListing(nil, ""))
	assert.Equal(t, "no windows found", RenderListing([]screen.Window{}, FormatDetailed))
}

func TestRenderListingCompact(t *testing.T) {
	windows := []screen.Window{
		{Index: 1, Title: "Untitled - Notepad", Process: "notepad.exe"},
		{Index: 2, Title: "legacy console"},
	}
	got := RenderListing(windows, "")
	assert.Equal(t, "1. Untitled - Notepad (notepad.exe)\n2. legacy console", got)
}

func TestRenderListingDetailed(t *testing.T) {
	windows := []screen.Window{
		{Index: 1, Title: "Inbox - Mail", Process: "outlook.exe", PID: 202, Handle: 0x200, State: screen.StateMinimized},
	}
	got := RenderListing(windows, "Detailed")
	assert.Equal(t, "1. Inbox - Mail (outlook.exe) [pid=202 handle=0x200 state=minimized]", got)
}
