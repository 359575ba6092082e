package mcp

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct {
	Filter string `json:"filter,omitempty" jsonschema:"Case-insensitive substring matched against window titles and process names"`
	Format string `json:"format,omitempty" jsonschema:"Listing format: compact (default) or detailed. Detailed adds process id, handle and window state."`
}

// WindowEntry describes one listed window.
type WindowEntry struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Process string `json:"process,omitempty"`
	PID     int    `json:"pid,omitempty"`
	Handle  string `json:"handle,omitempty"`
	State   string `json:"state,omitempty"`
}

// ListWindowsOutput is the output for the list_windows tool. Failures are
// reported in the payload, never as protocol errors.
type ListWindowsOutput struct {
	OK        bool          `json:"ok"`
	Listing   string        `json:"listing,omitempty"`
	Count     int           `json:"count,omitempty"`
	Windows   []WindowEntry `json:"windows,omitempty"`
	ErrorKind string        `json:"error_kind,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// TakeScreenshotInput is the input for the take_screenshot tool. Window
// selector fields are honored in priority order: window_handle, then
// window_number, then window_title, then process_name; when none is set the
// capture targets monitors instead.
type TakeScreenshotInput struct {
	Filename           string `json:"filename,omitempty" jsonschema:"Output file name. Extension selects the encoder (.png or .bmp); a timestamped name is generated when omitted."`
	Monitor            string `json:"monitor,omitempty" jsonschema:"Monitor to capture: a 1-based number in left-to-right order, primary, or all (default) for the full virtual screen. Ignored when a window selector is set."`
	WindowTitle        string `json:"window_title,omitempty" jsonschema:"Capture the first window whose title contains this substring (case-insensitive)"`
	ProcessName        string `json:"process_name,omitempty" jsonschema:"Capture the first window owned by a process whose name contains this substring. A trailing .exe is ignored."`
	WindowNumber       int    `json:"window_number,omitempty" jsonschema:"Capture the window at this 1-based position in the filtered listing (see list_windows)"`
	WindowHandle       string `json:"window_handle,omitempty" jsonschema:"Capture the window with this exact handle (hex with 0x prefix, or decimal)"`
	Filter             string `json:"filter,omitempty" jsonschema:"Narrow the enumeration before window_number/window_title/process_name are applied"`
	AllowFocus         bool   `json:"allow_focus,omitempty" jsonschema:"Permit bringing the target window to the foreground when background capture fails"`
	RestoreIfMinimized bool   `json:"restore_if_minimized,omitempty" jsonschema:"Temporarily restore a minimized window for the capture and re-minimize it afterwards"`
	Folder             string `json:"folder,omitempty" jsonschema:"Output folder. Accepts Windows (C:\\...) and WSL (/mnt/c/...) forms; created if absent."`
}

// TakeScreenshotOutput is the output for the take_screenshot tool. Failures
// are reported in the payload, never as protocol errors.
type TakeScreenshotOutput struct {
	OK        bool   `json:"ok"`
	Path      string `json:"path,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	Strategy  string `json:"strategy,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
	Error     string `json:"error,omitempty"`
}
