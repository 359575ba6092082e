//go:build windows

package screen

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/kbinani/screenshot"
	"github.com/lxn/win"
	"github.com/shirou/gopsutil/v3/process"
	"golang.org/x/sys/windows"
)

var (
	libUser32                    = windows.NewLazySystemDLL("user32.dll")
	procEnumWindows              = libUser32.NewProc("EnumWindows")
	procGetWindowTextW           = libUser32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW     = libUser32.NewProc("GetWindowTextLengthW")
	procGetWindowThreadProcessId = libUser32.NewProc("GetWindowThreadProcessId")
	procIsWindowVisible          = libUser32.NewProc("IsWindowVisible")
	procPrintWindow              = libUser32.NewProc("PrintWindow")
	procEnumDisplayMonitors      = libUser32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW          = libUser32.NewProc("GetMonitorInfoW")
)

// PW_RENDERFULLCONTENT asks PrintWindow to render DirectComposition surfaces
// as well; without it GPU-accelerated windows come back black.
const printWindowFullContent = 0x00000002

// Win32Backend implements Backend against the live Win32 window manager.
type Win32Backend struct{}

var _ Backend = (*Win32Backend)(nil)

// New returns the native Windows backend.
func New() Backend {
	return &Win32Backend{}
}

// ListWindows enumerates visible, titled top-level windows in Z-order.
func (b *Win32Backend) ListWindows() ([]Window, error) {
	var found []Window
	cb := windows.NewCallback(func(hwnd uintptr, _ uintptr) uintptr {
		if !isWindowVisible(hwnd) {
			return 1
		}
		title := windowTitle(hwnd)
		if title == "" {
			return 1
		}

		var pid uint32
		procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))

		state := StateNormal
		if win.IsIconic(win.HWND(hwnd)) {
			state = StateMinimized
		} else if isZoomed(hwnd) {
			state = StateMaximized
		}

		var rc win.RECT
		win.GetWindowRect(win.HWND(hwnd), &rc)

		found = append(found, Window{
			Handle:  Handle(hwnd),
			Title:   title,
			Process: processName(int(pid)),
			PID:     int(pid),
			State:   state,
			Bounds:  fromWinRect(rc),
		})
		return 1
	})

	ret, _, _ := procEnumWindows.Call(cb, 0)
	if ret == 0 {
		return nil, fmt.Errorf("EnumWindows failed: %d", win.GetLastError())
	}
	return found, nil
}

// Monitors returns all attached displays in OS enumeration order.
func (b *Win32Backend) Monitors() ([]Monitor, error) {
	type monitorEntry struct {
		bounds  Rect
		primary bool
	}
	var entries []monitorEntry

	cb := windows.NewCallback(func(hMonitor, hdc uintptr, lprc *win.RECT, _ uintptr) uintptr {
		var info win.MONITORINFO
		info.CbSize = uint32(unsafe.Sizeof(info))
		ret, _, _ := procGetMonitorInfoW.Call(hMonitor, uintptr(unsafe.Pointer(&info)))
		if ret == 0 {
			if lprc != nil {
				entries = append(entries, monitorEntry{bounds: fromWinRect(*lprc)})
			}
			return 1
		}
		entries = append(entries, monitorEntry{
			bounds:  fromWinRect(info.RcMonitor),
			primary: info.DwFlags&win.MONITORINFOF_PRIMARY != 0,
		})
		return 1
	})

	ret, _, _ := procEnumDisplayMonitors.Call(0, 0, cb, 0)
	if ret == 0 {
		return nil, fmt.Errorf("EnumDisplayMonitors failed: %d", win.GetLastError())
	}

	monitors := make([]Monitor, 0, len(entries))
	for _, e := range entries {
		monitors = append(monitors, Monitor{Bounds: e.bounds, Primary: e.primary})
	}
	return monitors, nil
}

// WindowRect returns the window's screen rectangle, failing for dead handles.
func (b *Win32Backend) WindowRect(h Handle) (Rect, error) {
	var rc win.RECT
	if !win.GetWindowRect(win.HWND(h), &rc) {
		return Rect{}, fmt.Errorf("GetWindowRect failed for %s: %d", h, win.GetLastError())
	}
	return fromWinRect(rc), nil
}

func (b *Win32Backend) IsMinimized(h Handle) (bool, error) {
	return win.IsIconic(win.HWND(h)), nil
}

// Restore brings the window out of the iconic state; SW_RESTORE also
// activates it. ShowWindow's return value reports the previous visibility,
// not success, so the caller polls IsMinimized rather than trusting the call.
func (b *Win32Backend) Restore(h Handle) error {
	win.ShowWindow(win.HWND(h), win.SW_RESTORE)
	return nil
}

func (b *Win32Backend) Minimize(h Handle) error {
	win.ShowWindow(win.HWND(h), win.SW_MINIMIZE)
	return nil
}

func (b *Win32Backend) ForegroundWindow() (Handle, error) {
	return Handle(win.GetForegroundWindow()), nil
}

func (b *Win32Backend) SetForeground(h Handle) error {
	if !win.SetForegroundWindow(win.HWND(h)) {
		return fmt.Errorf("SetForegroundWindow refused for %s", h)
	}
	return nil
}

// CaptureWindow composites the window into an off-screen bitmap via
// PrintWindow, which works for occluded windows without touching focus.
func (b *Win32Backend) CaptureWindow(h Handle) (*image.RGBA, error) {
	rect, err := b.WindowRect(h)
	if err != nil {
		return nil, err
	}
	width, height := rect.Width(), rect.Height()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("window %s has empty bounds %dx%d", h, width, height)
	}

	hdcScreen := win.GetDC(0)
	if hdcScreen == 0 {
		return nil, fmt.Errorf("GetDC failed: %d", win.GetLastError())
	}
	defer win.ReleaseDC(0, hdcScreen)

	hdcMem := win.CreateCompatibleDC(hdcScreen)
	if hdcMem == 0 {
		return nil, fmt.Errorf("CreateCompatibleDC failed: %d", win.GetLastError())
	}
	defer win.DeleteDC(hdcMem)

	hBmp := win.CreateCompatibleBitmap(hdcScreen, int32(width), int32(height))
	if hBmp == 0 {
		return nil, fmt.Errorf("CreateCompatibleBitmap failed: %d", win.GetLastError())
	}
	defer win.DeleteObject(win.HGDIOBJ(hBmp))

	old := win.SelectObject(hdcMem, win.HGDIOBJ(hBmp))
	if old == 0 {
		return nil, fmt.Errorf("SelectObject failed: %d", win.GetLastError())
	}
	defer win.SelectObject(hdcMem, old)

	ret, _, _ := procPrintWindow.Call(uintptr(h), uintptr(hdcMem), printWindowFullContent)
	if ret == 0 {
		return nil, fmt.Errorf("PrintWindow reported failure for %s", h)
	}

	return bitmapToRGBA(hdcMem, hBmp, width, height)
}

// CaptureRegion copies a virtual-screen rectangle directly from the screen.
func (b *Win32Backend) CaptureRegion(r Rect) (*image.RGBA, error) {
	if r.Empty() {
		return nil, fmt.Errorf("empty capture region %+v", r)
	}
	img, err := screenshot.CaptureRect(image.Rect(r.Left, r.Top, r.Right, r.Bottom))
	if err != nil {
		return nil, fmt.Errorf("screen copy failed for %+v: %w", r, err)
	}
	return img, nil
}

// bitmapToRGBA reads a 32bpp top-down DIB out of a GDI bitmap and converts
// BGRA to RGBA.
func bitmapToRGBA(hdc win.HDC, hBmp win.HBITMAP, width, height int) (*image.RGBA, error) {
	bi := win.BITMAPINFO{
		BmiHeader: win.BITMAPINFOHEADER{
			BiSize:        uint32(unsafe.Sizeof(win.BITMAPINFOHEADER{})),
			BiWidth:       int32(width),
			BiHeight:      -int32(height),
			BiPlanes:      1,
			BiBitCount:    32,
			BiCompression: win.BI_RGB,
		},
	}

	buf := make([]byte, width*height*4)
	ret := win.GetDIBits(hdc, hBmp, 0, uint32(height), &buf[0], &bi, win.DIB_RGB_COLORS)
	if ret == 0 {
		return nil, fmt.Errorf("GetDIBits failed: %d", win.GetLastError())
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i+3 < len(buf); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = buf[i+2], buf[i+1], buf[i], 255
	}
	return img, nil
}

func fromWinRect(rc win.RECT) Rect {
	return Rect{
		Left:   int(rc.Left),
		Top:    int(rc.Top),
		Right:  int(rc.Right),
		Bottom: int(rc.Bottom),
	}
}

func isWindowVisible(hwnd uintptr) bool {
	ret, _, _ := procIsWindowVisible.Call(hwnd)
	return ret != 0
}

func isZoomed(hwnd uintptr) bool {
	return win.IsZoomed(win.HWND(hwnd))
}

func windowTitle(hwnd uintptr) string {
	length, _, _ := procGetWindowTextLengthW.Call(hwnd)
	if length == 0 {
		return ""
	}
	buf := make([]uint16, length+1)
	read, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), length+1)
	if read == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:read])
}

// processName resolves the owning process name for pid, returning "" when
// the process cannot be queried so one inaccessible process never fails a
// whole enumeration.
func processName(pid int) string {
	if pid <= 0 {
		return ""
	}
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return ""
	}
	name, err := proc.Name()
	if err != nil {
		return ""
	}
	return name
}
