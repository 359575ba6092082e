// Package pathmap translates logical output locations between the Windows
// and WSL filesystem addressing schemes and guarantees the destination
// directory exists before a capture begins.
package pathmap

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/shotbridge/shotbridge/internal/screen"
)

// Resolved is the outcome of resolving an output location.
type Resolved struct {
	// LocalDir is the directory in this process's own path convention,
	// guaranteed to exist.
	LocalDir string
	// LocalPath is the full output file path in the local convention.
	LocalPath string
	// NativePath is the path reported to the caller: the Windows form when
	// running under WSL, otherwise identical to LocalPath.
	NativePath string
}

// Resolve maps customFolder (or defaultFolder when empty) plus filename to
// concrete local and native paths, creating the directory idempotently.
func Resolve(customFolder, defaultFolder, filename string) (Resolved, error) {
	folder := strings.TrimSpace(customFolder)
	if folder == "" {
		folder = strings.TrimSpace(defaultFolder)
	}
	if folder == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Resolved{}, screen.IOf(err, "cannot determine home directory for output folder")
		}
		folder = filepath.Join(home, "screenshots")
	}
	folder = expandHome(folder)

	localDir := ToLocal(folder)
	if err := os.MkdirAll(localDir, 0o755); err != nil {
		return Resolved{}, screen.IOf(err, "cannot create output directory %s", localDir)
	}

	localPath := filepath.Join(localDir, filename)
	return Resolved{
		LocalDir:   localDir,
		LocalPath:  localPath,
		NativePath: ToNative(localPath),
	}, nil
}

// DefaultFilename generates a timestamped screenshot name for the format.
func DefaultFilename(format string) string {
	return fmt.Sprintf("screenshot_%s.%s", time.Now().Format("20060102_150405"), format)
}

// NormalizeFilename appends the default extension when the name carries no
// recognized image extension.
func NormalizeFilename(name, format string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".bmp":
		return name
	}
	return name + "." + format
}

// IsWSL reports whether this process runs inside Windows Subsystem for Linux.
func IsWSL() bool {
	if runtime.GOOS == "windows" {
		return false
	}
	if os.Getenv("WSL_DISTRO_NAME") != "" || os.Getenv("WSL_INTEROP") != "" {
		return true
	}
	data, err := os.ReadFile("/proc/version")
	return err == nil && strings.Contains(strings.ToLower(string(data)), "microsoft")
}

// ToLocal converts a path of either convention into this process's own
// convention.
func ToLocal(p string) string {
	if runtime.GOOS == "windows" {
		if u, ok := unixToWindows(p); ok {
			return u
		}
		return p
	}
	if w, ok := windowsToUnix(p); ok {
		return w
	}
	return p
}

// ToNative converts a local path into the convention the caller expects:
// under WSL that is the Windows form, everywhere else the path is already
// native.
func ToNative(p string) string {
	if IsWSL() {
		if w, ok := unixToWindows(p); ok {
			return w
		}
	}
	return p
}

// windowsToUnix maps C:\Users\x to /mnt/c/Users/x.
func windowsToUnix(p string) (string, bool) {
	if len(p) < 3 || p[1] != ':' {
		return "", false
	}
	drive := p[0]
	if !isDriveLetter(drive) || (p[2] != '\\' && p[2] != '/') {
		return "", false
	}
	rest := strings.ReplaceAll(p[3:], "\\", "/")
	return "/mnt/" + strings.ToLower(string(drive)) + "/" + rest, true
}

// unixToWindows maps /mnt/c/Users/x to C:\Users\x.
func unixToWindows(p string) (string, bool) {
	const prefix = "/mnt/"
	if !strings.HasPrefix(p, prefix) || len(p) < len(prefix)+1 {
		return "", false
	}
	drive := p[len(prefix)]
	if !isDriveLetter(drive) {
		return "", false
	}
	rest := p[len(prefix)+1:]
	if rest != "" && rest[0] != '/' {
		return "", false
	}
	rest = strings.ReplaceAll(strings.TrimPrefix(rest, "/"), "/", "\\")
	out := strings.ToUpper(string(drive)) + ":\\"
	return out + rest, true
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimLeft(p[1:], `/\`))
		}
	}
	return p
}
