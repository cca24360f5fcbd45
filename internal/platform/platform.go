package platform

import (
	"runtime"
	"sync"

	"github.com/wagiedev/app-builder-bin-go/internal/errors"
)

// Platform identifies one of the binary layouts.
type Platform int

const (
	// Linux covers Linux and every other Unix-like system.
	Linux Platform = iota
	// Mac is macOS.
	Mac
	// Windows is Microsoft Windows.
	Windows
)

// GOOS values with a dedicated layout.
const (
	GOOSDarwin  = "darwin"
	GOOSWindows = "windows"
	GOOSLinux   = "linux"
)

// String returns the platform name. The Windows layout directory is "win",
// see resolver.Layout.
func (p Platform) String() string {
	switch p {
	case Mac:
		return "mac"
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	default:
		return "linux"
	}
}

// FromGOOS maps a GOOS value onto a platform.
// Anything that is neither darwin nor windows falls back to Linux.
func FromGOOS(goos string) Platform {
	switch goos {
	case GOOSDarwin:
		return Mac
	case GOOSWindows:
		return Windows
	default:
		return Linux
	}
}

// ParseStrict maps a GOOS value onto a platform, rejecting anything other
// than darwin, windows and linux.
func ParseStrict(goos, goarch string) (Platform, error) {
	switch goos {
	case GOOSDarwin:
		return Mac, nil
	case GOOSWindows:
		return Windows, nil
	case GOOSLinux:
		return Linux, nil
	default:
		return Linux, &errors.UnsupportedPlatformError{GOOS: goos, GOARCH: goarch}
	}
}

// Arch maps a GOARCH value onto the architecture names used by the binary
// layout (x64, ia32, arm64, ...). Unknown names pass through unchanged.
func Arch(goarch string) string {
	switch goarch {
	case "amd64":
		return "x64"
	case "386":
		return "ia32"
	case "ppc64", "ppc64le":
		return "ppc64"
	default:
		return goarch
	}
}

// Host describes the running process's platform.
type Host struct {
	Platform Platform
	Arch     string
	GOOS     string
	GOARCH   string
}

// hostOnce caches host detection for the lifetime of the process.
var hostOnce = sync.OnceValue(func() Host {
	return Detect(runtime.GOOS, runtime.GOARCH)
})

// Current returns the host of the running process.
func Current() Host {
	return hostOnce()
}

// Detect builds a Host from explicit GOOS and GOARCH values.
func Detect(goos, goarch string) Host {
	return Host{
		Platform: FromGOOS(goos),
		Arch:     Arch(goarch),
		GOOS:     goos,
		GOARCH:   goarch,
	}
}
