package appbuilder

import (
	"github.com/wagiedev/app-builder-bin-go/internal/config"
	"github.com/wagiedev/app-builder-bin-go/internal/launcher"
	"github.com/wagiedev/app-builder-bin-go/internal/platform"
)

// Re-export types from internal packages

// ===== Processes =====

// Process is a handle to a running child process.
type Process = launcher.Process

// Result holds the outcome of a finished child process.
type Result = launcher.Result

// ===== Stdio =====

// Stdio selects the mode of each standard stream of a child.
type Stdio = config.Stdio

// StdioMode is the policy for one standard stream.
type StdioMode = config.StdioMode

const (
	// StdioIgnore connects the stream to the null device.
	StdioIgnore = config.StdioIgnore
	// StdioPipe connects the stream to the parent for writing or collection.
	StdioPipe = config.StdioPipe
	// StdioInherit connects the stream to the parent's terminal.
	StdioInherit = config.StdioInherit
)

// ===== Platform =====

// Platform identifies one of the bundled binary layouts.
type Platform = platform.Platform

const (
	// PlatformLinux covers Linux and every other Unix-like system.
	PlatformLinux = platform.Linux
	// PlatformMac is macOS.
	PlatformMac = platform.Mac
	// PlatformWindows is Microsoft Windows.
	PlatformWindows = platform.Windows
)

// Host describes a platform and architecture pair.
type Host = platform.Host
