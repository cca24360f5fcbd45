// Package config provides configuration types for launching child processes.
package config

import (
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
)

const (
	// EnvDebug enables debug mode when set to anything but "false".
	EnvDebug = "DEBUG"

	// EnvLogSpawn forces spawn logging on or off regardless of debug mode.
	EnvLogSpawn = "APP_BUILDER_LOG_SPAWN"
)

// StdioMode is the policy for one standard stream of a child process.
type StdioMode int

const (
	// StdioIgnore connects the stream to the null device.
	StdioIgnore StdioMode = iota
	// StdioPipe connects the stream to the parent so it can be written or collected.
	StdioPipe
	// StdioInherit connects the stream directly to the parent's terminal.
	StdioInherit
)

// String returns the mode name.
func (m StdioMode) String() string {
	switch m {
	case StdioIgnore:
		return "ignore"
	case StdioPipe:
		return "pipe"
	case StdioInherit:
		return "inherit"
	default:
		return "unknown"
	}
}

// Stdio selects the mode of each standard stream.
type Stdio struct {
	Stdin  StdioMode
	Stdout StdioMode
	Stderr StdioMode

	// StdoutTarget and StderrTarget replace the parent's own stream for
	// StdioInherit. Nil means os.Stdout and os.Stderr respectively.
	StdoutTarget io.Writer
	StderrTarget io.Writer
}

// Options configures a single process launch.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// Cwd is the working directory of the child. Empty inherits the parent's.
	Cwd string

	// BaseEnv is the environment the child starts from, as KEY=VALUE pairs.
	// Nil means the parent's environment.
	BaseEnv []string

	// Env adds or overrides variables on top of BaseEnv.
	Env map[string]string

	// Stdio explicitly selects stream modes. Nil derives them from PipeInput
	// and debug mode.
	Stdio *Stdio

	// PipeInput pipes stdin so the caller can write to the child.
	PipeInput bool

	// Debug inherits stdout and stderr instead of collecting them.
	// Nil reads the DEBUG environment variable.
	Debug *bool

	// LogSpawn logs every spawn at debug level.
	// Nil reads APP_BUILDER_LOG_SPAWN and falls back to debug mode.
	LogSpawn *bool

	// OnStdout and OnStderr receive each collected line of output.
	OnStdout func(string)
	OnStderr func(string)

	// ErrorOutputLimit keeps only the last N bytes of each stream in exit
	// error messages. Zero includes everything collected.
	ErrorOutputLimit int

	// AlreadyLoggedExitCodes lists exit codes meaning the child already
	// reported its failure to the user.
	AlreadyLoggedExitCodes []int

	// LookupEnv reads the parent environment. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// DebugEnabled reports whether debug mode is on for this launch.
func (o *Options) DebugEnabled() bool {
	if o.Debug != nil {
		return *o.Debug
	}

	return DebugFromEnv(o.lookup())
}

// LogSpawnEnabled reports whether the spawn should be logged.
func (o *Options) LogSpawnEnabled() bool {
	if o.LogSpawn != nil {
		return *o.LogSpawn
	}

	if value, ok := o.lookup()(EnvLogSpawn); ok {
		if enabled, err := strconv.ParseBool(value); err == nil {
			return enabled
		}
	}

	return o.DebugEnabled()
}

// IsAlreadyLogged reports whether exitCode is one of AlreadyLoggedExitCodes.
func (o *Options) IsAlreadyLogged(exitCode int) bool {
	return slices.Contains(o.AlreadyLoggedExitCodes, exitCode)
}

func (o *Options) lookup() func(string) (string, bool) {
	if o.LookupEnv != nil {
		return o.LookupEnv
	}

	return os.LookupEnv
}

// DebugFromEnv reports whether DEBUG is set to anything but "false".
func DebugFromEnv(lookupEnv func(string) (string, bool)) bool {
	value, ok := lookupEnv(EnvDebug)

	return ok && value != "false"
}
