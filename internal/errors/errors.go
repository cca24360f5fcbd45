package errors

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// AppBuilderError is the base interface for all errors returned by this module.
type AppBuilderError interface {
	error
	IsAppBuilderError() bool
}

// Compile-time verification that all error types implement AppBuilderError.
var (
	_ AppBuilderError = (*UnsupportedPlatformError)(nil)
	_ AppBuilderError = (*SpawnError)(nil)
	_ AppBuilderError = (*ExitError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrEmptyCommand indicates a launch was requested without a command.
	ErrEmptyCommand = errors.New("command must not be empty")

	// ErrStdinNotPiped indicates stdin was requested from a process whose input is not piped.
	ErrStdinNotPiped = errors.New("stdin is not piped")
)

// UnsupportedPlatformError indicates the host platform is not one of the
// enumerated platforms. Only returned when strict resolution is enabled.
type UnsupportedPlatformError struct {
	GOOS   string
	GOARCH string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: %s/%s", e.GOOS, e.GOARCH)
}

// IsAppBuilderError implements AppBuilderError.
func (e *UnsupportedPlatformError) IsAppBuilderError() bool { return true }

// SpawnError indicates the child process could not be created
// (missing executable, permission denied, bad working directory).
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("cannot spawn %s: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// IsAppBuilderError implements AppBuilderError.
func (e *SpawnError) IsAppBuilderError() bool { return true }

// ExitError indicates the child process exited with a non-zero status
// or was terminated by a signal.
type ExitError struct {
	Command string
	Args    []string

	// ArgString replaces Args in Error() when set, e.g. with credentials redacted.
	ArgString string

	// ExitCode is the child's exit status, or -1 when it was killed by a signal.
	ExitCode int
	// Signal is the name of the terminating signal, empty for a normal exit.
	Signal string

	Stdout string
	Stderr string

	// OutputLimit caps how many trailing bytes of each stream appear in Error().
	// Zero includes all collected output.
	OutputLimit int

	// AlreadyLogged is set when the child reported its own failure to the
	// user and callers should not print the error again.
	AlreadyLogged bool

	Err error
}

func (e *ExitError) Error() string {
	var b strings.Builder

	b.WriteString(filepath.Base(e.Command))

	if e.Signal != "" {
		fmt.Fprintf(&b, " terminated by signal %s", e.Signal)
	} else {
		fmt.Fprintf(&b, " exited with code %d", e.ExitCode)
	}

	switch {
	case e.ArgString != "":
		b.WriteString("\nArgs: ")
		b.WriteString(e.ArgString)
	case len(e.Args) > 0:
		b.WriteString("\nArgs: ")
		b.WriteString(strings.Join(e.Args, " "))
	}

	writeOutput(&b, "Output", e.Stdout, e.OutputLimit)
	writeOutput(&b, "Error output", e.Stderr, e.OutputLimit)

	return b.String()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// IsAppBuilderError implements AppBuilderError.
func (e *ExitError) IsAppBuilderError() bool { return true }

// writeOutput appends a titled output section, keeping only the tail when limit > 0.
func writeOutput(b *strings.Builder, title, text string, limit int) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return
	}

	if limit > 0 && len(text) > limit {
		text = "..." + text[len(text)-limit:]
	}

	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString(":\n")
	b.WriteString(text)
}
