package appbuilder

import "github.com/wagiedev/app-builder-bin-go/internal/errors"

// Re-export error types from internal package

// UnsupportedPlatformError indicates strict resolution met an unknown platform.
type UnsupportedPlatformError = errors.UnsupportedPlatformError

// SpawnError indicates the child process could not be created.
type SpawnError = errors.SpawnError

// ExitError indicates the child process exited non-zero or was killed by a signal.
type ExitError = errors.ExitError

// AppBuilderError is the base interface for all errors of this package.
type AppBuilderError = errors.AppBuilderError

// Re-export sentinel errors from internal package.
var (
	// ErrEmptyCommand indicates a launch was requested without a command.
	ErrEmptyCommand = errors.ErrEmptyCommand

	// ErrStdinNotPiped indicates stdin was requested from a process whose input is not piped.
	ErrStdinNotPiped = errors.ErrStdinNotPiped
)
