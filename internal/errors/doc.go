// Package errors defines error types for app-builder resolution and process launching.
//
// This package provides structured error types that wrap the different failure
// scenarios when resolving or running a child process. All error types support
// error unwrapping and can be checked using errors.Is, errors.As, and errors.AsType.
package errors
