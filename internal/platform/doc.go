// Package platform maps the host operating system and CPU architecture onto
// the identifiers used by the app-builder binary layout.
//
// The host is detected once per process and never changes afterwards.
package platform
