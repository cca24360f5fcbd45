// Package launcher spawns child processes with a normalized environment and
// a debug-aware stdio policy.
//
// Each launch is independent: it builds its own environment copy, its own
// output buffers and its own waiter goroutine. On non-Windows hosts LANG,
// LC_CTYPE and LC_ALL are forced to one UTF-8 locale so child output decodes
// the same way everywhere.
//
// Unless stdio is set explicitly, stdout and stderr are collected in memory
// and only surface in the error when the child fails. With debug mode on they
// go straight to the parent's terminal instead.
package launcher
