package launcher

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wagiedev/app-builder-bin-go/internal/config"
	"github.com/wagiedev/app-builder-bin-go/internal/errors"
)

// Result holds the outcome of a finished child process.
type Result struct {
	// Stdout and Stderr hold collected output; empty for inherited or ignored streams.
	Stdout string
	Stderr string

	ExitCode int
	Pid      int
	Duration time.Duration
}

// Process is a handle to a running child.
//
// The handle is the escape hatch for callers that need cancellation or
// timeouts: use Signal or Kill, then Wait.
type Process struct {
	// ID uniquely identifies the invocation in log records.
	ID string

	command string
	args    []string
	opts    *config.Options
	log     *slog.Logger

	cmd     *exec.Cmd
	stdin   io.WriteCloser
	stdout  outputBuffer
	stderr  outputBuffer
	readers errgroup.Group
	started time.Time

	done   chan struct{}
	result *Result
	err    error
}

// Pid returns the operating system process id of the child.
func (p *Process) Pid() int {
	return p.cmd.Process.Pid
}

// Stdin returns the write end of the child's stdin.
// Returns ErrStdinNotPiped unless stdin was started in pipe mode.
func (p *Process) Stdin() (io.WriteCloser, error) {
	if p.stdin == nil {
		return nil, errors.ErrStdinNotPiped
	}

	return p.stdin, nil
}

// Signal sends sig to the child.
func (p *Process) Signal(sig os.Signal) error {
	if err := p.cmd.Process.Signal(sig); err != nil {
		return fmt.Errorf("signal %s (pid %d): %w", filepath.Base(p.command), p.Pid(), err)
	}

	return nil
}

// Kill forcefully terminates the child.
// It's safe to call Kill on a process that already exited.
func (p *Process) Kill() error {
	select {
	case <-p.done:
		return nil
	default:
	}

	p.log.Debug("Killing child process", "pid", p.Pid())

	if err := p.cmd.Process.Kill(); err != nil && !stderrors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("kill %s (pid %d): %w", filepath.Base(p.command), p.Pid(), err)
	}

	return nil
}

// Done is closed once the child has exited and its output is fully collected.
func (p *Process) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the child exits or ctx is done.
//
// The result is non-nil whenever the child ran, including on ExitError.
// A done ctx returns ctx.Err() and leaves the child running; Wait may be
// called again later. Wait is safe to call from several goroutines.
func (p *Process) Wait(ctx context.Context) (*Result, error) {
	select {
	case <-p.done:
		return p.result, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// wait reaps the child once all output readers have finished.
func (p *Process) wait() {
	defer close(p.done)

	// Reads must complete before Wait closes the pipes.
	// See: https://pkg.go.dev/os/exec#Cmd.StdoutPipe
	readErr := p.readers.Wait()
	waitErr := p.cmd.Wait()

	p.result = &Result{
		Stdout:   p.stdout.String(),
		Stderr:   p.stderr.String(),
		Pid:      p.cmd.Process.Pid,
		Duration: time.Since(p.started),
	}

	if p.cmd.ProcessState != nil {
		p.result.ExitCode = p.cmd.ProcessState.ExitCode()
	}

	fields := []any{
		"command", filepath.Base(p.command),
		"code", p.result.ExitCode,
		"pid", p.result.Pid,
	}
	if p.result.Stdout != "" {
		fields = append(fields, "out", p.result.Stdout)
	}

	p.log.Debug("exited", fields...)

	switch {
	case waitErr != nil:
		p.err = p.exitError(waitErr)
	case readErr != nil:
		p.err = fmt.Errorf("read output of %s: %w", filepath.Base(p.command), readErr)
	}
}

// exitError converts a Wait error into an ExitError when the child ran.
func (p *Process) exitError(err error) error {
	exitErr, ok := stderrors.AsType[*exec.ExitError](err)
	if !ok {
		return fmt.Errorf("wait for %s: %w", filepath.Base(p.command), err)
	}

	result := &errors.ExitError{
		Command:       p.command,
		Args:          p.args,
		ArgString:     RedactArgs(p.command, p.args),
		ExitCode:      exitErr.ExitCode(),
		Stdout:        p.result.Stdout,
		Stderr:        p.result.Stderr,
		OutputLimit:   p.opts.ErrorOutputLimit,
		AlreadyLogged: p.opts.IsAlreadyLogged(exitErr.ExitCode()),
		Err:           err,
	}

	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		result.Signal = status.Signal().String()
	}

	p.log.Debug("Child process failed", "exit_code", result.ExitCode, "signal", result.Signal)

	return result
}
