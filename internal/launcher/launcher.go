package launcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"slices"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/wagiedev/app-builder-bin-go/internal/config"
	"github.com/wagiedev/app-builder-bin-go/internal/errors"
)

// Call describes one launch for RunAll.
type Call struct {
	Command string
	Args    []string
	Options *config.Options
}

// Execute spawns command and waits for it to exit.
//
// It returns the collected stdout, or an empty string when stdout is not
// piped. A non-zero exit returns *errors.ExitError, a failed spawn
// *errors.SpawnError.
func Execute(ctx context.Context, command string, args []string, opts *config.Options) (string, error) {
	p, err := Start(command, args, opts)
	if err != nil {
		return "", err
	}

	result, err := p.Wait(ctx)
	if err != nil {
		return "", err
	}

	return result.Stdout, nil
}

// RunAll launches every call concurrently and waits for all of them.
//
// Results are returned in input order. A failing call does not stop the
// others; the first error encountered is returned alongside all results.
func RunAll(ctx context.Context, calls []Call) ([]*Result, error) {
	results := make([]*Result, len(calls))

	var g errgroup.Group

	for i, call := range calls {
		g.Go(func() error {
			p, err := Start(call.Command, call.Args, call.Options)
			if err != nil {
				return err
			}

			result, err := p.Wait(ctx)
			results[i] = result

			return err
		})
	}

	return results, g.Wait()
}

// Start spawns command with args and returns a handle to the running child.
//
// The args slice is copied; the caller may reuse it. Start never blocks on
// the child. Spawn failures (missing executable, permission denied, missing
// working directory) are returned as *errors.SpawnError.
func Start(command string, args []string, opts *config.Options) (*Process, error) {
	if command == "" {
		return nil, errors.ErrEmptyCommand
	}

	if opts == nil {
		opts = &config.Options{}
	}

	id := ulid.Make().String()

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}

	log = log.With("component", "launcher", "invocation_id", id)

	p := &Process{
		ID:      id,
		command: command,
		args:    slices.Clone(args),
		opts:    opts,
		log:     log,
		done:    make(chan struct{}),
	}

	if opts.LogSpawnEnabled() {
		fields := []any{"command", CommandLine(command, p.args)}
		if opts.Cwd != "" {
			fields = append(fields, "cwd", opts.Cwd)
		}

		log.Debug("spawning", fields...)
	}

	//nolint:gosec // G204: launching a caller-chosen executable is the purpose of this package
	cmd := exec.Command(command, p.args...)
	cmd.Dir = opts.Cwd
	cmd.Env = BuildEnvironment(opts)
	p.cmd = cmd

	stdio := ResolveStdio(opts)

	if err := p.attachStdin(stdio.Stdin); err != nil {
		return nil, &errors.SpawnError{Command: command, Err: err}
	}

	stdout, err := p.attachOutput(stdio.Stdout, stdio.StdoutTarget, os.Stdout, &cmd.Stdout, cmd.StdoutPipe)
	if err != nil {
		return nil, &errors.SpawnError{Command: command, Err: fmt.Errorf("stdout pipe: %w", err)}
	}

	stderr, err := p.attachOutput(stdio.Stderr, stdio.StderrTarget, os.Stderr, &cmd.Stderr, cmd.StderrPipe)
	if err != nil {
		return nil, &errors.SpawnError{Command: command, Err: fmt.Errorf("stderr pipe: %w", err)}
	}

	if err := cmd.Start(); err != nil {
		log.Debug("Failed to start child process", "command", command, "error", err)

		return nil, &errors.SpawnError{Command: command, Err: err}
	}

	p.started = time.Now()

	if stdout != nil {
		p.readers.Go(func() error { return drain(stdout, &p.stdout, opts.OnStdout) })
	}

	if stderr != nil {
		p.readers.Go(func() error { return drain(stderr, &p.stderr, opts.OnStderr) })
	}

	go p.wait()

	return p, nil
}

func (p *Process) attachStdin(mode config.StdioMode) error {
	switch mode {
	case config.StdioPipe:
		stdin, err := p.cmd.StdinPipe()
		if err != nil {
			return fmt.Errorf("stdin pipe: %w", err)
		}

		p.stdin = stdin
	case config.StdioInherit:
		p.cmd.Stdin = os.Stdin
	case config.StdioIgnore:
		p.cmd.Stdin = nil
	}

	return nil
}

// attachOutput wires one output stream. It returns the read end of the pipe
// in pipe mode and nil otherwise.
func (p *Process) attachOutput(
	mode config.StdioMode,
	target io.Writer,
	parent *os.File,
	field *io.Writer,
	pipe func() (io.ReadCloser, error),
) (io.ReadCloser, error) {
	switch mode {
	case config.StdioPipe:
		return pipe()
	case config.StdioInherit:
		if target != nil {
			*field = target
		} else {
			*field = parent
		}
	case config.StdioIgnore:
		*field = nil
	}

	return nil, nil
}
