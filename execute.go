package appbuilder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jwalton/go-supportscolor"

	"github.com/wagiedev/app-builder-bin-go/internal/config"
	"github.com/wagiedev/app-builder-bin-go/internal/launcher"
)

const (
	// envForceColor tells app-builder whether to colour its output.
	envForceColor = "FORCE_COLOR"
	// envSevenZipPath points app-builder at a 7-Zip executable.
	envSevenZipPath = "SZA_PATH"
	// envCacheDir is app-builder's download cache directory.
	envCacheDir = "ELECTRON_BUILDER_CACHE"

	// exitCodeReported is returned by app-builder after it printed its own error.
	exitCodeReported = 2
)

// Call describes one launch for RunAll.
type Call struct {
	Command string
	Args    []string
	Options []Option
}

// Execute spawns command with args and waits for it to exit.
//
// It returns the collected stdout, or an empty string when stdout is
// inherited. A non-zero exit returns *ExitError; a failed spawn *SpawnError.
func Execute(ctx context.Context, command string, args []string, opts ...Option) (string, error) {
	options := applyOptions(opts)

	return launcher.Execute(ctx, command, args, &options.Options)
}

// Start spawns command with args and returns a handle without waiting.
func Start(command string, args []string, opts ...Option) (*Process, error) {
	options := applyOptions(opts)

	return launcher.Start(command, args, &options.Options)
}

// RunAll runs independent launches concurrently. Results keep the order of
// calls; the first error is returned once every launch has finished.
func RunAll(ctx context.Context, calls ...Call) ([]*Result, error) {
	launches := make([]launcher.Call, 0, len(calls))

	for _, call := range calls {
		options := applyOptions(call.Options)
		launches = append(launches, launcher.Call{
			Command: call.Command,
			Args:    call.Args,
			Options: &options.Options,
		})
	}

	return launcher.RunAll(ctx, launches)
}

// ExecuteAppBuilder runs the resolved app-builder with args.
//
// Unless WithStdio is given, stdin is ignored (piped with WithPipeInput),
// stdout is collected and returned, and stderr (app-builder's progress log)
// is forwarded to the parent's stdout. Exit code 2 means app-builder already
// printed the error; the returned *ExitError has AlreadyLogged set.
func ExecuteAppBuilder(ctx context.Context, args []string, opts ...Option) (string, error) {
	options := applyOptions(opts)

	command := options.Command
	if command == "" {
		path, err := AppBuilderPath()
		if err != nil {
			return "", fmt.Errorf("resolve app-builder: %w", err)
		}

		command = path
	}

	return executeAppBuilder(ctx, command, args, options)
}

func executeAppBuilder(ctx context.Context, command string, args []string, options *Options) (string, error) {
	launch := options.Options
	launch.Env = appBuilderEnv(options)
	launch.AlreadyLoggedExitCodes = append([]int{exitCodeReported}, launch.AlreadyLoggedExitCodes...)

	if launch.Stdio == nil {
		launch.Stdio = &config.Stdio{
			Stdin:        config.StdioIgnore,
			Stdout:       config.StdioPipe,
			Stderr:       config.StdioInherit,
			StderrTarget: os.Stdout,
		}

		if launch.PipeInput {
			launch.Stdio.Stdin = config.StdioPipe
		}
	}

	p, err := launcher.Start(command, args, &launch)
	if err != nil {
		return "", err
	}

	if options.ProcessConsumer != nil {
		options.ProcessConsumer(p)
	}

	result, err := p.Wait(ctx)
	if err != nil {
		return "", err
	}

	return result.Stdout, nil
}

// appBuilderEnv returns the variables app-builder expects, with caller
// overrides applied last.
func appBuilderEnv(options *Options) map[string]string {
	env := map[string]string{
		envForceColor: "0",
	}

	if supportscolor.Stdout().SupportsColor {
		env[envForceColor] = "1"
	}

	if options.SevenZipPath != "" {
		env[envSevenZipPath] = options.SevenZipPath
	}

	lookup := options.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if cacheDir, _ := lookup(envCacheDir); cacheDir != "" {
		if abs, err := filepath.Abs(cacheDir); err == nil {
			env[envCacheDir] = abs
		}
	}

	for key, value := range options.Env {
		env[key] = value
	}

	return env
}
