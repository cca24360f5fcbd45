package appbuilder

import (
	"log/slog"

	"github.com/wagiedev/app-builder-bin-go/internal/config"
	"github.com/wagiedev/app-builder-bin-go/internal/platform"
	"github.com/wagiedev/app-builder-bin-go/internal/resolver"
)

// Options configures a launch.
type Options struct {
	config.Options

	// Command replaces the resolved app-builder path in ExecuteAppBuilder.
	Command string

	// SevenZipPath is passed to app-builder as SZA_PATH by ExecuteAppBuilder.
	SevenZipPath string

	// ProcessConsumer receives the handle of the app-builder child started by
	// ExecuteAppBuilder before it is waited on.
	ProcessConsumer func(*Process)
}

// Option configures Options using the functional options pattern.
type Option func(*Options)

// applyOptions applies functional options to an Options struct.
func applyOptions(opts []Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// ===== Basic Configuration =====

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithCwd sets the working directory of the child.
func WithCwd(cwd string) Option {
	return func(o *Options) {
		o.Cwd = cwd
	}
}

// WithEnv adds or overrides environment variables of the child.
func WithEnv(env map[string]string) Option {
	return func(o *Options) {
		o.Env = env
	}
}

// WithBaseEnv replaces the parent environment the child starts from.
func WithBaseEnv(env []string) Option {
	return func(o *Options) {
		o.BaseEnv = env
	}
}

// ===== Stdio =====

// WithStdio sets every stream mode explicitly, bypassing debug-mode selection.
func WithStdio(stdio Stdio) Option {
	return func(o *Options) {
		o.Stdio = &stdio
	}
}

// WithPipeInput pipes stdin so the caller can write to the child via Process.Stdin.
func WithPipeInput() Option {
	return func(o *Options) {
		o.PipeInput = true
	}
}

// WithDebug overrides the DEBUG environment variable. In debug mode stdout
// and stderr are inherited instead of collected.
func WithDebug(enabled bool) Option {
	return func(o *Options) {
		o.Debug = &enabled
	}
}

// WithLogSpawn overrides APP_BUILDER_LOG_SPAWN and debug mode for spawn logging.
func WithLogSpawn(enabled bool) Option {
	return func(o *Options) {
		o.LogSpawn = &enabled
	}
}

// WithStdout sets a callback invoked for each collected stdout line.
func WithStdout(handler func(string)) Option {
	return func(o *Options) {
		o.OnStdout = handler
	}
}

// WithStderr sets a callback invoked for each collected stderr line.
func WithStderr(handler func(string)) Option {
	return func(o *Options) {
		o.OnStderr = handler
	}
}

// ===== Errors =====

// WithErrorOutputLimit keeps only the last n bytes of each stream in ExitError messages.
func WithErrorOutputLimit(n int) Option {
	return func(o *Options) {
		o.ErrorOutputLimit = n
	}
}

// WithAlreadyLoggedExitCodes marks exit codes after which the child has
// already reported its failure; the ExitError has AlreadyLogged set.
func WithAlreadyLoggedExitCodes(codes ...int) Option {
	return func(o *Options) {
		o.AlreadyLoggedExitCodes = codes
	}
}

// ===== app-builder =====

// WithCommand runs the given executable instead of the resolved app-builder.
func WithCommand(path string) Option {
	return func(o *Options) {
		o.Command = path
	}
}

// WithSevenZipPath sets the 7-Zip executable app-builder should use.
func WithSevenZipPath(path string) Option {
	return func(o *Options) {
		o.SevenZipPath = path
	}
}

// WithProcessConsumer receives the app-builder child handle before waiting.
func WithProcessConsumer(consumer func(*Process)) Option {
	return func(o *Options) {
		o.ProcessConsumer = consumer
	}
}

// ResolverOption configures a Resolver.
type ResolverOption func(*resolver.Config)

// WithBaseDir sets the directory holding the mac/, win/ and linux/ trees.
func WithBaseDir(dir string) ResolverOption {
	return func(c *resolver.Config) {
		c.BaseDir = dir
	}
}

// WithStrictPlatform rejects hosts other than darwin, windows and linux
// instead of falling back to the linux layout.
func WithStrictPlatform() ResolverOption {
	return func(c *resolver.Config) {
		c.Strict = true
	}
}

// WithHost resolves for another platform, e.g. to inspect a layout.
func WithHost(goos, goarch string) ResolverOption {
	return func(c *resolver.Config) {
		host := platform.Detect(goos, goarch)
		c.Host = &host
	}
}

// WithResolverLogger sets the logger for resolution.
func WithResolverLogger(logger *slog.Logger) ResolverOption {
	return func(c *resolver.Config) {
		c.Logger = logger
	}
}

// WithLookupEnv replaces os.LookupEnv for the override variables.
func WithLookupEnv(lookup func(string) (string, bool)) ResolverOption {
	return func(c *resolver.Config) {
		c.LookupEnv = lookup
	}
}
