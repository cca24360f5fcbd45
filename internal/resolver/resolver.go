package resolver

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/wagiedev/app-builder-bin-go/internal/platform"
)

const (
	// BinaryName is the executable name of app-builder.
	BinaryName = "app-builder"

	// EnvUseSystem set to "true" selects the app-builder found on PATH.
	EnvUseSystem = "USE_SYSTEM_APP_BUILDER"

	// EnvCustomPath overrides resolution with a user-supplied path.
	EnvCustomPath = "CUSTOM_APP_BUILDER_PATH"
)

// Config holds configuration for path resolution.
type Config struct {
	// BaseDir is the directory holding the mac/, win/ and linux/ trees.
	// If empty, the directory of the running executable is used.
	BaseDir string

	// Host overrides the detected host platform. Nil means platform.Current().
	Host *platform.Host

	// Strict rejects hosts outside darwin, windows and linux instead of
	// falling back to the linux layout.
	Strict bool

	// LookupEnv reads environment overrides. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)

	// Getwd anchors relative custom paths. Defaults to os.Getwd.
	Getwd func() (string, error)

	// Logger is an optional logger for resolution.
	// If nil, a default no-op logger is used.
	Logger *slog.Logger
}

// Resolver computes the app-builder command.
type Resolver interface {
	// Resolve returns either the bare command name or an absolute path.
	Resolve() (string, error)
}

// resolver implements the Resolver interface.
type resolver struct {
	cfg *Config
	log *slog.Logger
}

// Compile-time verification that resolver implements Resolver.
var _ Resolver = (*resolver)(nil)

// NewResolver creates a new resolver with the given configuration.
func NewResolver(cfg *Config) Resolver {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}

	return &resolver{
		cfg: cfg,
		log: log,
	}
}

// Resolve returns the command used to invoke app-builder.
func (r *resolver) Resolve() (string, error) {
	if value, _ := r.lookupEnv(EnvUseSystem); value == "true" {
		r.log.Debug("Using system app-builder", "env", EnvUseSystem)

		return BinaryName, nil
	}

	if value, _ := r.lookupEnv(EnvCustomPath); value != "" {
		path, err := r.absolute(value)
		if err != nil {
			return "", err
		}

		r.log.Debug("Using custom app-builder path", "env", EnvCustomPath, "path", path)

		return path, nil
	}

	host := platform.Current()
	if r.cfg.Host != nil {
		host = *r.cfg.Host
	}

	if r.cfg.Strict {
		if _, err := platform.ParseStrict(host.GOOS, host.GOARCH); err != nil {
			r.log.Error("Unsupported platform", "goos", host.GOOS, "goarch", host.GOARCH)

			return "", err
		}
	}

	baseDir, err := r.baseDir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(baseDir, Layout(host.Platform, host.Arch))
	r.log.Debug("Resolved bundled app-builder", "platform", host.Platform.String(), "arch", host.Arch, "path", path)

	return path, nil
}

// Layout returns the artifact path of app-builder relative to the base directory.
func Layout(p platform.Platform, arch string) string {
	switch p {
	case platform.Mac:
		return filepath.Join("mac", MacBinaryName(arch))
	case platform.Windows:
		return filepath.Join("win", arch, BinaryName+".exe")
	case platform.Linux:
		return filepath.Join("linux", arch, BinaryName)
	default:
		return filepath.Join("linux", arch, BinaryName)
	}
}

// MacBinaryName returns the file name of the macOS artifact. The mac
// artifacts use Go's "amd64" for x64; other architectures keep their name.
func MacBinaryName(arch string) string {
	if arch == "x64" {
		arch = "amd64"
	}

	return BinaryName + "_" + arch
}

func (r *resolver) lookupEnv(key string) (string, bool) {
	if r.cfg.LookupEnv != nil {
		return r.cfg.LookupEnv(key)
	}

	return os.LookupEnv(key)
}

// absolute anchors a relative path at the working directory.
func (r *resolver) absolute(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	getwd := r.cfg.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}

	cwd, err := getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	return filepath.Join(cwd, path), nil
}

func (r *resolver) baseDir() (string, error) {
	if r.cfg.BaseDir != "" {
		return r.absolute(r.cfg.BaseDir)
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Dir(exe), nil
}
