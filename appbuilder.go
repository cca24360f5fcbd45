package appbuilder

import (
	"sync"

	"github.com/wagiedev/app-builder-bin-go/internal/platform"
	"github.com/wagiedev/app-builder-bin-go/internal/resolver"
)

const (
	// BinaryName is the executable name of app-builder.
	BinaryName = resolver.BinaryName

	// EnvUseSystem set to "true" selects the app-builder found on PATH.
	EnvUseSystem = resolver.EnvUseSystem

	// EnvCustomPath overrides resolution with a user-supplied path.
	EnvCustomPath = resolver.EnvCustomPath
)

// Resolver computes the app-builder command.
type Resolver = resolver.Resolver

// appBuilderPath resolves once for the lifetime of the process.
// Later environment changes are not observed.
var appBuilderPath = sync.OnceValues(func() (string, error) {
	return resolver.NewResolver(nil).Resolve()
})

// AppBuilderPath returns the command used to invoke app-builder: the bare
// name, a custom path, or the bundled binary for the host platform.
func AppBuilderPath() (string, error) {
	return appBuilderPath()
}

// NewResolver creates a resolver that is not cached process-wide.
func NewResolver(opts ...ResolverOption) Resolver {
	cfg := &resolver.Config{}
	for _, opt := range opts {
		opt(cfg)
	}

	return resolver.NewResolver(cfg)
}

// Layout returns the bundled artifact path relative to the base directory
// for the given GOOS and GOARCH.
func Layout(goos, goarch string) string {
	host := platform.Detect(goos, goarch)

	return resolver.Layout(host.Platform, host.Arch)
}

// CurrentHost returns the platform of the running process.
func CurrentHost() Host {
	return platform.Current()
}
