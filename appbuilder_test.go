package appbuilder

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppBuilderPath_Cached(t *testing.T) {
	first, err := AppBuilderPath()
	require.NoError(t, err)

	// Resolution happens once; later changes to the environment are ignored
	t.Setenv(EnvUseSystem, "true")
	t.Setenv(EnvCustomPath, filepath.Join(t.TempDir(), "other"))

	second, err := AppBuilderPath()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestNewResolver_BaseDir(t *testing.T) {
	base := t.TempDir()

	path, err := NewResolver(
		WithBaseDir(base),
		WithHost("darwin", "amd64"),
		WithLookupEnv(func(string) (string, bool) { return "", false }),
		WithResolverLogger(NopLogger()),
	).Resolve()

	require.NoError(t, err)
	require.Equal(t, filepath.Join(base, "mac", "app-builder_amd64"), path)
}

func TestNewResolver_Strict(t *testing.T) {
	_, err := NewResolver(
		WithBaseDir(t.TempDir()),
		WithHost("aix", "ppc64"),
		WithStrictPlatform(),
		WithLookupEnv(func(string) (string, bool) { return "", false }),
	).Resolve()

	require.Error(t, err)
	require.IsType(t, &UnsupportedPlatformError{}, err)
}

func TestNewResolver_SystemOverride(t *testing.T) {
	path, err := NewResolver(
		WithLookupEnv(func(key string) (string, bool) {
			if key == EnvUseSystem {
				return "true", true
			}

			return "", false
		}),
	).Resolve()

	require.NoError(t, err)
	require.Equal(t, BinaryName, path)
}

func TestLayout(t *testing.T) {
	require.Equal(t, filepath.Join("mac", "app-builder_amd64"), Layout("darwin", "amd64"))
	require.Equal(t, filepath.Join("mac", "app-builder_arm64"), Layout("darwin", "arm64"))
	require.Equal(t, filepath.Join("win", "ia32", "app-builder.exe"), Layout("windows", "386"))
	require.Equal(t, filepath.Join("linux", "x64", "app-builder"), Layout("linux", "amd64"))
	require.Equal(t, filepath.Join("linux", "arm64", "app-builder"), Layout("netbsd", "arm64"))
}

func TestCurrentHost(t *testing.T) {
	host := CurrentHost()

	require.Equal(t, runtime.GOOS, host.GOOS)
	require.Equal(t, runtime.GOARCH, host.GOARCH)
}
