//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	appbuilder "github.com/wagiedev/app-builder-bin-go"
)

// skipIfBinaryMissing skips the test if the error indicates app-builder could not be spawned.
func skipIfBinaryMissing(t *testing.T, err error) {
	t.Helper()

	if _, ok := errors.AsType[*appbuilder.SpawnError](err); ok {
		t.Skip("app-builder binary not available")
	}
}

func resolvedPath(t *testing.T) string {
	t.Helper()

	path, err := appbuilder.AppBuilderPath()
	require.NoError(t, err)

	if path != appbuilder.BinaryName {
		if _, statErr := os.Stat(path); statErr != nil {
			t.Skipf("app-builder not present at %s", path)
		}
	}

	return path
}

// TestAppBuilder_Version runs the real binary and checks it prints a version.
func TestAppBuilder_Version(t *testing.T) {
	resolvedPath(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	out, err := appbuilder.ExecuteAppBuilder(ctx, []string{"--version"}, appbuilder.WithDebug(false))
	if err != nil {
		skipIfBinaryMissing(t, err)
		t.Fatalf("app-builder --version failed: %v", err)
	}

	require.NotEmpty(t, strings.TrimSpace(out))
}

// TestAppBuilder_UnknownCommand checks that a failing run surfaces an ExitError.
func TestAppBuilder_UnknownCommand(t *testing.T) {
	path := resolvedPath(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := appbuilder.Execute(ctx, path, []string{"no-such-command"}, appbuilder.WithDebug(false))
	skipIfBinaryMissing(t, err)
	require.Error(t, err)

	exitErr, ok := errors.AsType[*appbuilder.ExitError](err)
	require.True(t, ok, "expected ExitError, got %T", err)
	require.NotZero(t, exitErr.ExitCode)
}

// TestAppBuilder_ProcessConsumer checks the handle is delivered before completion.
func TestAppBuilder_ProcessConsumer(t *testing.T) {
	resolvedPath(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var pid int

	_, err := appbuilder.ExecuteAppBuilder(ctx, []string{"--version"},
		appbuilder.WithDebug(false),
		appbuilder.WithProcessConsumer(func(p *appbuilder.Process) { pid = p.Pid() }),
	)
	if err != nil {
		skipIfBinaryMissing(t, err)
		t.Fatalf("app-builder --version failed: %v", err)
	}

	require.Positive(t, pid)
}
