package appbuilder

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("Test requires a POSIX shell")
	}
}

func writeScript(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755)
	require.NoError(t, err)

	return path
}

func noEnv(string) (string, bool) { return "", false }

// withoutEnv isolates a launch from the test process's DEBUG and LANG.
func withoutEnv() Option {
	return func(o *Options) {
		o.LookupEnv = noEnv
	}
}

func TestExecute_Success(t *testing.T) {
	skipOnWindows(t)

	out, err := Execute(context.Background(), "/bin/sh", []string{"-c", "echo ok"},
		WithDebug(false),
		WithLogger(NopLogger()),
		withoutEnv(),
	)

	require.NoError(t, err)
	require.Equal(t, "ok\n", out)
}

func TestExecute_ExitError(t *testing.T) {
	skipOnWindows(t)

	_, err := Execute(context.Background(), "/bin/sh", []string{"-c", "echo nope >&2; exit 5"},
		WithDebug(false),
		withoutEnv(),
	)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 5, exitErr.ExitCode)
	require.Equal(t, "nope\n", exitErr.Stderr)

	var abErr AppBuilderError
	require.ErrorAs(t, err, &abErr)
}

func TestStart_PipeInput(t *testing.T) {
	skipOnWindows(t)

	p, err := Start("/bin/sh", []string{"-c", "tr a-z A-Z"}, WithPipeInput(), WithDebug(false), withoutEnv())
	require.NoError(t, err)

	stdin, err := p.Stdin()
	require.NoError(t, err)

	_, err = stdin.Write([]byte("shout"))
	require.NoError(t, err)
	require.NoError(t, stdin.Close())

	result, err := p.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, "SHOUT", result.Stdout)
}

func TestRunAll_Independent(t *testing.T) {
	skipOnWindows(t)

	quiet := []Option{WithDebug(false), withoutEnv()}

	results, err := RunAll(context.Background(),
		Call{Command: "/bin/sh", Args: []string{"-c", "echo a"}, Options: quiet},
		Call{Command: "/bin/sh", Args: []string{"-c", "echo b"}, Options: quiet},
	)

	require.NoError(t, err)
	require.Equal(t, "a\n", results[0].Stdout)
	require.Equal(t, "b\n", results[1].Stdout)
}

func TestExecuteAppBuilder_Environment(t *testing.T) {
	skipOnWindows(t)

	script := writeScript(t, "app-builder", `echo "$FORCE_COLOR|$SZA_PATH|$ELECTRON_BUILDER_CACHE|$EXTRA|$*"`)

	out, err := executeAppBuilder(context.Background(), script, []string{"version"}, applyOptions([]Option{
		WithSevenZipPath("/opt/7za"),
		WithEnv(map[string]string{"EXTRA": "x"}),
		WithDebug(false),
		func(o *Options) {
			o.LookupEnv = func(key string) (string, bool) {
				if key == envCacheDir {
					return "/var/cache/eb", true
				}

				return "", false
			}
		},
	}))

	require.NoError(t, err)

	fields := strings.Split(strings.TrimSpace(out), "|")
	require.Len(t, fields, 5)
	require.Contains(t, []string{"0", "1"}, fields[0])
	require.Equal(t, "/opt/7za", fields[1])
	require.Equal(t, "/var/cache/eb", fields[2])
	require.Equal(t, "x", fields[3])
	require.Equal(t, "version", fields[4])
}

func TestExecuteAppBuilder_AlreadyLogged(t *testing.T) {
	skipOnWindows(t)

	script := writeScript(t, "app-builder", "exit 2")

	_, err := executeAppBuilder(context.Background(), script, nil, applyOptions([]Option{WithDebug(false), withoutEnv()}))

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.True(t, exitErr.AlreadyLogged)
}

func TestExecuteAppBuilder_ProcessConsumer(t *testing.T) {
	skipOnWindows(t)

	script := writeScript(t, "app-builder", "exec sleep 30")

	var consumed *Process

	_, err := executeAppBuilder(context.Background(), script, nil, applyOptions([]Option{
		WithDebug(false),
		withoutEnv(),
		WithProcessConsumer(func(p *Process) {
			consumed = p
			_ = p.Kill()
		}),
	}))

	require.NotNil(t, consumed)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, "killed", exitErr.Signal)
	require.False(t, exitErr.AlreadyLogged)
}

func TestExecuteAppBuilder_SpawnError(t *testing.T) {
	_, err := executeAppBuilder(context.Background(), filepath.Join(t.TempDir(), "missing"), nil, applyOptions(nil))

	var spawnErr *SpawnError
	require.ErrorAs(t, err, &spawnErr)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestExecuteAppBuilder_CommandAndPipeInput(t *testing.T) {
	skipOnWindows(t)

	script := writeScript(t, "app-builder", "tr a-z A-Z")

	out, err := ExecuteAppBuilder(context.Background(), nil,
		WithCommand(script),
		WithPipeInput(),
		WithDebug(true),
		withoutEnv(),
		WithProcessConsumer(func(p *Process) {
			stdin, err := p.Stdin()
			if err != nil {
				return
			}

			_, _ = stdin.Write([]byte("quiet"))
			_ = stdin.Close()
		}),
	)

	require.NoError(t, err)
	require.Equal(t, "QUIET", out)
}
