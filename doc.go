// Package appbuilder locates the prebuilt app-builder executable for the
// current platform and runs it, or any other command, as a child process.
//
// # Resolving app-builder
//
// The path is resolved once per process and cached:
//
//	path, err := appbuilder.AppBuilderPath()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Resolution honours two environment variables, checked in order:
//   - USE_SYSTEM_APP_BUILDER=true uses the app-builder found on PATH
//   - CUSTOM_APP_BUILDER_PATH points at a specific binary; relative paths
//     are resolved against the working directory
//
// Otherwise the bundled layout next to the running executable is used:
// mac/app-builder_<arch>, win/<arch>/app-builder.exe or linux/<arch>/app-builder.
// Use NewResolver for a different base directory or strict platform checks.
//
// # Running commands
//
// Execute spawns a command and waits for it:
//
//	out, err := appbuilder.Execute(ctx, path, []string{"blockmap", "--input", "app.zip"},
//	    appbuilder.WithLogger(slog.Default()),
//	    appbuilder.WithCwd(dir),
//	)
//
// Unless debug mode is on (DEBUG set, or WithDebug(true)), stdout and stderr
// are collected in memory and reported in *ExitError when the child fails.
// In debug mode they are connected straight to the parent's terminal.
//
// Start returns a *Process handle for callers that need to write to stdin,
// send signals, or bound the wait with a context:
//
//	p, err := appbuilder.Start(path, args, appbuilder.WithPipeInput())
//	if err != nil {
//	    return err
//	}
//	ctx, cancel := context.WithTimeout(ctx, time.Minute)
//	defer cancel()
//	if _, err := p.Wait(ctx); errors.Is(err, context.DeadlineExceeded) {
//	    _ = p.Kill()
//	}
//
// # Error Handling
//
// Failures are returned as typed errors:
//   - *SpawnError: the process could not be created
//   - *ExitError: the process exited non-zero or was killed by a signal
//   - *UnsupportedPlatformError: strict resolution on an unknown platform
//
// Nothing is retried.
package appbuilder
