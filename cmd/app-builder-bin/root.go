package main

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wagiedev/app-builder-bin-go/internal/config"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	debug bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:           "app-builder-bin",
		Short:         "Locate and run the prebuilt app-builder binary",
		Long:          "app-builder-bin resolves the platform-specific app-builder executable and runs it with the given arguments.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging and inherit child output (also enabled by DEBUG)")

	rootCmd.AddCommand(newPathCmd(flags))
	rootCmd.AddCommand(newLayoutCmd())
	rootCmd.AddCommand(newExecCmd(flags))

	return rootCmd
}

// debugEnabled reports whether --debug or DEBUG is set.
func (f *globalFlags) debugEnabled(lookupEnv func(string) (string, bool)) bool {
	return f.debug || config.DebugFromEnv(lookupEnv)
}

// newLogger returns a slog logger writing to w through charmbracelet/log.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	handler := log.NewWithOptions(w, log.Options{
		Prefix: "app-builder-bin",
		Level:  level,
	})

	return slog.New(handler)
}
