package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	appbuilder "github.com/wagiedev/app-builder-bin-go"
)

func newLayoutCmd() *cobra.Command {
	var goos, goarch string

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the bundled artifact path for a platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), appbuilder.Layout(goos, goarch))

			return nil
		},
	}

	cmd.Flags().StringVar(&goos, "os", runtime.GOOS, "target GOOS")
	cmd.Flags().StringVar(&goarch, "arch", runtime.GOARCH, "target GOARCH")

	return cmd
}
