package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appbuilder "github.com/wagiedev/app-builder-bin-go"
)

func newPathCmd(flags *globalFlags) *cobra.Command {
	var (
		baseDir string
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the resolved app-builder command",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if baseDir == "" && !strict {
				path, err := appbuilder.AppBuilderPath()
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), path)

				return nil
			}

			opts := []appbuilder.ResolverOption{
				appbuilder.WithResolverLogger(newLogger(cmd.ErrOrStderr(), flags.debugEnabled(os.LookupEnv))),
			}
			if baseDir != "" {
				opts = append(opts, appbuilder.WithBaseDir(baseDir))
			}

			if strict {
				opts = append(opts, appbuilder.WithStrictPlatform())
			}

			path, err := appbuilder.NewResolver(opts...).Resolve()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)

			return nil
		},
	}

	cmd.Flags().StringVar(&baseDir, "base-dir", "", "directory holding the mac/, win/ and linux/ trees (default: next to this executable)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on platforms other than darwin, windows and linux")

	return cmd
}
