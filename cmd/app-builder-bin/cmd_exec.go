package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	appbuilder "github.com/wagiedev/app-builder-bin-go"
)

func newExecCmd(flags *globalFlags) *cobra.Command {
	var (
		cwd       string
		command   string
		pipeInput bool
	)

	cmd := &cobra.Command{
		Use:   "exec [flags] -- [args...]",
		Short: "Run app-builder with the given arguments",
		Long: `Run app-builder with the given arguments.

Standard output is collected and printed once app-builder exits; its
progress log on standard error streams to the terminal. When app-builder
exits with code 2 it has already reported the failure and nothing more is
printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			debug := flags.debugEnabled(os.LookupEnv)

			opts := []appbuilder.Option{
				appbuilder.WithLogger(newLogger(cmd.ErrOrStderr(), debug)),
				appbuilder.WithDebug(debug),
				appbuilder.WithCwd(cwd),
			}
			if command != "" {
				opts = append(opts, appbuilder.WithCommand(command))
			}

			if pipeInput {
				opts = append(opts,
					appbuilder.WithPipeInput(),
					appbuilder.WithProcessConsumer(func(p *appbuilder.Process) {
						forwardStdin(p, cmd.InOrStdin())
					}),
				)
			}

			out, err := appbuilder.ExecuteAppBuilder(cmd.Context(), args, opts...)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), out)

			return nil
		},
	}

	cmd.Flags().StringVar(&cwd, "cwd", "", "working directory of app-builder")
	cmd.Flags().StringVar(&command, "command", "", "run this executable instead of the resolved app-builder")
	cmd.Flags().BoolVar(&pipeInput, "pipe-input", false, "forward this process's stdin to app-builder")

	return cmd
}

// forwardStdin copies r into the child's stdin and closes it at EOF.
func forwardStdin(p *appbuilder.Process, r io.Reader) {
	stdin, err := p.Stdin()
	if err != nil {
		return
	}

	go func() {
		_, _ = io.Copy(stdin, r)
		_ = stdin.Close()
	}()
}
