package launcher

import "github.com/wagiedev/app-builder-bin-go/internal/config"

// ResolveStdio returns the stream modes for a launch.
//
// An explicit opts.Stdio wins. Otherwise stdin is piped only for PipeInput,
// and stdout/stderr are inherited in debug mode and piped (collected) otherwise.
func ResolveStdio(opts *config.Options) config.Stdio {
	if opts.Stdio != nil {
		return *opts.Stdio
	}

	stdio := config.Stdio{
		Stdin:  config.StdioIgnore,
		Stdout: config.StdioPipe,
		Stderr: config.StdioPipe,
	}

	if opts.PipeInput {
		stdio.Stdin = config.StdioPipe
	}

	if opts.DebugEnabled() {
		stdio.Stdout = config.StdioInherit
		stdio.Stderr = config.StdioInherit
	}

	return stdio
}
