// Command app-builder-bin resolves and runs the bundled app-builder executable.
package main

import (
	"errors"
	"fmt"
	"os"

	appbuilder "github.com/wagiedev/app-builder-bin-go"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprint(os.Stderr, renderError(err))

		var exitErr *appbuilder.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode > 0 {
			os.Exit(exitErr.ExitCode)
		}

		os.Exit(1)
	}
}
