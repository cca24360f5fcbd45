package launcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wagiedev/app-builder-bin-go/internal/config"
)

func TestResolveStdio(t *testing.T) {
	on := true
	off := false

	tests := []struct {
		name string
		opts *config.Options
		want config.Stdio
	}{
		{
			name: "normal mode collects output",
			opts: &config.Options{Debug: &off},
			want: config.Stdio{Stdin: config.StdioIgnore, Stdout: config.StdioPipe, Stderr: config.StdioPipe},
		},
		{
			name: "debug mode inherits output",
			opts: &config.Options{Debug: &on},
			want: config.Stdio{Stdin: config.StdioIgnore, Stdout: config.StdioInherit, Stderr: config.StdioInherit},
		},
		{
			name: "pipe input",
			opts: &config.Options{Debug: &off, PipeInput: true},
			want: config.Stdio{Stdin: config.StdioPipe, Stdout: config.StdioPipe, Stderr: config.StdioPipe},
		},
		{
			name: "debug from environment",
			opts: &config.Options{LookupEnv: envOf(map[string]string{"DEBUG": "electron-builder"})},
			want: config.Stdio{Stdin: config.StdioIgnore, Stdout: config.StdioInherit, Stderr: config.StdioInherit},
		},
		{
			name: "explicit stdio wins",
			opts: &config.Options{
				Debug:     &on,
				PipeInput: true,
				Stdio:     &config.Stdio{Stdin: config.StdioInherit, Stdout: config.StdioIgnore, Stderr: config.StdioPipe},
			},
			want: config.Stdio{Stdin: config.StdioInherit, Stdout: config.StdioIgnore, Stderr: config.StdioPipe},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ResolveStdio(tt.opts))
		})
	}
}
