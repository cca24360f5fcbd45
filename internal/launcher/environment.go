package launcher

import (
	"maps"
	"os"
	"runtime"
	"slices"
	"strings"

	"github.com/wagiedev/app-builder-bin-go/internal/config"
)

const (
	// defaultLinuxLocale is used on Linux when the parent has no LANG.
	defaultLinuxLocale = "C.UTF-8"
	// defaultLocale is used on every other non-Windows host.
	defaultLocale = "en_US.UTF-8"
)

// localeVariables are forced to the same locale on non-Windows hosts.
var localeVariables = []string{"LANG", "LC_CTYPE", "LC_ALL"}

// BuildEnvironment constructs the environment variables for the child process.
// A nil result means the child inherits the parent's environment unchanged.
func BuildEnvironment(opts *config.Options) []string {
	return buildEnvironment(runtime.GOOS, opts)
}

func buildEnvironment(goos string, opts *config.Options) []string {
	windows := goos == "windows"

	// Windows passes the environment through untouched
	if windows && opts.BaseEnv == nil && len(opts.Env) == 0 {
		return nil
	}

	base := opts.BaseEnv
	if base == nil {
		base = os.Environ()
	}

	env := slices.Clone(base)

	for _, key := range slices.Sorted(maps.Keys(opts.Env)) {
		env = setEnv(env, key, opts.Env[key], windows)
	}

	if windows {
		return env
	}

	locale := Locale(goos, lookupEnv(opts))
	for _, key := range localeVariables {
		env = setEnv(env, key, locale, false)
	}

	return env
}

// Locale returns the UTF-8 locale forced onto children on a non-Windows host.
// Without LC_CTYPE some tools (dpkg) print escaped unicode.
func Locale(goos string, lookupEnv func(string) (string, bool)) string {
	if goos != "linux" {
		return defaultLocale
	}

	if lang, _ := lookupEnv("LANG"); lang != "" {
		return lang
	}

	return defaultLinuxLocale
}

// setEnv replaces every entry of key with key=value.
func setEnv(env []string, key, value string, foldCase bool) []string {
	env = slices.DeleteFunc(env, func(entry string) bool {
		name, _, _ := strings.Cut(entry, "=")
		if foldCase {
			return strings.EqualFold(name, key)
		}

		return name == key
	})

	return append(env, key+"="+value)
}

func lookupEnv(opts *config.Options) func(string) (string, bool) {
	if opts.LookupEnv != nil {
		return opts.LookupEnv
	}

	return os.LookupEnv
}
