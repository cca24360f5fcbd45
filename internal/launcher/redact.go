package launcher

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// passwordPattern matches a credential flag and the value that follows it.
var passwordPattern = regexp.MustCompile(`(-String |-P |pass:| /p |-pass |--secretKey |--accessKeyId |-p )([^ ]+)`)

// macHostShare is the Parallels shared-folder prefix passed to appx tooling
// after /p; it is a path, not a password.
const macHostShare = `\\Mac\Host\\`

// unredactedCommands lists commands whose arguments are logged verbatim.
var unredactedCommands = map[string]struct{}{
	"docker": {},
}

// secretFlags are the argument tokens whose following argument is a credential.
var secretFlags = map[string]struct{}{
	"-String":       {},
	"-P":            {},
	"-pass":         {},
	"--secretKey":   {},
	"--accessKeyId": {},
	"-p":            {},
	"/p":            {},
}

// passPrefix marks an inline credential such as openssl's pass:secret.
const passPrefix = "pass:"

// RemovePassword replaces credential values with their sha256 hash.
func RemovePassword(input string) string {
	return passwordPattern.ReplaceAllStringFunc(input, func(match string) string {
		sub := passwordPattern.FindStringSubmatch(match)
		prefix, value := sub[1], sub[2]

		if strings.TrimSpace(prefix) == "/p" && strings.HasPrefix(value, macHostShare) {
			return match
		}

		return prefix + hashSecret(value)
	})
}

func hashSecret(value string) string {
	sum := sha256.Sum256([]byte(value))

	return hex.EncodeToString(sum[:]) + " (sha256 hash)"
}

// FormatArgs joins args into one shell-quoted string.
func FormatArgs(args []string) string {
	quoted := make([]string, 0, len(args))

	for _, arg := range args {
		quoted = append(quoted, quote(arg))
	}

	return strings.Join(quoted, " ")
}

func quote(arg string) string {
	q, err := syntax.Quote(arg, syntax.LangBash)
	if err != nil {
		return strconv.Quote(arg)
	}

	return q
}

// IsUnredacted reports whether command is on the unredacted allow-list.
func IsUnredacted(command string) bool {
	name := strings.TrimSuffix(strings.ToLower(filepath.Base(command)), ".exe")
	_, ok := unredactedCommands[name]

	return ok
}

// RedactArgs returns the quoted argument string of command with credentials
// hashed unless command is on the allow-list.
//
// Credentials are found per argument, so a value containing spaces or shell
// metacharacters is hashed whole. Remaining arguments are still scanned for
// inline credentials before quoting.
func RedactArgs(command string, args []string) string {
	if IsUnredacted(command) {
		return FormatArgs(args)
	}

	parts := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if value, ok := strings.CutPrefix(arg, passPrefix); ok {
			parts = append(parts, passPrefix+hashSecret(value))

			continue
		}

		parts = append(parts, quote(RemovePassword(arg)))

		if _, ok := secretFlags[arg]; !ok || i+1 == len(args) {
			continue
		}

		i++

		value := args[i]
		if arg == "/p" && strings.HasPrefix(value, macHostShare) {
			parts = append(parts, quote(value))

			continue
		}

		parts = append(parts, hashSecret(value))
	}

	return strings.Join(parts, " ")
}

// CommandLine reconstructs the logged command line for a spawn.
func CommandLine(command string, args []string) string {
	if len(args) == 0 {
		return command
	}

	return command + " " + RedactArgs(command, args)
}
