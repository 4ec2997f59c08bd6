package safety

import (
	"strings"

	"github.com/mitchellh/go-homedir"
)

// Escaping here is defense-in-depth: commands never pass through a shell,
// but helper paths (pointer warping, notifications) still interpolate
// strings and must do so safely.

// EscapeArgument escapes one argument per POSIX single-quote rules. Safe
// arguments pass through unchanged.
func EscapeArgument(arg string) string {
	if arg == "" {
		return "''"
	}
	if isSafeArgument(arg) {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

func isSafeArgument(arg string) bool {
	for _, r := range arg {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_' || r == '.' || r == '-' || r == '/' || r == '@' || r == ':' || r == '+':
		default:
			return false
		}
	}
	return true
}

// EscapeNotifyArgument escapes a string destined for a notification body.
// Notification daemons interpret markup and escapes, so this is stricter
// than EscapeArgument.
func EscapeNotifyArgument(arg string) string {
	var b strings.Builder
	b.Grow(len(arg) * 2)
	for _, r := range arg {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`'\''`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '"':
			b.WriteString(`\"`)
		case '$':
			b.WriteString(`\$`)
		case '`':
			b.WriteString("\\`")
		default:
			b.WriteRune(r)
		}
	}
	return "'" + b.String() + "'"
}

// IsSafeForShell reports whether a string is free of shell metacharacters.
func IsSafeForShell(s string) bool {
	return !strings.ContainsAny(s, ";&|`$()<>{}'\"\\[]?*~ \t\n\r")
}

// allowedPrefixes are the system directories an absolute command path may
// live under, in addition to the user's home directory.
var allowedPrefixes = []string{
	"/usr/bin/",
	"/bin/",
	"/usr/local/bin/",
	"/usr/sbin/",
	"/sbin/",
}

// IsAllowedPath reports whether a command path may be executed. Bare
// command names resolve through PATH and are allowed; absolute paths must
// sit under the home directory or a standard binary directory.
func IsAllowedPath(cmdPath string) bool {
	if !strings.Contains(cmdPath, "/") {
		return true
	}

	if home, err := homedir.Dir(); err == nil && home != "" {
		prefix := strings.TrimSuffix(home, "/") + "/"
		if strings.HasPrefix(cmdPath, prefix) {
			return true
		}
	}

	for _, dir := range allowedPrefixes {
		if strings.HasPrefix(cmdPath, dir) {
			return true
		}
	}
	return false
}

// SplitCommand splits a command string into the program and its
// whitespace-delimited arguments. There is no quoting support, so an
// argument cannot contain spaces; that limitation is deliberate.
func SplitCommand(command string) (program string, args []string) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}
