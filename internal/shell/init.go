package shell

import (
	"fmt"
	"strings"
)

// Entrypoints are the navigation commands that get a shell wrapper.
// dirmapnewtab is left out since a shell cannot open tabs.
var Entrypoints = []string{"dirmapcommand", "dirmaptail"}

// wrapperTemplate works in both bash and zsh. %[1]s is the command name.
const wrapperTemplate = `%[1]s() {
    local result exit_code
    result="$(DIRNAV_HOST=shell command %[1]s "$@")"
    exit_code=$?
    if [[ $exit_code -ne 0 ]]; then
        [[ -n "$result" ]] && echo "$result" >&2
        return $exit_code
    fi
    if [[ -n "$result" ]]; then
        eval "$result"
    fi
}
`

func wrappers(shell string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# dirnav shell integration for %s\n", shell)
	for _, name := range Entrypoints {
		fmt.Fprintf(&b, wrapperTemplate, name)
	}
	return b.String()
}

// BashInit returns the bash initialization script
func BashInit() string {
	return wrappers("bash")
}

// ZshInit returns the zsh initialization script
func ZshInit() string {
	return wrappers("zsh")
}

// GetInit returns the initialization script for the given shell.
// The composed lines use backtick substitution, so only POSIX-style shells
// are supported.
func GetInit(shell string) (string, error) {
	switch shell {
	case "bash":
		return BashInit(), nil
	case "zsh":
		return ZshInit(), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s (supported: bash, zsh)", shell)
	}
}
