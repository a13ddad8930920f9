package compose

import "fmt"

// Mode selects where the composed lines go and which follow-up line is sent
type Mode string

const (
	ModeCurrentTab Mode = "current-tab"
	ModeNewTab     Mode = "new-tab"
	ModeTail       Mode = "tail"
)

// ListKey is the reserved key that lists every mapping instead of navigating
const ListKey = "list"

// Modes returns all supported modes in display order
func Modes() []Mode {
	return []Mode{ModeCurrentTab, ModeNewTab, ModeTail}
}

// ParseMode converts a mode name into a Mode
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unsupported mode: %s (supported: current-tab, new-tab, tail)", s)
}

// NavigateLine returns the line that changes into the directory mapped to key.
// The key is embedded verbatim; dirmap resolves (or rejects) it in the shell.
func NavigateLine(key string) string {
	return "cd \"`dirmap " + key + "`\" && clear"
}

// Compose returns the lines to type into a terminal session, in order.
func Compose(key, command string, mode Mode) []string {
	if key == ListKey {
		return []string{"dirmap list"}
	}

	lines := []string{NavigateLine(key)}
	switch mode {
	case ModeTail:
		lines = append(lines, "tailtrim")
	default:
		if command != "" {
			lines = append(lines, command)
		}
	}
	return lines
}
