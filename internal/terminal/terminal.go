package terminal

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNoWindow is returned by Host.CurrentWindow when the host has no active window
var ErrNoWindow = errors.New("no current window")

// Host is a terminal application that can be scripted
type Host interface {
	CurrentWindow(ctx context.Context) (Window, error)
}

// Window holds tabs
type Window interface {
	CurrentTab(ctx context.Context) (Tab, error)
	CreateTab(ctx context.Context) (Tab, error)
}

// Tab holds the session that receives input
type Tab interface {
	CurrentSession(ctx context.Context) (Session, error)
}

// Session is an addressable text-input target (a pane)
type Session interface {
	// SendLine types text into the session followed by Return
	SendLine(ctx context.Context, text string) error
}

// Runner executes an external program and returns its output
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs the program with os/exec. On failure the trimmed combined
// output is used as the error message when there is any.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		errMsg := strings.TrimSpace(string(output))
		if errMsg != "" {
			return output, fmt.Errorf("%s", errMsg)
		}
		return output, err
	}
	return output, nil
}
