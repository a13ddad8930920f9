package tmux

import (
	"context"
	"os"
	"strings"
)

// InTmux returns true if currently running inside a tmux session
func InTmux() bool {
	return os.Getenv("TMUX") != ""
}

// tmux executes a tmux command and returns its trimmed output
func (h *Host) tmux(ctx context.Context, args ...string) (string, error) {
	output, err := h.Run(ctx, "tmux", args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// currentSession returns the name of the current tmux session
// Returns empty string if not in tmux
func (h *Host) currentSession(ctx context.Context) string {
	if !InTmux() {
		return ""
	}
	name, err := h.tmux(ctx, "display-message", "-p", "#{session_name}")
	if err != nil {
		return ""
	}
	return name
}

// sessionExists checks if a tmux session with the given name exists
func (h *Host) sessionExists(ctx context.Context, name string) bool {
	_, err := h.tmux(ctx, "has-session", "-t", name)
	return err == nil
}

// createSession creates a new detached tmux session
func (h *Host) createSession(ctx context.Context, name string) error {
	_, err := h.tmux(ctx, "new-session", "-d", "-s", name)
	return err
}

// createWindow creates a new window in the given session and returns its id
func (h *Host) createWindow(ctx context.Context, session string) (string, error) {
	// Use "session:" (with trailing colon) to target the session without
	// specifying a window index. This lets tmux automatically find the next
	// available index, avoiding "index in use" errors when the index after
	// the current window is already taken.
	return h.tmux(ctx, "new-window", "-t", session+":", "-P", "-F", "#{window_id}")
}

// activeWindow returns the id of the active window in the session
func (h *Host) activeWindow(ctx context.Context, session string) (string, error) {
	return h.tmux(ctx, "display-message", "-p", "-t", session+":", "#{window_id}")
}

// activePane returns the id of the active pane in the window
func (h *Host) activePane(ctx context.Context, windowID string) (string, error) {
	return h.tmux(ctx, "display-message", "-p", "-t", windowID, "#{pane_id}")
}

// sendLine types text literally into the pane and presses Enter
func (h *Host) sendLine(ctx context.Context, paneID, text string) error {
	if text != "" {
		if _, err := h.tmux(ctx, "send-keys", "-t", paneID, "-l", "--", text); err != nil {
			return err
		}
	}
	_, err := h.tmux(ctx, "send-keys", "-t", paneID, "Enter")
	return err
}
