// Package navigator types composed dirmap lines into a terminal session.
package navigator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/roveo/dirnav/internal/compose"
	"github.com/roveo/dirnav/internal/terminal"
)

// Navigator sends composed lines to a terminal host
type Navigator struct {
	host   terminal.Host
	logger *slog.Logger
}

// New returns a Navigator for host
func New(host terminal.Host, logger *slog.Logger) *Navigator {
	return &Navigator{host: host, logger: logger}
}

// Navigate composes the lines for key and command and types them, in order,
// into the current tab (or a new tab in ModeNewTab). A missing window is
// reported at error level, so no log_level hides it, and is not an error.
func (n *Navigator) Navigate(ctx context.Context, key, command string, mode compose.Mode) error {
	lines := compose.Compose(key, command, mode)

	window, err := n.host.CurrentWindow(ctx)
	if errors.Is(err, terminal.ErrNoWindow) {
		n.logger.Error("No current window")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get current window: %w", err)
	}

	var tab terminal.Tab
	if mode == compose.ModeNewTab {
		tab, err = window.CreateTab(ctx)
	} else {
		tab, err = window.CurrentTab(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to get %s tab: %w", mode, err)
	}

	session, err := tab.CurrentSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current session: %w", err)
	}

	for i, line := range lines {
		n.logger.Debug("sending line", "mode", mode, "index", i, "text", line)
		if err := session.SendLine(ctx, line); err != nil {
			return fmt.Errorf("failed to send line %d: %w", i+1, err)
		}
	}
	return nil
}
