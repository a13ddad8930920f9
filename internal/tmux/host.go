package tmux

import (
	"context"
	"fmt"

	"github.com/roveo/dirnav/internal/terminal"
)

// Host maps the terminal model onto tmux: a session is the window, tmux
// windows are tabs and panes are sessions.
type Host struct {
	// Session is the tmux session to use.
	// Empty means the session this process runs in.
	Session string
	Run     terminal.Runner
}

// New returns a Host bound to the given session name
func New(session string) *Host {
	return &Host{Session: session, Run: terminal.ExecRunner}
}

// Available reports whether the host can resolve a session right now
func (h *Host) Available(ctx context.Context) bool {
	if h.Session != "" {
		return h.sessionExists(ctx, h.Session)
	}
	return h.currentSession(ctx) != ""
}

// CurrentWindow resolves the tmux session. A configured session that does
// not exist yet is created detached.
func (h *Host) CurrentWindow(ctx context.Context) (terminal.Window, error) {
	name := h.Session
	if name == "" {
		name = h.currentSession(ctx)
		if name == "" {
			return nil, terminal.ErrNoWindow
		}
		return &window{host: h, session: name}, nil
	}

	if !h.sessionExists(ctx, name) {
		if err := h.createSession(ctx, name); err != nil {
			return nil, fmt.Errorf("failed to create tmux session %s: %w", name, err)
		}
	}
	return &window{host: h, session: name}, nil
}

type window struct {
	host    *Host
	session string
}

func (w *window) CurrentTab(ctx context.Context) (terminal.Tab, error) {
	id, err := w.host.activeWindow(ctx, w.session)
	if err != nil {
		return nil, fmt.Errorf("failed to get active tmux window: %w", err)
	}
	return &tab{host: w.host, id: id}, nil
}

func (w *window) CreateTab(ctx context.Context) (terminal.Tab, error) {
	id, err := w.host.createWindow(ctx, w.session)
	if err != nil {
		return nil, fmt.Errorf("failed to create tmux window: %w", err)
	}
	return &tab{host: w.host, id: id}, nil
}

type tab struct {
	host *Host
	id   string
}

func (t *tab) CurrentSession(ctx context.Context) (terminal.Session, error) {
	id, err := t.host.activePane(ctx, t.id)
	if err != nil {
		return nil, fmt.Errorf("failed to get active pane of %s: %w", t.id, err)
	}
	return &pane{host: t.host, id: id}, nil
}

type pane struct {
	host *Host
	id   string
}

func (p *pane) SendLine(ctx context.Context, text string) error {
	if err := p.host.sendLine(ctx, p.id, text); err != nil {
		return fmt.Errorf("failed to send keys to %s: %w", p.id, err)
	}
	return nil
}
