// Package iterm drives iTerm2 through its AppleScript dictionary via osascript.
package iterm

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/roveo/dirnav/internal/terminal"
)

// DefaultApp is the AppleScript application name of iTerm2
const DefaultApp = "iTerm"

const currentWindowScript = `
on run argv
	tell application %s
		if (count of windows) is 0 then return ""
		set w to current window
		if w is missing value then return ""
		return (id of w) as text
	end tell
end run
`

const currentTabSessionScript = `
on run argv
	set wid to (item 1 of argv) as integer
	tell application %s
		return id of current session of current tab of window id wid
	end tell
end run
`

const createTabScript = `
on run argv
	set wid to (item 1 of argv) as integer
	tell application %s
		tell window id wid
			set t to (create tab with default profile)
			return id of current session of t
		end tell
	end tell
end run
`

// The text travels through argv so it never needs AppleScript quoting.
// write text appends the newline itself.
const writeTextScript = `
on run argv
	set sid to item 1 of argv
	set txt to item 2 of argv
	tell application %s
		repeat with w in windows
			repeat with t in tabs of w
				repeat with s in sessions of t
					if (id of s) is sid then
						tell s to write text txt
						return
					end if
				end repeat
			end repeat
		end repeat
	end tell
	error "session not found: " & sid
end run
`

// Host is an iTerm2 application reached through osascript
type Host struct {
	// App is the AppleScript application name, usually "iTerm"
	App string
	Run terminal.Runner
}

// New returns a Host for the given application name
func New(app string) *Host {
	if app == "" {
		app = DefaultApp
	}
	return &Host{App: app, Run: terminal.ExecRunner}
}

// Available reports whether osascript exists and the application answers
func (h *Host) Available(ctx context.Context) bool {
	if _, err := exec.LookPath("osascript"); err != nil {
		return false
	}
	_, err := h.Run(ctx, "osascript", "-e", "tell application "+appleString(h.App)+" to version")
	return err == nil
}

// CurrentWindow returns the frontmost terminal window
func (h *Host) CurrentWindow(ctx context.Context) (terminal.Window, error) {
	id, err := h.osascript(ctx, currentWindowScript)
	if err != nil {
		return nil, fmt.Errorf("osascript: %w", err)
	}
	if id == "" {
		return nil, terminal.ErrNoWindow
	}
	return &window{host: h, id: id}, nil
}

func (h *Host) osascript(ctx context.Context, script string, argv ...string) (string, error) {
	args := []string{"-e", fmt.Sprintf(script, appleString(h.App))}
	if len(argv) > 0 {
		args = append(args, "--")
		args = append(args, argv...)
	}
	output, err := h.Run(ctx, "osascript", args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

type window struct {
	host *Host
	id   string
}

func (w *window) CurrentTab(ctx context.Context) (terminal.Tab, error) {
	return &tab{window: w}, nil
}

func (w *window) CreateTab(ctx context.Context) (terminal.Tab, error) {
	sid, err := w.host.osascript(ctx, createTabScript, w.id)
	if err != nil {
		return nil, fmt.Errorf("failed to create tab: %w", err)
	}
	if sid == "" {
		return nil, fmt.Errorf("failed to create tab: no session in new tab")
	}
	return &tab{window: w, sessionID: sid}, nil
}

// tab is the current tab of a window, or a created tab whose session is
// already known
type tab struct {
	window    *window
	sessionID string
}

func (t *tab) CurrentSession(ctx context.Context) (terminal.Session, error) {
	if t.sessionID != "" {
		return &session{host: t.window.host, id: t.sessionID}, nil
	}
	sid, err := t.window.host.osascript(ctx, currentTabSessionScript, t.window.id)
	if err != nil {
		return nil, fmt.Errorf("osascript: %w", err)
	}
	if sid == "" {
		return nil, fmt.Errorf("window %s has no session", t.window.id)
	}
	return &session{host: t.window.host, id: sid}, nil
}

type session struct {
	host *Host
	id   string
}

func (s *session) SendLine(ctx context.Context, text string) error {
	if _, err := s.host.osascript(ctx, writeTextScript, s.id, text); err != nil {
		return fmt.Errorf("failed to write to session %s: %w", s.id, err)
	}
	return nil
}

// appleString renders s as an AppleScript string literal
func appleString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
