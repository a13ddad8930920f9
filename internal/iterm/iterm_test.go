package iterm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/roveo/dirnav/internal/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	script string
	argv   []string
}

// fakeOsascript answers each script kind with a canned reply and records calls
type fakeOsascript struct {
	windowID  string
	currentID string
	createdID string
	writeErr  error
	calls     []call
}

func (f *fakeOsascript) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if name != "osascript" || len(args) < 2 || args[0] != "-e" {
		return nil, errors.New("unexpected command")
	}
	c := call{script: args[1]}
	if len(args) > 2 {
		c.argv = args[3:]
	}
	f.calls = append(f.calls, c)

	switch {
	case strings.Contains(c.script, "set w to current window"):
		return []byte(f.windowID + "\n"), nil
	case strings.Contains(c.script, "create tab with default profile"):
		return []byte(f.createdID + "\n"), nil
	case strings.Contains(c.script, "current session of current tab"):
		return []byte(f.currentID + "\n"), nil
	case strings.Contains(c.script, "write text"):
		return nil, f.writeErr
	}
	return nil, errors.New("unknown script")
}

func newTestHost(f *fakeOsascript) *Host {
	h := New("")
	h.Run = f.run
	return h
}

func TestCurrentWindow_None(t *testing.T) {
	f := &fakeOsascript{}
	_, err := newTestHost(f).CurrentWindow(context.Background())
	assert.ErrorIs(t, err, terminal.ErrNoWindow)
}

func TestCurrentWindow_RunnerError(t *testing.T) {
	h := New("iTerm")
	h.Run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return nil, errors.New("execution error: not authorized")
	}
	_, err := h.CurrentWindow(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, terminal.ErrNoWindow)
	assert.Contains(t, err.Error(), "not authorized")
}

func TestSendToCurrentTab(t *testing.T) {
	f := &fakeOsascript{windowID: "4242", currentID: "w0t1p0:ABC"}
	ctx := context.Background()

	w, err := newTestHost(f).CurrentWindow(ctx)
	require.NoError(t, err)
	tab, err := w.CurrentTab(ctx)
	require.NoError(t, err)
	s, err := tab.CurrentSession(ctx)
	require.NoError(t, err)
	require.NoError(t, s.SendLine(ctx, "cd \"`dirmap work`\" && clear"))

	require.Len(t, f.calls, 3)
	assert.Contains(t, f.calls[0].script, `tell application "iTerm"`)
	assert.Equal(t, []string{"4242"}, f.calls[1].argv)
	assert.Equal(t, []string{"w0t1p0:ABC", "cd \"`dirmap work`\" && clear"}, f.calls[2].argv)
	assert.NotContains(t, f.calls[2].script, "dirmap")
}

func TestSendToNewTab(t *testing.T) {
	f := &fakeOsascript{windowID: "7", createdID: "NEW-SESSION"}
	ctx := context.Background()

	w, err := newTestHost(f).CurrentWindow(ctx)
	require.NoError(t, err)
	tab, err := w.CreateTab(ctx)
	require.NoError(t, err)
	s, err := tab.CurrentSession(ctx)
	require.NoError(t, err)
	require.NoError(t, s.SendLine(ctx, "dirmap list"))

	// The created tab already knows its session, so no lookup happens
	require.Len(t, f.calls, 3)
	assert.Contains(t, f.calls[1].script, "create tab with default profile")
	assert.Equal(t, []string{"7"}, f.calls[1].argv)
	assert.Equal(t, []string{"NEW-SESSION", "dirmap list"}, f.calls[2].argv)
}

func TestCreateTab_NoSession(t *testing.T) {
	f := &fakeOsascript{windowID: "7"}
	ctx := context.Background()

	w, err := newTestHost(f).CurrentWindow(ctx)
	require.NoError(t, err)
	_, err = w.CreateTab(ctx)
	assert.ErrorContains(t, err, "no session in new tab")
}

func TestSendLine_Error(t *testing.T) {
	f := &fakeOsascript{windowID: "1", currentID: "S", writeErr: errors.New("session not found: S")}
	ctx := context.Background()

	w, err := newTestHost(f).CurrentWindow(ctx)
	require.NoError(t, err)
	tab, err := w.CurrentTab(ctx)
	require.NoError(t, err)
	s, err := tab.CurrentSession(ctx)
	require.NoError(t, err)

	err = s.SendLine(ctx, "tailtrim")
	assert.ErrorContains(t, err, "session not found: S")
}

func TestAppleString(t *testing.T) {
	assert.Equal(t, `"iTerm"`, appleString("iTerm"))
	assert.Equal(t, `"a\"b\\c"`, appleString(`a"b\c`))
}
