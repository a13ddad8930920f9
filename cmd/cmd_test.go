package cmd

import (
	"bytes"
	"testing"

	"github.com/roveo/dirnav/internal/compose"
	"github.com/roveo/dirnav/internal/config"
	"github.com/roveo/dirnav/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useShellHost points the config at an empty directory and selects the shell host
func useShellHost(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.HostEnv, config.HostShell)
}

func runNavigate(t *testing.T, name string, mode compose.Mode, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := NewNavigateCommand(name, mode)
	c.SetOut(&out)
	// A nil slice makes cobra fall back to os.Args
	c.SetArgs(append([]string{}, args...))
	err := c.Execute()
	return out.String(), err
}

func TestNavigateCommand_CurrentTab(t *testing.T) {
	useShellHost(t)

	out, err := runNavigate(t, "dirmapcommand", compose.ModeCurrentTab, "work", "ls -la")
	require.NoError(t, err)
	assert.Equal(t, "cd \"`dirmap work`\" && clear\nls -la\n", out)
}

func TestNavigateCommand_NoArgs(t *testing.T) {
	useShellHost(t)

	out, err := runNavigate(t, "dirmapcommand", compose.ModeCurrentTab)
	require.NoError(t, err)
	assert.Equal(t, "cd \"`dirmap `\" && clear\n", out)
}

func TestNavigateCommand_FlagsArePositional(t *testing.T) {
	useShellHost(t)

	out, err := runNavigate(t, "dirmapcommand", compose.ModeCurrentTab, "--help", "-v", "extra")
	require.NoError(t, err)
	assert.Equal(t, "cd \"`dirmap --help`\" && clear\n-v\n", out)
}

func TestNavigateCommand_Tail(t *testing.T) {
	useShellHost(t)

	out, err := runNavigate(t, "dirmaptail", compose.ModeTail, "logs", "ignored")
	require.NoError(t, err)
	assert.Equal(t, "cd \"`dirmap logs`\" && clear\ntailtrim\n", out)
}

func TestNavigateCommand_List(t *testing.T) {
	useShellHost(t)

	out, err := runNavigate(t, "dirmapcommand", compose.ModeCurrentTab, "list", "npm start")
	require.NoError(t, err)
	assert.Equal(t, "dirmap list\n", out)
}

func TestNavigateCommand_NewTabOnShellHost(t *testing.T) {
	useShellHost(t)

	out, err := runNavigate(t, "dirmapnewtab", compose.ModeNewTab, "work")
	assert.ErrorIs(t, err, shell.ErrNewTabUnsupported)
	assert.Empty(t, out)
}

func TestNavigateCommand_BadHost(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.HostEnv, "kitty")

	_, err := runNavigate(t, "dirmapcommand", compose.ModeCurrentTab, "work")
	assert.ErrorContains(t, err, "unsupported host: kitty")
}

func TestPositional(t *testing.T) {
	k, c := positional(nil)
	assert.Equal(t, "", k)
	assert.Equal(t, "", c)

	k, c = positional([]string{"work"})
	assert.Equal(t, "work", k)
	assert.Equal(t, "", c)

	k, c = positional([]string{"work", "npm start", "more"})
	assert.Equal(t, "work", k)
	assert.Equal(t, "npm start", c)

	// pick prepends an empty key so its single argument becomes the command
	_, c = positional(append([]string{""}, "make dev"))
	assert.Equal(t, "make dev", c)
	_, c = positional(append([]string{""}, []string{}...))
	assert.Equal(t, "", c)
}

func TestInitCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"init", "bash"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, shell.BashInit(), out.String())
}

func TestConfigCommand(t *testing.T) {
	useShellHost(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "dirnav/config.toml")
	assert.Contains(t, out.String(), `host = "shell"`)
	assert.Contains(t, out.String(), `app = "iTerm"`)
}

func TestCheckCommand_ShellHost(t *testing.T) {
	useShellHost(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"check"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "host shell: ok\n", out.String())
}

func TestPickCommand_BadMode(t *testing.T) {
	rootCmd.SetArgs([]string{"pick", "--mode", "split"})
	defer func() {
		rootCmd.SetArgs(nil)
		pickMode = string(compose.ModeCurrentTab)
	}()

	assert.ErrorContains(t, rootCmd.Execute(), "unsupported mode: split")
}
