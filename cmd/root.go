package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/roveo/dirnav/internal/config"
	"github.com/roveo/dirnav/internal/iterm"
	"github.com/roveo/dirnav/internal/logging"
	"github.com/roveo/dirnav/internal/shell"
	"github.com/roveo/dirnav/internal/terminal"
	"github.com/roveo/dirnav/internal/tmux"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dirnav",
	Short: "Navigate terminal sessions to dirmap directories",
	Long: `dirnav types dirmap navigation commands into a terminal session.

The navigation entry points are separate binaries:
  dirmapcommand [key] [command]   navigate the current tab, then run command
  dirmapnewtab  [key] [command]   same, in a new tab
  dirmaptail    [key]             navigate the current tab, then run tailtrim

The terminal is chosen by the "host" setting in ~/.config/dirnav/config.toml
(iterm, tmux or shell) or the DIRNAV_HOST environment variable.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the dirnav admin tool
func Execute() {
	run(rootCmd)
}

func run(c *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := c.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration and builds the logger it asks for
func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, fmt.Errorf("failed to load config: %w", err)
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, nil, fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
	}
	return cfg, logging.New(level), nil
}

// newHost returns the configured terminal host. The shell host prints to out.
func newHost(cfg config.Config, out io.Writer) terminal.Host {
	switch cfg.Host {
	case config.HostTmux:
		return tmux.New(cfg.Tmux.Session)
	case config.HostShell:
		return shell.New(out)
	default:
		return iterm.New(cfg.ITerm.App)
	}
}
