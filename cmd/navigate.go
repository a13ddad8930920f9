package cmd

import (
	"context"
	"io"

	"github.com/roveo/dirnav/internal/compose"
	"github.com/roveo/dirnav/internal/navigator"
	"github.com/spf13/cobra"
)

var navigateShort = map[compose.Mode]string{
	compose.ModeCurrentTab: "Navigate the current tab to a dirmap directory and run a command",
	compose.ModeNewTab:     "Open a new tab, navigate it to a dirmap directory and run a command",
	compose.ModeTail:       "Navigate the current tab to a dirmap directory and run tailtrim",
}

// NewNavigateCommand builds a navigation entry point for mode.
// Flag parsing is disabled: every argument is positional text.
func NewNavigateCommand(name string, mode compose.Mode) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [key] [command]",
		Short: navigateShort[mode],
		Long: navigateShort[mode] + `.

  key      dirmap key to look up. "list" shows all mappings instead.
  command  line to run after navigating (ignored by dirmaptail).

Missing arguments are treated as empty. Extra arguments are ignored.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, command := positional(args)
			return navigate(cmd.Context(), cmd.OutOrStdout(), key, command, mode)
		},
	}
}

// ExecuteNavigate runs the entry point for mode
func ExecuteNavigate(name string, mode compose.Mode) {
	run(NewNavigateCommand(name, mode))
}

// positional returns the first two arguments, empty when missing
func positional(args []string) (key, command string) {
	if len(args) > 0 {
		key = args[0]
	}
	if len(args) > 1 {
		command = args[1]
	}
	return key, command
}

func navigate(ctx context.Context, out io.Writer, key, command string, mode compose.Mode) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Debug("navigating", "host", cfg.Host, "mode", mode, "key", key)
	return navigator.New(newHost(cfg, out), logger).Navigate(ctx, key, command, mode)
}
