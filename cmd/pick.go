package cmd

import (
	"fmt"

	"github.com/roveo/dirnav/internal/compose"
	"github.com/roveo/dirnav/internal/ui"
	"github.com/spf13/cobra"
)

var pickMode string

var pickCmd = &cobra.Command{
	Use:   "pick [command]",
	Short: "Pick a dirmap key interactively and navigate to it",
	Long: `Show a fuzzy finder over the keys listed in [picker] keys of the config
(plus "list"), then navigate exactly like the matching entry point.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPick,
}

func init() {
	pickCmd.Flags().StringVarP(&pickMode, "mode", "m", string(compose.ModeCurrentTab), "current-tab, new-tab or tail")
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	mode, err := compose.ParseMode(pickMode)
	if err != nil {
		return err
	}
	if !ui.Interactive() {
		return fmt.Errorf("pick needs an interactive terminal")
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	key, err := ui.PickKey(cfg.Picker.Keys)
	if err != nil {
		return err
	}
	if key == "" {
		// User cancelled
		return nil
	}

	// The picked key takes the place of the first positional argument
	_, command := positional(append([]string{""}, args...))
	return navigate(cmd.Context(), cmd.OutOrStdout(), key, command, mode)
}
