package cmd

import (
	"fmt"

	"github.com/roveo/dirnav/internal/shell"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init <shell>",
	Short: "Print shell initialization script",
	Long: `Print the shell wrappers used by the "shell" host.

Add this to your shell's rc file:
  bash: eval "$(dirnav init bash)"   # add to ~/.bashrc
  zsh:  eval "$(dirnav init zsh)"    # add to ~/.zshrc

This defines dirmapcommand and dirmaptail functions that run the binaries
with DIRNAV_HOST=shell and eval the lines they print, so navigation works
in any terminal without a scripting interface.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := shell.GetInit(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), script)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
